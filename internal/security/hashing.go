package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

// ErrEmptyPlaintext is returned when Hash is called with an empty string.
var ErrEmptyPlaintext = errors.New("plaintext must not be empty")

// Hasher produces deterministic keyed digests of passwords using HMAC-SHA256.
// The same plaintext and secret always yield the same digest, so stored
// digests can be verified by equality. Callers must not log or persist
// plaintext passwords.
type Hasher struct {
	secret []byte
}

// NewHasher returns a Hasher keyed with the given secret. The secret is
// injected here rather than read from ambient state; every instance with the
// same secret produces identical digests.
func NewHasher(secret string) *Hasher {
	return &Hasher{secret: []byte(secret)}
}

// Hash returns the hex-encoded HMAC-SHA256 digest of plaintext under the
// configured secret. Returns ErrEmptyPlaintext for an empty input.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPlaintext
	}
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Compare hashes plaintext and compares it to storedDigest in constant time.
// Returns true only if they match.
func (h *Hasher) Compare(storedDigest, plaintext string) bool {
	digest, err := h.Hash(plaintext)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}
