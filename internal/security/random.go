package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// tokenAlphabet is the character set for generated token ids.
const tokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// TokenIDLength is the fixed length of token ids on the wire.
const TokenIDLength = 20

// ErrInvalidLength is returned when RandomString is called with a non-positive length.
var ErrInvalidLength = errors.New("length must be positive")

// RandomString returns a string of exactly length characters, each drawn
// independently and uniformly from [a-z0-9]. Uses crypto/rand for randomness.
func RandomString(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	max := big.NewInt(int64(len(tokenAlphabet)))
	s := make([]byte, length)
	for i := range s {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		s[i] = tokenAlphabet[n.Int64()]
	}
	return string(s), nil
}
