package domain

import "time"

// Token is a server-issued short-lived credential bound to one phone at
// creation and never reassigned. Expiry is lazy: nothing deletes or
// transitions an expired token; it simply stops verifying.
type Token struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
	// Expires is an absolute epoch-millisecond timestamp. The token is
	// valid iff Expires > now.
	Expires int64 `json:"expires"`
}

// Expired reports whether the token is no longer valid at the given instant.
func (t Token) Expired(now time.Time) bool {
	return t.Expires <= now.UnixMilli()
}
