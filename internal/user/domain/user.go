package domain

// PhoneLength is the exact length of a phone key. Phones are opaque strings,
// not numbers; leading zeros are significant.
const PhoneLength = 10

// User is the core user entity, keyed by phone.
type User struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone"`
	HashedPassword string `json:"hashedPassword,omitempty"`
	TosAgreement   bool   `json:"tosAgreement"`
}

// Redacted returns a copy of the user with the password digest stripped.
// Callers must never return HashedPassword to a requester.
func (u User) Redacted() User {
	u.HashedPassword = ""
	return u
}
