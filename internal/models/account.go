// Package models contains the persisted record types for the application.
package models

// Account represents a registered user in the account directory.
//
// The Password field is stored and compared verbatim. There is no hashing,
// no salting, and no secrecy. Do not deploy this store anywhere real
// credentials could reach it.
type Account struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Snapshot returns the session view of the account: identity and display
// fields only, never the password.
func (a *Account) Snapshot() Session {
	return Session{
		ID:           a.ID,
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		ProfileImage: a.ProfileImage,
	}
}
