package models

// Session is the single current-session record: a snapshot of the account
// copied at login time. Its presence alone gates access to the profile
// surface. There is no token, no signature, and no expiry; the record lives
// until it is explicitly terminated or the store is cleared.
//
// The snapshot is denormalized. Later changes to the account do not
// propagate unless pushed through UpdateSnapshot, and only profile-image
// changes use that path.
type Session struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// SessionPatch carries a partial update for the session snapshot. Nil fields
// are left untouched; a pointer to the empty string clears the field.
type SessionPatch struct {
	Email        *string
	FirstName    *string
	LastName     *string
	ProfileImage *string
}
