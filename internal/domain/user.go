package domain

import "time"

// User is a registry record for a registered account. The password is kept
// plaintext: this is a demo registry, not an authentication system.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the identity snapshot for the currently logged-in user. Its
// fields are copied from the registry record at login time and do not track
// later registry edits.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}
