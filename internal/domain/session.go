package domain

import "time"

// Session is a server-held login session keyed by the opaque token stored in
// the client's cookie. It carries no password material.
type Session struct {
	Token     string     `json:"-"`
	ClientID  string     `json:"client_id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // nil = never expires
}

// SessionIdentity is the minimal principal reconstructed from a session on
// each authenticated request.
type SessionIdentity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
