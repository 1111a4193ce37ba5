package domain

// Client is a registered portal client. PasswordHash is never serialized
// and never logged.
type Client struct {
	ClientID     string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// RegisterRequest is the body of POST /register. The repeated fields are
// validated for equality before any write happens.
type RegisterRequest struct {
	Email            string `json:"email"`
	RepeatedEmail    string `json:"repeatedEmail"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeatedPassword"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
