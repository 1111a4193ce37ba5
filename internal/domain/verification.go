package domain

import "time"

// EmailVerification is the one-time code record gating portal access.
// Exactly one row exists per client, created together with the client row.
// IsVerified only ever flips false -> true; codes never expire.
type EmailVerification struct {
	ClientID           string    `json:"client_id"`
	VerificationCode   int       `json:"-"`
	IsVerified         bool      `json:"is_verified"`
	AccountCreatedDate time.Time `json:"account_created_date"`
}
