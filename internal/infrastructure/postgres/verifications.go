package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/client-portal-api/internal/domain"
)

// VerificationRepo manages the one verification-code row each client has.
type VerificationRepo struct {
	db DB
}

func NewVerificationRepo(db DB) *VerificationRepo {
	return &VerificationRepo{db: db}
}

func (r *VerificationRepo) Create(ctx context.Context, v *domain.EmailVerification) error {
	_, err := querier(ctx, r.db).Exec(ctx, `
		INSERT INTO email_verifications (client_id, verification_code, is_verified, account_created_date)
		VALUES ($1, $2, $3, $4)
	`, v.ClientID, v.VerificationCode, v.IsVerified, v.AccountCreatedDate)
	if err != nil {
		return fmt.Errorf("insert verification: %w", err)
	}
	return nil
}

func (r *VerificationRepo) GetByClient(ctx context.Context, clientID string) (*domain.EmailVerification, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT client_id, verification_code, is_verified, account_created_date
		FROM email_verifications
		WHERE client_id = $1
	`, clientID)

	var v domain.EmailVerification
	if err := row.Scan(&v.ClientID, &v.VerificationCode, &v.IsVerified, &v.AccountCreatedDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("verification not found: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get verification: %w", err)
	}
	return &v, nil
}

// MarkVerified flips is_verified to true. The flag is monotonic; there is no
// reverse transition.
func (r *VerificationRepo) MarkVerified(ctx context.Context, clientID string) error {
	tag, err := querier(ctx, r.db).Exec(ctx, `
		UPDATE email_verifications
		SET is_verified = TRUE
		WHERE client_id = $1
	`, clientID)
	if err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("verification not found: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *VerificationRepo) IsVerified(ctx context.Context, clientID string) (bool, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT is_verified
		FROM email_verifications
		WHERE client_id = $1
	`, clientID)

	var verified bool
	if err := row.Scan(&verified); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("verification not found: %w", domain.ErrNotFound)
		}
		return false, fmt.Errorf("get verified flag: %w", err)
	}
	return verified, nil
}
