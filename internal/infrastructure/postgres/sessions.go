package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/client-portal-api/internal/domain"
)

// SessionRepo stores server-held login sessions keyed by their opaque token.
type SessionRepo struct {
	db DB
}

func NewSessionRepo(db DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	_, err := querier(ctx, r.db).Exec(ctx, `
		INSERT INTO sessions (token, client_id, email, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`, s.Token, s.ClientID, s.Email, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepo) GetByToken(ctx context.Context, tok string) (*domain.Session, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT token, client_id, email, created_at, expires_at
		FROM sessions
		WHERE token = $1
	`, tok)

	var s domain.Session
	if err := row.Scan(&s.Token, &s.ClientID, &s.Email, &s.CreatedAt, &s.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("session not found: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepo) Delete(ctx context.Context, tok string) error {
	if _, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM sessions WHERE token = $1`, tok); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
