package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/client-portal-api/internal/domain"
)

// ClientRepo is the sole owner of password hash persistence.
type ClientRepo struct {
	db DB
}

func NewClientRepo(db DB) *ClientRepo {
	return &ClientRepo{db: db}
}

func (r *ClientRepo) Create(ctx context.Context, c *domain.Client) error {
	_, err := querier(ctx, r.db).Exec(ctx, `
		INSERT INTO clients (client_id, email, password)
		VALUES ($1, $2, $3)
	`, c.ClientID, c.Email, c.PasswordHash)
	if err != nil {
		// The schema-level uniqueness constraint backstops concurrent
		// registrations that both passed the existence check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("email already registered: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByEmail looks a client up by exact email match.
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT client_id, email, password
		FROM clients
		WHERE email = $1
	`, email)

	var c domain.Client
	if err := row.Scan(&c.ClientID, &c.Email, &c.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client not found: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get client by email: %w", err)
	}
	return &c, nil
}

func (r *ClientRepo) Get(ctx context.Context, clientID string) (*domain.Client, error) {
	row := querier(ctx, r.db).QueryRow(ctx, `
		SELECT client_id, email, password
		FROM clients
		WHERE client_id = $1
	`, clientID)

	var c domain.Client
	if err := row.Scan(&c.ClientID, &c.Email, &c.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client not found: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}
