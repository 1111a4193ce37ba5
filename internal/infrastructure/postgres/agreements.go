package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/client-portal-api/internal/domain"
)

// AgreementRepo reads the agreements catalogue and per-client ownerships.
// The portal consumes it read-only.
type AgreementRepo struct {
	db DB
}

func NewAgreementRepo(db DB) *AgreementRepo {
	return &AgreementRepo{db: db}
}

// ListByClient returns the agreements owned by the given client, joined
// through agreements_ownerships.
func (r *AgreementRepo) ListByClient(ctx context.Context, clientID string) ([]domain.Agreement, error) {
	rows, err := querier(ctx, r.db).Query(ctx, `
		SELECT agreements.agreement_id, agreements.agreement_name
		FROM agreements
		INNER JOIN agreements_ownerships ON agreements.agreement_id = agreements_ownerships.agreement_id
		WHERE agreements_ownerships.client_id = $1
		ORDER BY agreements.agreement_name
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list agreements by client: %w", err)
	}
	defer rows.Close()

	return scanAgreements(rows)
}

// ListAll returns the full agreements catalogue (the public offer).
func (r *AgreementRepo) ListAll(ctx context.Context) ([]domain.Agreement, error) {
	rows, err := querier(ctx, r.db).Query(ctx, `
		SELECT agreement_id, agreement_name
		FROM agreements
		ORDER BY agreement_name
	`)
	if err != nil {
		return nil, fmt.Errorf("list agreements: %w", err)
	}
	defer rows.Close()

	return scanAgreements(rows)
}

func scanAgreements(rows pgx.Rows) ([]domain.Agreement, error) {
	agreements := []domain.Agreement{}
	for rows.Next() {
		var a domain.Agreement
		if err := rows.Scan(&a.AgreementID, &a.AgreementName); err != nil {
			return nil, fmt.Errorf("scan agreement: %w", err)
		}
		agreements = append(agreements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate agreements: %w", err)
	}
	return agreements, nil
}
