package portal

import (
	"context"
	"log/slog"

	"github.com/client-portal-api/internal/domain"
)

type agreementStore interface {
	ListByClient(ctx context.Context, clientID string) ([]domain.Agreement, error)
	ListAll(ctx context.Context) ([]domain.Agreement, error)
}

type Service interface {
	AgreementsForClient(ctx context.Context, clientID string) ([]domain.Agreement, error)
	Offer(ctx context.Context) ([]domain.Agreement, error)
}

type service struct {
	agreements agreementStore
}

func NewService(agreements agreementStore) Service {
	return &service{agreements: agreements}
}

func (s *service) AgreementsForClient(ctx context.Context, clientID string) ([]domain.Agreement, error) {
	list, err := s.agreements.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		slog.Debug("no agreements associated with client", "client_id", clientID)
	}
	return list, nil
}

func (s *service) Offer(ctx context.Context) ([]domain.Agreement, error) {
	return s.agreements.ListAll(ctx)
}
