package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/cashwallet/cashwallet/internal/storage"
)

// Service exposes wallet operations.
type Service struct {
	repo Repository
}

// NewService builds a wallet service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateForUser provisions one zero-balance wallet per supported currency.
// The inserts run sequentially with no surrounding transaction; a failure
// partway leaves the user with fewer than four wallets. That window is an
// accepted property of the store, not compensated here.
func (s *Service) CreateForUser(ctx context.Context, userID string) ([]Wallet, error) {
	wallets := make([]Wallet, 0, len(SupportedCurrencies))
	for _, currency := range SupportedCurrencies {
		now := storage.Now()
		w := Wallet{
			ID:        uuid.NewString(),
			UserID:    userID,
			Currency:  currency,
			Balance:   0,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Create(ctx, w); err != nil {
			return nil, err
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}

// ListByUser returns the wallets owned by the given user.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Wallet, error) {
	return s.repo.ListByUser(ctx, userID)
}
