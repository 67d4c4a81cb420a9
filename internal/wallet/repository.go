package wallet

import "context"

// Repository persists wallets.
type Repository interface {
	Create(ctx context.Context, wallet Wallet) error
	ListByUser(ctx context.Context, userID string) ([]Wallet, error)
	ListAll(ctx context.Context, limit int64) ([]Wallet, error)
	SumBalanceByCurrency(ctx context.Context, currency Currency) (float64, error)
}
