package transaction

import "context"

// UserHistoryCap bounds the per-user history listing.
const UserHistoryCap = 100

// Repository persists transactions. Listings are newest first.
type Repository interface {
	Create(ctx context.Context, tx Transaction) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]Transaction, error)
	ListAll(ctx context.Context, limit int64) ([]Transaction, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	CountByTypeAndStatus(ctx context.Context, typ Type, status Status) (int64, error)
}
