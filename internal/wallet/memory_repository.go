package wallet

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	wallets []Wallet
}

// NewMemoryRepository builds an in-memory wallet store for testing and
// store-less development runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, wallet Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets = append(r.wallets, wallet)
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallets := []Wallet{}
	for _, w := range r.wallets {
		if w.UserID == userID {
			wallets = append(wallets, w)
		}
	}
	return wallets, nil
}

func (r *memoryRepository) ListAll(_ context.Context, limit int64) ([]Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallets := []Wallet{}
	for _, w := range r.wallets {
		wallets = append(wallets, w)
		if int64(len(wallets)) == limit {
			break
		}
	}
	return wallets, nil
}

func (r *memoryRepository) SumBalanceByCurrency(_ context.Context, currency Currency) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total float64
	for _, w := range r.wallets {
		if w.Currency == currency {
			total += w.Balance
		}
	}
	return total, nil
}
