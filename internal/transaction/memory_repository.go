package transaction

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu  sync.RWMutex
	txs []Transaction
}

// NewMemoryRepository builds an in-memory transaction store for testing and
// store-less development runs.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, tx Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = append(r.txs, tx)
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string, limit int64) ([]Transaction, error) {
	return r.list(func(tx Transaction) bool { return tx.UserID == userID }, limit), nil
}

func (r *memoryRepository) ListAll(_ context.Context, limit int64) ([]Transaction, error) {
	return r.list(func(Transaction) bool { return true }, limit), nil
}

func (r *memoryRepository) CountAll(_ context.Context) (int64, error) {
	return r.count(func(Transaction) bool { return true }), nil
}

func (r *memoryRepository) CountByStatus(_ context.Context, status Status) (int64, error) {
	return r.count(func(tx Transaction) bool { return tx.Status == status }), nil
}

func (r *memoryRepository) CountByTypeAndStatus(_ context.Context, typ Type, status Status) (int64, error) {
	return r.count(func(tx Transaction) bool { return tx.Type == typ && tx.Status == status }), nil
}

func (r *memoryRepository) list(match func(Transaction) bool, limit int64) []Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	txs := []Transaction{}
	for _, tx := range r.txs {
		if match(tx) {
			txs = append(txs, tx)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt.Time)
	})
	if int64(len(txs)) > limit {
		txs = txs[:limit]
	}
	return txs
}

func (r *memoryRepository) count(match func(Transaction) bool) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, tx := range r.txs {
		if match(tx) {
			n++
		}
	}
	return n
}
