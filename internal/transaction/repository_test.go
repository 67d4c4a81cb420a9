package transaction

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/cashwallet/cashwallet/internal/storage"
)

func seedAt(t *testing.T, repo Repository, userID string, at time.Time) Transaction {
	t.Helper()
	tx := Transaction{
		ID:        fmt.Sprintf("tx-%d", at.UnixNano()),
		UserID:    userID,
		Type:      TypeDeposit,
		Amount:    10,
		Currency:  "USD",
		Status:    StatusPending,
		CreatedAt: storage.At(at),
	}
	if err := repo.Create(context.Background(), tx); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return tx
}

func TestListByUserNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	// Inserted out of order, with sub-second gaps of differing fraction
	// widths mixed in.
	seedAt(t, repo, "u1", base.Add(100*time.Millisecond))
	seedAt(t, repo, "u1", base.Add(time.Minute))
	seedAt(t, repo, "u1", base)
	seedAt(t, repo, "u1", base.Add(150*time.Millisecond))
	seedAt(t, repo, "u2", base.Add(time.Hour))

	txs, err := repo.ListByUser(context.Background(), "u1", UserHistoryCap)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(txs))
	}
	for i := 1; i < len(txs); i++ {
		if txs[i].CreatedAt.After(txs[i-1].CreatedAt.Time) {
			t.Fatalf("listing not newest first: %v before %v", txs[i-1].CreatedAt, txs[i].CreatedAt)
		}
	}

	// The store sorts on the serialized created_at strings, so the listing
	// order must match a descending string sort of the stored values.
	for i := 1; i < len(txs); i++ {
		prev, cur := storedString(t, txs[i-1].CreatedAt), storedString(t, txs[i].CreatedAt)
		if prev < cur {
			t.Fatalf("stored strings out of order: %q before %q", prev, cur)
		}
	}
}

func TestListAllAppliesLimitNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedAt(t, repo, "u1", base.Add(time.Duration(i)*time.Second))
	}

	txs, err := repo.ListAll(context.Background(), 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	if !txs[0].CreatedAt.Equal(base.Add(4 * time.Second)) {
		t.Fatalf("expected newest transaction first, got %v", txs[0].CreatedAt)
	}
	if !txs[2].CreatedAt.Equal(base.Add(2 * time.Second)) {
		t.Fatalf("limit kept the wrong rows, oldest returned is %v", txs[2].CreatedAt)
	}
}

func storedString(t *testing.T, in storage.Instant) string {
	t.Helper()
	typ, data, err := in.MarshalBSONValue()
	if err != nil {
		t.Fatalf("marshal instant: %v", err)
	}
	var s string
	if err := bson.UnmarshalValue(typ, data, &s); err != nil {
		t.Fatalf("read stored instant: %v", err)
	}
	return s
}
