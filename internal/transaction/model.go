package transaction

import "github.com/cashwallet/cashwallet/internal/storage"

// Type is the closed set of transaction kinds. Exchange exists as an enum
// value only; no conversion logic backs it.
type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
	TypeExchange   Type = "exchange"
)

// Status is the closed set of transaction states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Transaction is a status-tagged movement record. It carries no wallet
// reference; currency is a free-standing string. Rows are never mutated once
// written.
type Transaction struct {
	ID        string          `bson:"id" json:"id"`
	UserID    string          `bson:"user_id" json:"user_id"`
	Type      Type            `bson:"type" json:"type"`
	Amount    float64         `bson:"amount" json:"amount"`
	Currency  string          `bson:"currency" json:"currency"`
	Status    Status          `bson:"status" json:"status"`
	CreatedAt storage.Instant `bson:"created_at" json:"created_at"`
}
