package wallet

import "github.com/cashwallet/cashwallet/internal/storage"

// Currency is one of the four supported wallet currencies.
type Currency string

const (
	CurrencyUSD  Currency = "USD"
	CurrencyUSDT Currency = "USDT"
	CurrencySYP  Currency = "SYP"
	CurrencyTRY  Currency = "TRY"
)

// SupportedCurrencies is the closed set of currencies a user gets a wallet for.
var SupportedCurrencies = []Currency{CurrencyUSD, CurrencyUSDT, CurrencySYP, CurrencyTRY}

// Supported reports whether the currency belongs to the closed set.
func Supported(c Currency) bool {
	switch c {
	case CurrencyUSD, CurrencyUSDT, CurrencySYP, CurrencyTRY:
		return true
	default:
		return false
	}
}

// Wallet is a per-user, per-currency balance record.
type Wallet struct {
	ID        string          `bson:"id" json:"id"`
	UserID    string          `bson:"user_id" json:"user_id"`
	Currency  Currency        `bson:"currency" json:"currency"`
	Balance   float64         `bson:"balance" json:"balance"`
	CreatedAt storage.Instant `bson:"created_at" json:"created_at"`
	UpdatedAt storage.Instant `bson:"updated_at" json:"updated_at"`
}
