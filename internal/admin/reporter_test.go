package admin

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cashwallet/cashwallet/internal/logging"
	"github.com/cashwallet/cashwallet/internal/transaction"
	"github.com/cashwallet/cashwallet/internal/user"
	"github.com/cashwallet/cashwallet/internal/wallet"
)

type fixtures struct {
	users   user.Repository
	wallets wallet.Repository
	txs     transaction.Repository
}

func newFixtures() fixtures {
	return fixtures{
		users:   user.NewMemoryRepository(),
		wallets: wallet.NewMemoryRepository(),
		txs:     transaction.NewMemoryRepository(),
	}
}

func (f fixtures) reporter(cache *redis.Client, ttl time.Duration) *Reporter {
	return NewReporter(f.users, f.wallets, f.txs, cache, ttl, logging.Discard())
}

func (f fixtures) addUser(t *testing.T, role user.Role) user.User {
	t.Helper()
	u := user.User{ID: uuid.NewString(), Email: uuid.NewString() + "@x.com", Name: "u", Role: role}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestStatsEmptyStore(t *testing.T) {
	f := newFixtures()

	report, err := f.reporter(nil, time.Minute).Stats(context.Background())
	if err != nil {
		t.Fatalf("stats on empty store: %v", err)
	}

	if report.TotalUsers != 0 || report.TotalTransactions != 0 || report.PendingTransactions != 0 ||
		report.CompletedDeposits != 0 || report.CompletedWithdrawals != 0 {
		t.Fatalf("expected all counts zero, got %+v", report)
	}
	if len(report.CurrencyBalances) != len(wallet.SupportedCurrencies) {
		t.Fatalf("expected a balance entry per currency, got %d", len(report.CurrencyBalances))
	}
	for _, currency := range wallet.SupportedCurrencies {
		if report.CurrencyBalances[currency] != 0 {
			t.Fatalf("expected zero balance for %s", currency)
		}
		if report.Profits[currency] != 0 {
			t.Fatalf("expected zero profit for %s", currency)
		}
	}
}

func TestStatsAggregates(t *testing.T) {
	f := newFixtures()
	ctx := context.Background()

	ann := f.addUser(t, user.RoleUser)
	f.addUser(t, user.RoleUser)
	f.addUser(t, user.RoleAdmin)

	for _, w := range []wallet.Wallet{
		{ID: uuid.NewString(), UserID: ann.ID, Currency: wallet.CurrencyUSD, Balance: 25},
		{ID: uuid.NewString(), UserID: ann.ID, Currency: wallet.CurrencyUSDT, Balance: 3.5},
		{ID: uuid.NewString(), UserID: "other", Currency: wallet.CurrencyUSD, Balance: 75},
	} {
		if err := f.wallets.Create(ctx, w); err != nil {
			t.Fatalf("create wallet: %v", err)
		}
	}

	for _, tx := range []transaction.Transaction{
		{ID: uuid.NewString(), UserID: ann.ID, Type: transaction.TypeDeposit, Status: transaction.StatusCompleted},
		{ID: uuid.NewString(), UserID: ann.ID, Type: transaction.TypeDeposit, Status: transaction.StatusPending},
		{ID: uuid.NewString(), UserID: ann.ID, Type: transaction.TypeWithdrawal, Status: transaction.StatusCompleted},
		{ID: uuid.NewString(), UserID: ann.ID, Type: transaction.TypeWithdrawal, Status: transaction.StatusFailed},
	} {
		if err := f.txs.Create(ctx, tx); err != nil {
			t.Fatalf("create transaction: %v", err)
		}
	}

	report, err := f.reporter(nil, time.Minute).Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if report.TotalUsers != 2 {
		t.Fatalf("expected 2 non-admin users, got %d", report.TotalUsers)
	}
	if report.TotalTransactions != 4 {
		t.Fatalf("expected 4 transactions, got %d", report.TotalTransactions)
	}
	if report.PendingTransactions != 1 {
		t.Fatalf("expected 1 pending transaction, got %d", report.PendingTransactions)
	}
	if report.CompletedDeposits != 1 {
		t.Fatalf("expected 1 completed deposit, got %d", report.CompletedDeposits)
	}
	if report.CompletedWithdrawals != 1 {
		t.Fatalf("expected 1 completed withdrawal, got %d", report.CompletedWithdrawals)
	}
	if report.CurrencyBalances[wallet.CurrencyUSD] != 100 {
		t.Fatalf("expected USD balance 100, got %f", report.CurrencyBalances[wallet.CurrencyUSD])
	}
	if report.CurrencyBalances[wallet.CurrencyUSDT] != 3.5 {
		t.Fatalf("expected USDT balance 3.5, got %f", report.CurrencyBalances[wallet.CurrencyUSDT])
	}
	if report.CurrencyBalances[wallet.CurrencySYP] != 0 {
		t.Fatalf("expected SYP balance 0, got %f", report.CurrencyBalances[wallet.CurrencySYP])
	}
	if report.NewUsersToday != 0 {
		t.Fatalf("expected placeholder new_users_today 0, got %d", report.NewUsersToday)
	}
}

func TestStatsCaching(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	f := newFixtures()
	ctx := context.Background()
	rep := f.reporter(cache, time.Minute)

	f.addUser(t, user.RoleUser)

	report, err := rep.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if report.TotalUsers != 1 {
		t.Fatalf("expected 1 user, got %d", report.TotalUsers)
	}

	// Within the TTL the cached report is served even after the store moves.
	f.addUser(t, user.RoleUser)
	report, err = rep.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if report.TotalUsers != 1 {
		t.Fatalf("expected cached count 1, got %d", report.TotalUsers)
	}

	mr.FastForward(2 * time.Minute)
	report, err = rep.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if report.TotalUsers != 2 {
		t.Fatalf("expected recomputed count 2, got %d", report.TotalUsers)
	}
}

func TestStatsFailsOpenWithoutCache(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()
	mr.Close() // cache endpoint is gone before first use

	f := newFixtures()
	f.addUser(t, user.RoleUser)

	report, err := f.reporter(cache, time.Minute).Stats(context.Background())
	if err != nil {
		t.Fatalf("stats with unreachable cache: %v", err)
	}
	if report.TotalUsers != 1 {
		t.Fatalf("expected 1 user, got %d", report.TotalUsers)
	}
}
