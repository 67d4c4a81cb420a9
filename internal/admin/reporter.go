// Package admin computes the aggregate statistics behind the admin dashboard.
package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cashwallet/cashwallet/internal/transaction"
	"github.com/cashwallet/cashwallet/internal/user"
	"github.com/cashwallet/cashwallet/internal/wallet"
)

const statsCacheKey = "admin:stats:v1"

// StatsReport is the dashboard aggregate computed over the whole store.
// NewUsersToday and Profits are stated placeholders serialized as zeros.
type StatsReport struct {
	TotalUsers           int64                       `json:"total_users"`
	NewUsersToday        int64                       `json:"new_users_today"`
	TotalTransactions    int64                       `json:"total_transactions"`
	PendingTransactions  int64                       `json:"pending_transactions"`
	CompletedDeposits    int64                       `json:"completed_deposits"`
	CompletedWithdrawals int64                       `json:"completed_withdrawals"`
	CurrencyBalances     map[wallet.Currency]float64 `json:"currency_balances"`
	Profits              map[wallet.Currency]float64 `json:"profits"`
}

// Reporter computes dashboard statistics, optionally serving them from a
// short-lived Redis cache. The computation issues independent counts with no
// snapshot isolation; figures may be mutually slightly stale under concurrent
// writes.
type Reporter struct {
	users        user.Repository
	wallets      wallet.Repository
	transactions transaction.Repository
	cache        *redis.Client
	cacheTTL     time.Duration
	logger       *slog.Logger
}

// NewReporter builds a reporter. cache may be nil, in which case every call
// recomputes from the store.
func NewReporter(users user.Repository, wallets wallet.Repository, transactions transaction.Repository, cache *redis.Client, cacheTTL time.Duration, logger *slog.Logger) *Reporter {
	return &Reporter{
		users:        users,
		wallets:      wallets,
		transactions: transactions,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// Stats computes the dashboard report. An empty store yields all zeros, never
// an error.
func (r *Reporter) Stats(ctx context.Context) (StatsReport, error) {
	if report, ok := r.cached(ctx); ok {
		return report, nil
	}

	report := StatsReport{
		CurrencyBalances: make(map[wallet.Currency]float64, len(wallet.SupportedCurrencies)),
		Profits:          make(map[wallet.Currency]float64, len(wallet.SupportedCurrencies)),
	}

	var err error
	if report.TotalUsers, err = r.users.CountByRole(ctx, user.RoleUser); err != nil {
		return StatsReport{}, err
	}
	if report.TotalTransactions, err = r.transactions.CountAll(ctx); err != nil {
		return StatsReport{}, err
	}
	if report.PendingTransactions, err = r.transactions.CountByStatus(ctx, transaction.StatusPending); err != nil {
		return StatsReport{}, err
	}
	if report.CompletedDeposits, err = r.transactions.CountByTypeAndStatus(ctx, transaction.TypeDeposit, transaction.StatusCompleted); err != nil {
		return StatsReport{}, err
	}
	if report.CompletedWithdrawals, err = r.transactions.CountByTypeAndStatus(ctx, transaction.TypeWithdrawal, transaction.StatusCompleted); err != nil {
		return StatsReport{}, err
	}

	for _, currency := range wallet.SupportedCurrencies {
		total, err := r.wallets.SumBalanceByCurrency(ctx, currency)
		if err != nil {
			return StatsReport{}, err
		}
		report.CurrencyBalances[currency] = total
		// Profit tracking is an unimplemented business metric; the report
		// states it as zero rather than computing anything.
		report.Profits[currency] = 0
	}

	r.store(ctx, report)
	return report, nil
}

// cached returns a report stored within the TTL window. Cache errors fail
// open: the caller recomputes from the store.
func (r *Reporter) cached(ctx context.Context) (StatsReport, bool) {
	if r.cache == nil {
		return StatsReport{}, false
	}

	payload, err := r.cache.Get(ctx, statsCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("stats cache lookup failed", "error", err)
		}
		return StatsReport{}, false
	}

	var report StatsReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		r.logger.Warn("stats cache decode failed", "error", err)
		return StatsReport{}, false
	}
	return report, true
}

func (r *Reporter) store(ctx context.Context, report StatsReport) {
	if r.cache == nil {
		return
	}

	payload, err := json.Marshal(report)
	if err != nil {
		r.logger.Warn("stats cache encode failed", "error", err)
		return
	}
	if err := r.cache.Set(ctx, statsCacheKey, payload, r.cacheTTL).Err(); err != nil {
		r.logger.Warn("stats cache store failed", "error", err)
	}
}
