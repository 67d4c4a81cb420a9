package admin

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cashwallet/cashwallet/internal/transaction"
	"github.com/cashwallet/cashwallet/internal/user"
	"github.com/cashwallet/cashwallet/internal/wallet"
)

// Listing caps for the admin views.
const (
	usersCap        = 1000
	walletsCap      = 10000
	transactionsCap = 1000
)

// Handler exposes the admin endpoints. Routes using it must sit behind the
// admin gate.
type Handler struct {
	reporter     *Reporter
	users        user.Repository
	wallets      wallet.Repository
	transactions transaction.Repository
}

// NewHandler builds an admin HTTP handler.
func NewHandler(reporter *Reporter, users user.Repository, wallets wallet.Repository, transactions transaction.Repository) *Handler {
	return &Handler{reporter: reporter, users: users, wallets: wallets, transactions: transactions}
}

// DashboardStats returns the aggregate report.
func (h *Handler) DashboardStats(c *fiber.Ctx) error {
	report, err := h.reporter.Stats(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "store unavailable")
	}
	return c.JSON(report)
}

// Users lists non-admin users. Password hashes never serialize.
func (h *Handler) Users(c *fiber.Ctx) error {
	users, err := h.users.ListByRole(c.UserContext(), user.RoleUser, usersCap)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "store unavailable")
	}
	return c.JSON(users)
}

// Wallets lists wallets across all users.
func (h *Handler) Wallets(c *fiber.Ctx) error {
	wallets, err := h.wallets.ListAll(c.UserContext(), walletsCap)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "store unavailable")
	}
	return c.JSON(wallets)
}

// Transactions lists transactions across all users, newest first.
func (h *Handler) Transactions(c *fiber.Ctx) error {
	txs, err := h.transactions.ListAll(c.UserContext(), transactionsCap)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "store unavailable")
	}
	return c.JSON(txs)
}
