package transaction

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cashwallet/cashwallet/internal/middleware"
)

// Handler exposes transaction HTTP endpoints.
type Handler struct {
	repo Repository
}

// NewHandler builds a transaction HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListMine returns the authenticated caller's transactions, newest first.
func (h *Handler) ListMine(c *fiber.Ctx) error {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "Could not validate credentials")
	}
	txs, err := h.repo.ListByUser(c.UserContext(), u.ID, UserHistoryCap)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "store unavailable")
	}
	return c.JSON(txs)
}
