package wallet

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cashwallet/cashwallet/internal/middleware"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListMine returns the authenticated caller's wallets.
func (h *Handler) ListMine(c *fiber.Ctx) error {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "Could not validate credentials")
	}
	wallets, err := h.service.ListByUser(c.UserContext(), u.ID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "store unavailable")
	}
	return c.JSON(wallets)
}
