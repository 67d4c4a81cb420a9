package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cashwallet/cashwallet/internal/admin"
)

// RegisterAdminRoutes wires the admin dashboard endpoints. The router passed
// in must already carry the auth middleware and the admin gate.
func RegisterAdminRoutes(r fiber.Router, h *admin.Handler) {
	r.Get("/dashboard-stats", h.DashboardStats)
	r.Get("/users", h.Users)
	r.Get("/wallets", h.Wallets)
	r.Get("/transactions", h.Transactions)
}
