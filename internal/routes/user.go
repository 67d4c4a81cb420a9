package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cashwallet/cashwallet/internal/auth"
	"github.com/cashwallet/cashwallet/internal/transaction"
	"github.com/cashwallet/cashwallet/internal/wallet"
)

// RegisterUserRoutes wires the authenticated self-service endpoints. The
// router passed in must already carry the auth middleware.
func RegisterUserRoutes(r fiber.Router, authHandler *auth.Handler, wallets *wallet.Handler, transactions *transaction.Handler) {
	r.Get("/profile", authHandler.Me)
	r.Get("/wallets", wallets.ListMine)
	r.Get("/transactions", transactions.ListMine)
}
