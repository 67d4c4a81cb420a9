package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cashwallet/cashwallet/internal/auth"
)

// RegisterAuthRoutes wires the public authentication endpoints plus /auth/me.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, authmw fiber.Handler) {
	group := r.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/login", h.Login)
	group.Get("/me", authmw, h.Me)
}
