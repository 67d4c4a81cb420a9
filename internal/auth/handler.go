package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cashwallet/cashwallet/internal/middleware"
	"github.com/cashwallet/cashwallet/internal/user"
)

// Handler exposes the auth endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        user.User `json:"user"`
}

// Register opens an account, provisions its wallets and returns a bearer token.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "email, password and name are required")
	}

	u, token, err := h.svc.Register(c.UserContext(), RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Language: req.Language,
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return fiber.NewError(http.StatusBadRequest, "Email already registered")
		case errors.Is(err, ErrUnsupportedLanguage):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, "registration failed")
		}
	}

	return c.Status(http.StatusOK).JSON(tokenResponse{AccessToken: token, TokenType: "bearer", User: u})
}

// Login verifies credentials and returns a bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	u, token, err := h.svc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(http.StatusInternalServerError, "login failed")
	}

	return c.Status(http.StatusOK).JSON(tokenResponse{AccessToken: token, TokenType: "bearer", User: u})
}

// Me returns the authenticated caller.
func (h *Handler) Me(c *fiber.Ctx) error {
	u, ok := middleware.UserFromCtx(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "Could not validate credentials")
	}
	return c.JSON(u)
}

// InitAdmin creates the bootstrap admin account if none exists. Calling it
// again is a no-op.
func (h *Handler) InitAdmin(c *fiber.Ctx) error {
	created, err := h.svc.EnsureAdmin(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "admin bootstrap failed")
	}
	if !created {
		return c.JSON(fiber.Map{"message": "Admin already exists"})
	}
	return c.JSON(fiber.Map{
		"message":  "Admin created",
		"email":    AdminEmail,
		"password": AdminPassword,
	})
}
