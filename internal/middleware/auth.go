package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cashwallet/cashwallet/internal/user"
)

const userLocalKey = "auth_user"

// credentialsMessage is shared by every authentication failure so callers
// cannot tell an invalid token from a vanished subject.
const credentialsMessage = "Could not validate credentials"

// TokenValidator resolves a bearer token to a subject identifier.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// Authenticate validates the Authorization bearer token and resolves it to a
// stored user, which is placed in the request locals for downstream handlers.
func Authenticate(tokens TokenValidator, users user.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, credentialsMessage)
		}

		sub, err := tokens.Validate(strings.TrimSpace(authz[len("Bearer "):]))
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, credentialsMessage)
		}

		u, err := users.FindByID(c.UserContext(), sub)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				// Token subject deleted after issuance; same failure as an
				// invalid token.
				return fiber.NewError(http.StatusUnauthorized, credentialsMessage)
			}
			return fiber.NewError(http.StatusInternalServerError, "store unavailable")
		}

		c.Locals(userLocalKey, u)
		return c.Next()
	}
}

// RequireAdmin gates a route to admin users. It must be composed after
// Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := UserFromCtx(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, credentialsMessage)
		}
		switch u.Role {
		case user.RoleAdmin:
			return c.Next()
		case user.RoleUser:
			return fiber.NewError(http.StatusForbidden, "Not authorized")
		default:
			return fiber.NewError(http.StatusForbidden, "Not authorized")
		}
	}
}

// UserFromCtx returns the user resolved by Authenticate for this request.
func UserFromCtx(c *fiber.Ctx) (user.User, bool) {
	u, ok := c.Locals(userLocalKey).(user.User)
	return u, ok
}
