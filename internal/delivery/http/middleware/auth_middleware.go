package middleware

import (
	"errors"

	"job-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

// TokenCookieName is the cookie the login endpoint sets and the guard reads.
const TokenCookieName = "token"

const (
	CtxEmailKey    = "email"
	CtxIdentityKey = "identity"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects requests without a valid token cookie.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := m.identityFromCookie(c)
		if err != nil {
			return err
		}
		storeIdentity(c, id)
		return c.Next()
	}
}

// RequireSameEmail additionally demands that the `email` query parameter
// match the email asserted by the token. This is the only ownership check
// the API performs anywhere.
func (m *AuthMiddleware) RequireSameEmail() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := m.identityFromCookie(c)
		if err != nil {
			return err
		}
		if c.Query("email") != id.Email {
			return NewAppError(fiber.StatusForbidden, "Forbidden access", nil, nil)
		}
		storeIdentity(c, id)
		return c.Next()
	}
}

func (m *AuthMiddleware) identityFromCookie(c fiber.Ctx) (jwt.Identity, error) {
	token := c.Cookies(TokenCookieName)
	if token == "" {
		return jwt.Identity{}, NewAppError(fiber.StatusUnauthorized, "Unauthorized access", nil, nil)
	}

	id, err := m.jwt.Verify(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return jwt.Identity{}, NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		}
		return jwt.Identity{}, NewAppError(fiber.StatusUnauthorized, "Unauthorized access", nil, err)
	}
	return id, nil
}

func storeIdentity(c fiber.Ctx, id jwt.Identity) {
	c.Locals(CtxEmailKey, id.Email)
	c.Locals(CtxIdentityKey, id)
}
