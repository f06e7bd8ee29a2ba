package handler

import (
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler issues the session cookie. There is no user store behind it:
// whatever identity the caller posts is signed as-is, with no password or
// account check. Known gap, tracked in DESIGN.md.
type AuthHandler struct {
	jwt jwt.Service
}

func NewAuthHandler(jwtSvc jwt.Service) *AuthHandler {
	return &AuthHandler{jwt: jwtSvc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jwt", h.IssueToken)
}

func (h *AuthHandler) IssueToken(c fiber.Ctx) error {
	payload := map[string]any{}
	if err := c.Bind().Body(&payload); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	token, err := h.jwt.Issue(payload)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	// Session cookie: no Expires attribute, only the JWT itself times
	// out. Secure stays off because the dev frontend talks to this
	// server over plain HTTP.
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   false,
	})

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"success": true})
}
