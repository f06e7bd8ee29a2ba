package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"job-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

func newGuardedApp(t *testing.T, svc jwt.Service) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Use(NewErrorMiddleware().Middleware())

	authMw := NewAuthMiddleware(svc)
	ok := func(c fiber.Ctx) error { return c.SendString("ok") }

	app.Get("/guarded", authMw.Middleware(), ok)
	app.Get("/mine", authMw.RequireSameEmail(), ok)

	return app
}

func issue(t *testing.T, svc jwt.Service, email string) string {
	t.Helper()
	tok, err := svc.Issue(map[string]any{"email": email})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return tok
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	app := newGuardedApp(t, jwt.NewHMACService("s", time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := newGuardedApp(t, jwt.NewHMACService("s", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "garbage"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	svc := jwt.NewHMACService("s", time.Hour)
	app := newGuardedApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: issue(t, svc, "a@x.com")})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireSameEmail_Mismatch(t *testing.T) {
	svc := jwt.NewHMACService("s", time.Hour)
	app := newGuardedApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/mine?email=a@x.com", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: issue(t, svc, "b@x.com")})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestRequireSameEmail_Match(t *testing.T) {
	svc := jwt.NewHMACService("s", time.Hour)
	app := newGuardedApp(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/mine?email=a@x.com", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: issue(t, svc, "a@x.com")})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
