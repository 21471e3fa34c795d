package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/medequip-service/internal/domain"
	"github.com/spec-kit/medequip-service/internal/testfixtures"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

func newTestMiddleware(t *testing.T) (*AuthMiddleware, *TokenManager, *testfixtures.Clock) {
	t.Helper()
	clock := testfixtures.NewClock(time.Time{})
	tokens := NewTokenManager("secret", time.Hour, clock.Now)
	users := &testfixtures.UserStore{}
	if err := users.Create(context.Background(), &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: domain.RoleStandard}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewAuthMiddleware(tokens, users), tokens, clock
}

func TestAuthenticate(t *testing.T) {
	mw, tokens, clock := newTestMiddleware(t)
	valid, _, _ := tokens.Issue("u1", domain.RoleStandard)
	unknown, _, _ := tokens.Issue("ghost", domain.RoleStandard)

	identity, err := mw.Authenticate(context.Background(), "Bearer "+valid)
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if identity.UserID != "u1" || identity.User == nil || identity.User.Username != "alice" {
		t.Fatalf("unexpected identity %+v", identity)
	}

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{name: "missing", header: "", message: "missing authorization header"},
		{name: "wrong scheme", header: "Basic abc", message: "invalid authorization header"},
		{name: "empty token", header: "Bearer ", message: "invalid authorization header"},
		{name: "garbage", header: "Bearer abc", message: "invalid token"},
		{name: "unknown user", header: "Bearer " + unknown, message: "user not found"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mw.Authenticate(context.Background(), tc.header)
			domainErr := apperrors.ToDomainError(err)
			if domainErr == nil || domainErr.HTTPStatus != fiber.StatusUnauthorized || domainErr.Message != tc.message {
				t.Fatalf("expected 401 %q, got %v", tc.message, err)
			}
		})
	}

	clock.Advance(2 * time.Hour)
	_, err = mw.Authenticate(context.Background(), "Bearer "+valid)
	if domainErr := apperrors.ToDomainError(err); domainErr == nil || domainErr.Message != "token expired" {
		t.Fatalf("expected token expired, got %v", err)
	}
}

func TestHandleAndAdminOnly(t *testing.T) {
	mw, tokens, _ := newTestMiddleware(t)
	userToken, _, _ := tokens.Issue("u1", domain.RoleStandard)
	adminToken, _, _ := tokens.Issue("u1", domain.RoleAdmin)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		},
	})
	app.Get("/me", mw.Handle, Authenticated(), func(c *fiber.Ctx) error {
		identity, _ := IdentityFromContext(c)
		return c.SendString(identity.UserID)
	})
	app.Get("/admin", mw.Handle, AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		path   string
		token  string
		status int
	}{
		{path: "/me", token: userToken, status: fiber.StatusOK},
		{path: "/me", token: "", status: fiber.StatusUnauthorized},
		{path: "/admin", token: userToken, status: fiber.StatusForbidden},
		{path: "/admin", token: adminToken, status: fiber.StatusNoContent},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(fiber.MethodGet, tc.path, nil)
		if tc.token != "" {
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tc.token)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", tc.path, err)
		}
		if resp.StatusCode != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.status, resp.StatusCode)
		}
	}
}
