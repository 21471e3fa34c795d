package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/medequip-service/internal/domain"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

// RequireAdmin fails with Forbidden unless the identity holds the admin role.
func RequireAdmin(identity *domain.Identity) error {
	if identity == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !identity.IsAdmin() {
		return apperrors.NewForbidden("admin access required")
	}
	return nil
}

// RequireOwnerOrAdmin fails with Forbidden unless the identity is an admin or the owner.
func RequireOwnerOrAdmin(identity *domain.Identity, ownerID string) error {
	if identity == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if identity.IsAdmin() || identity.Owns(ownerID) {
		return nil
	}
	return apperrors.NewForbidden("access denied")
}

// AdminOnly gates a route on the admin role. It must run after AuthMiddleware.Handle.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, _ := IdentityFromContext(c)
		if err := RequireAdmin(identity); err != nil {
			return err
		}
		return c.Next()
	}
}

// Authenticated ensures an identity was resolved for the request.
func Authenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := IdentityFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
