package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/medequip-service/internal/auth"
	"github.com/spec-kit/medequip-service/internal/domain"
	apperrors "github.com/spec-kit/medequip-service/pkg/util/errorutil"
)

func currentIdentity(c *fiber.Ctx) (*domain.Identity, error) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return identity, nil
}

// parseBody decodes the JSON request body into dst.
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}
