package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carshop-api/internal/application/dto"
	"github.com/jhoicas/carshop-api/internal/domain/entity"
)

// Locals key para la identidad resuelta en Fiber.
const LocalIdentity = "identity"

// AuthMiddleware ejecuta el IdentityResolver y deja el User resuelto en
// c.Locals. Si la identidad falta o es desconocida responde 401 y ningún
// handler posterior se ejecuta.
func AuthMiddleware(resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := resolver.Resolve(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "unknown or missing identity",
			})
		}
		c.Locals(LocalIdentity, user)
		return c.Next()
	}
}

// GetIdentity devuelve el User del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// RequireRole autoriza solo a las identidades con alguno de los roles dados.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetIdentity(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "unknown or missing identity",
			})
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "role not allowed for this resource",
		})
	}
}
