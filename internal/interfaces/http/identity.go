package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carshop-api/internal/domain"
	"github.com/jhoicas/carshop-api/internal/domain/entity"
	"github.com/jhoicas/carshop-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/carshop-api/pkg/jwt"
)

// IdentityResolver es la estrategia conectable de resolución de identidad del
// Access Gate: dado un request devuelve el User resuelto o domain.ErrUnauthorized.
// Una implementación real (sesiones, verificación de firma) puede sustituir a
// la de demostración sin tocar ningún handler.
type IdentityResolver interface {
	Resolve(c *fiber.Ctx) (*entity.User, error)
}

// HeaderResolver resuelve la identidad leyendo un email plano de un header
// (x-user-email por defecto). La identidad se asume, no se autentica: es el
// diseño deliberado del mock y se conserva tal cual.
type HeaderResolver struct {
	users  repository.UserRepository
	header string
}

// NewHeaderResolver construye el resolver de header.
func NewHeaderResolver(users repository.UserRepository, header string) *HeaderResolver {
	if header == "" {
		header = "x-user-email"
	}
	return &HeaderResolver{users: users, header: header}
}

// Resolve busca el email del header en el almacén de usuarios.
func (r *HeaderResolver) Resolve(c *fiber.Ctx) (*entity.User, error) {
	email := strings.TrimSpace(c.Get(r.header))
	if email == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := r.users.GetByEmail(email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// TokenResolver resuelve la identidad desde un Bearer Token JWT cuyo claim de
// email se busca en el mismo almacén de usuarios. Satisface el mismo contrato
// que HeaderResolver; se activa con AUTH_MODE=token.
type TokenResolver struct {
	users  repository.UserRepository
	secret string
}

// NewTokenResolver construye el resolver de token.
func NewTokenResolver(users repository.UserRepository, secret string) *TokenResolver {
	return &TokenResolver{users: users, secret: secret}
}

// Resolve valida el JWT del header Authorization y resuelve el email.
func (r *TokenResolver) Resolve(c *fiber.Ctx) (*entity.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, domain.ErrUnauthorized
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, domain.ErrUnauthorized
	}
	email, err := pkgjwt.Parse(r.secret, strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := r.users.GetByEmail(email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
