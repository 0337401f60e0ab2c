package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payord-api/internal/application/dto"
	"github.com/jhoicas/payord-api/internal/domain"
	"github.com/jhoicas/payord-api/pkg/jwt"
)

// Locals keys para el subject y el rol en Fiber.
const (
	LocalSubject = "subject"
	LocalRole    = "role"
)

// Roles con acceso a la conversión.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// AuthMiddleware valida el Bearer Token JWT y extrae subject y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return writeError(c, unauthorized("Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return writeError(c, unauthorized("formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return writeError(c, unauthorized("token vacío"))
		}
		subject, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return writeError(c, unauthorized("token inválido o expirado"))
		}
		c.Locals(LocalSubject, subject)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return writeError(c, unauthorized("el token no incluye rol"))
		}
		for _, r := range allowed {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso"})
	}
}

func unauthorized(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrUnauthorized, reason)
}

// GetSubject devuelve el subject del contexto (después del middleware de auth).
func GetSubject(c *fiber.Ctx) string {
	return localString(c, LocalSubject)
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
