package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError: validation rôle + message custom
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := helperAuth.GetRoleFromLocals(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"error":   customForbiddenMessage,
		})
	}
}

// OnlyRoles: raccourci
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// OnlyRolesSlice: variante quand les rôles viennent d'un slice groupé
func OnlyRolesSlice(customMessage string, roles []string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
