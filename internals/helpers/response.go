package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Enveloppe JSON uniforme: {success, message?, data?} / {success:false, error}

// ✅ Succès (200 par défaut)
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Succès avec code custom (ex: 201 pour created)
func JsonWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusCreated, message, data)
}

// ✅ Liste paginée: data = {items, pagination}
func JsonList(c *fiber.Ctx, items interface{}, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"items":      items,
			"pagination": pagination,
		},
	})
}

// ❌ Erreur simple
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ❌ Erreur avec détails (ex: enregistrements en conflit pour une cascade)
func JsonErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"details": details,
	})
}

// ❌ Spécifique aux erreurs de validation (validator.v10)
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Entrée invalide")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Validation échouée", errorsMap)
}
