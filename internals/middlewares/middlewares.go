package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"ecoleadmin_backend/internals/middlewares/logger"
)

// SetupMiddlewares branche les middlewares globaux (ordre: recovery d'abord).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
