// file: internals/features/users/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/constants"
	userCtl "ecoleadmin_backend/internals/features/users/users/controller"
	authMiddleware "ecoleadmin_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db, nil)

	// garde montée sur le préfixe /utilisateurs, pas sur l'API entière
	admin := api.Group("/utilisateurs",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorDirection("la gestion des comptes"),
			constants.DirectionOnly,
		),
	)

	admin.Get("/", ctl.List)
	admin.Get("/:id", ctl.GetByID)
	admin.Post("/", ctl.Create)
	admin.Put("/:id", ctl.Update)
}
