// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/constants"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	classCtl "ecoleadmin_backend/internals/features/school/classes/controller"
	authMiddleware "ecoleadmin_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB, years *yearService.ActiveYearCache) {
	ctl := classCtl.NewClassController(db, nil, years)

	// garde montée sur le préfixe /classes, pas sur l'API entière
	base := api.Group("/classes",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorScolarite("la gestion des classes"),
			constants.ScolariteRoles,
		),
	)

	base.Get("/", ctl.List)
	base.Get("/:id", ctl.GetByID)
	base.Post("/", ctl.Create)
	base.Put("/:id", ctl.Update)
	base.Delete("/:id", ctl.Delete)
}
