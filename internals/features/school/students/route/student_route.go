// file: internals/features/school/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/constants"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	studentCtl "ecoleadmin_backend/internals/features/school/students/controller"
	authMiddleware "ecoleadmin_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB, years *yearService.ActiveYearCache) {
	ctl := studentCtl.NewStudentController(db, nil, years)

	// garde montée sur le préfixe /eleves, pas sur l'API entière
	base := api.Group("/eleves",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorScolarite("la gestion des élèves"),
			constants.ScolariteRoles,
		),
	)

	base.Get("/", ctl.List)
	base.Get("/:id", ctl.GetByID)
	base.Post("/", ctl.Create)
	base.Put("/:id", ctl.Update)
	base.Delete("/:id", ctl.Delete)
}
