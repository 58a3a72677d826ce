// file: internals/features/school/staff/route/staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/constants"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	staffCtl "ecoleadmin_backend/internals/features/school/staff/controller"
	authMiddleware "ecoleadmin_backend/internals/middlewares/auth"
)

func StaffRoutes(api fiber.Router, db *gorm.DB, years *yearService.ActiveYearCache) {
	ctl := staffCtl.NewStaffController(db, nil, years)

	// garde montée sur le préfixe /personnel, pas sur l'API entière
	base := api.Group("/personnel",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorScolarite("la gestion du personnel"),
			constants.ScolariteRoles,
		),
	)

	base.Get("/", ctl.List)
	base.Get("/:id", ctl.GetByID)
	base.Post("/", ctl.Create)
	base.Put("/:id", ctl.Update)
	base.Delete("/:id", ctl.Delete)
}
