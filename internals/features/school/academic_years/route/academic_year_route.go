// file: internals/features/school/academic_years/route/academic_year_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/constants"
	yearCtl "ecoleadmin_backend/internals/features/school/academic_years/controller"
	"ecoleadmin_backend/internals/features/school/academic_years/service"
	authMiddleware "ecoleadmin_backend/internals/middlewares/auth"
)

func AcademicYearRoutes(api fiber.Router, db *gorm.DB, cache *service.ActiveYearCache) {
	ctl := yearCtl.NewAcademicYearController(db, nil, cache)

	// écriture: direction uniquement, gardée route par route puisque la
	// lecture reste ouverte à tous les rôles
	admin := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorDirection("la gestion des années académiques"),
		constants.DirectionOnly,
	)

	// lecture: tous les rôles (l'année active scope toutes les pages)
	api.Get("/annees", ctl.List)
	api.Get("/annees/active", ctl.GetActive)
	api.Get("/annees/:id", ctl.GetByID)

	api.Post("/annees", admin, ctl.Create)
	api.Put("/annees/:id", admin, ctl.Update)
	api.Post("/annees/:id/activer", admin, ctl.Activate)
}
