// file: internals/features/finance/journal/route/journal_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/constants"
	journalCtl "ecoleadmin_backend/internals/features/finance/journal/controller"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	authMiddleware "ecoleadmin_backend/internals/middlewares/auth"
)

func JournalRoutes(api fiber.Router, db *gorm.DB, years *yearService.ActiveYearCache) {
	ctl := journalCtl.NewJournalController(db, nil, years)

	// garde montée sur le préfixe /journal, pas sur l'API entière
	base := api.Group("/journal",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFinance("le journal de caisse"),
			constants.FinanceRoles,
		),
	)

	base.Get("/", ctl.List)
	base.Get("/period", ctl.Period)
	base.Get("/stats", ctl.Stats)
	base.Get("/balances", ctl.Balances)
	base.Post("/", ctl.Create)
	base.Put("/:id", ctl.Update)
	base.Delete("/:id", ctl.Delete)
}
