// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/constants"
	paymentCtl "ecoleadmin_backend/internals/features/finance/payments/controller"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	authMiddleware "ecoleadmin_backend/internals/middlewares/auth"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB, years *yearService.ActiveYearCache) {
	ctl := paymentCtl.NewPaymentController(db, nil, years)

	// historique des suppressions: direction uniquement, gardé route par
	// route et déclaré avant le groupe /paiements pour que son préfixe
	// n'attrape jamais /paiements-supprimes
	admin := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorDirection("l'historique des paiements supprimés"),
		constants.DirectionOnly,
	)
	api.Get("/paiements-supprimes", admin, ctl.ListDeleted)
	api.Delete("/paiements-supprimes/:id", admin, ctl.PurgeDeleted)

	// garde montée sur le préfixe /paiements, pas sur l'API entière
	base := api.Group("/paiements",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorFinance("les paiements"),
			constants.FinanceRoles,
		),
	)

	// routes fixes avant /:id
	base.Get("/", ctl.List)
	base.Get("/eleves", ctl.ByStudents)
	base.Get("/periode", ctl.Periode)
	base.Get("/:id", ctl.GetByID)
	base.Post("/", ctl.Create)
	base.Put("/:id", ctl.Update)
	base.Delete("/:id", ctl.Delete)
}
