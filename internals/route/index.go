// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/configs"
	journalRoute "ecoleadmin_backend/internals/features/finance/journal/route"
	paymentRoute "ecoleadmin_backend/internals/features/finance/payments/route"
	yearRoute "ecoleadmin_backend/internals/features/school/academic_years/route"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	classRoute "ecoleadmin_backend/internals/features/school/classes/route"
	staffRoute "ecoleadmin_backend/internals/features/school/staff/route"
	studentRoute "ecoleadmin_backend/internals/features/school/students/route"
	authRoute "ecoleadmin_backend/internals/features/users/auth/route"
	userRoute "ecoleadmin_backend/internals/features/users/users/route"
	authMiddleware "ecoleadmin_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	resolver := authMiddleware.DBIdentityResolver{DB: db}

	// mémo partagé "année active": toutes les features le consomment,
	// une seule instance pour une seule invalidation
	years := yearService.NewActiveYearCache(configs.ActiveYearCacheTTL())

	// gate globale: toutes les requêtes entrantes, pages comme API
	app.Use(authMiddleware.RequestGate(authMiddleware.GateConfig{
		DB:       db,
		Resolver: resolver,
		Secret:   func() string { return configs.JWTSecret },
	}))

	log.Println("[INFO] Montage des routes d'authentification...")
	authRoute.AuthRoutes(app, db, resolver)

	// API métier: session obligatoire
	api := app.Group("/api", authMiddleware.AuthMiddleware(db, resolver))

	log.Println("[INFO] Montage des routes métier...")
	yearRoute.AcademicYearRoutes(api, db, years)
	studentRoute.StudentRoutes(api, db, years)
	staffRoute.StaffRoutes(api, db, years)
	classRoute.ClassRoutes(api, db, years)
	paymentRoute.PaymentRoutes(api, db, years)
	journalRoute.JournalRoutes(api, db, years)
	userRoute.UserRoutes(api, db)
}
