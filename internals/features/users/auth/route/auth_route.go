// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "ecoleadmin_backend/internals/features/users/auth/controller"
	"ecoleadmin_backend/internals/middlewares"
	authMiddleware "ecoleadmin_backend/internals/middlewares/auth"
)

// AuthRoutes: /connexion est publique (rate-limitée), le reste exige une
// session valide.
func AuthRoutes(app fiber.Router, db *gorm.DB, resolver authMiddleware.IdentityResolver) {
	ctl := authCtl.NewAuthController(db, nil)

	public := app.Group("/api/auth")
	public.Post("/connexion", middlewares.LoginRateLimiter(), ctl.Login)

	private := app.Group("/api/auth", authMiddleware.AuthMiddleware(db, resolver))
	private.Post("/deconnexion", ctl.Logout)
	private.Get("/moi", ctl.Me)
	private.Get("/acces", ctl.Access)
}
