// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/configs"
	blacklistModel "ecoleadmin_backend/internals/features/users/auth/model"
	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

// AuthMiddleware protège les groupes /api : token valide, non blacklisté,
// compte actif. Claims → Locals (user_id, user_role, user_name).
func AuthMiddleware(db *gorm.DB, resolver IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := helperAuth.ExtractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// Blacklist (une fois par requête)
		if c.Locals("token_checked") == nil {
			var existing blacklistModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token présent dans la blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error pendant le check blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vide")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := helperAuth.ParseClaims(tokenString, secretKey)
		if err != nil {
			log.Println("[ERROR] Échec parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := helperAuth.ValidateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := helperAuth.ExtractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals(helperAuth.LocalUserID, userID.String())

		// Compte actif: le rôle vient du profil DB, pas du token, pour que
		// changement de rôle / désactivation prennent effet immédiatement.
		ident, err := resolver.Resolve(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !ident.EstActif {
			return fiber.NewError(fiber.StatusForbidden, "Votre compte a été désactivé")
		}

		c.Locals(helperAuth.LocalUserRole, ident.Role)
		c.Locals(helperAuth.LocalUserName, ident.NomAffichage)

		return c.Next()
	}
}
