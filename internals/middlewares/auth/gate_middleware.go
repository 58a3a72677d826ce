// file: internals/middlewares/auth/gate_middleware.go
package auth

import (
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/constants"
	blacklistModel "ecoleadmin_backend/internals/features/users/auth/model"
	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

// GateConfig: dépendances de la gate. Resolver est injectable (tests).
type GateConfig struct {
	DB       *gorm.DB
	Resolver IdentityResolver
	// Secret est une fonction pour que la config puisse être chargée après
	// la construction de l'app dans les tests.
	Secret func() string
}

// RequestGate tourne sur TOUTES les requêtes entrantes, avant toute logique
// de page ou d'API. C'est l'application unique de la table RoutePolicy côté
// serveur; le guard client consomme la même table via /api/auth/acces.
//
//  1. pas de session: API → 401 JSON (jamais de redirect); chemin public →
//     passe; sinon → redirect /connexion en conservant le chemin demandé.
//  2. session + /connexion → redirect /dashboard.
//  3. session + préfixe protégé: profil introuvable ou rôle inconnu →
//     /non-autorise; compte désactivé → déconnexion forcée + redirect /;
//     rôle non autorisé → /non-autorise.
//  4. sinon: laisser passer.
func RequestGate(cfg GateConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		userID, hasSession := resolveSession(c, cfg.Secret())

		if !hasSession {
			if strings.HasPrefix(path, constants.APIPrefix) {
				// seule API accessible sans session: la connexion
				if path == constants.PathAPILogin {
					return c.Next()
				}
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"success": false,
					"error":   "Authentification requise",
				})
			}
			if isPublicPath(path) {
				return c.Next()
			}
			return c.Redirect(
				constants.PathLogin+"?redirect="+url.QueryEscape(c.OriginalURL()),
				fiber.StatusFound,
			)
		}

		// Un utilisateur connecté n'a rien à faire sur le formulaire de connexion.
		if path == constants.PathLogin {
			return c.Redirect(constants.PathDashboard, fiber.StatusFound)
		}

		if prefix, ok := constants.MatchProtectedPrefix(path); ok {
			ident, err := cfg.Resolver.Resolve(c.UserContext(), userID)
			if err != nil {
				log.Printf("[GATE] profil introuvable user=%s: %v", userID, err)
				return c.Redirect(constants.PathUnauthorized, fiber.StatusFound)
			}
			if !constants.IsKnownRole(ident.Role) {
				return c.Redirect(constants.PathUnauthorized, fiber.StatusFound)
			}
			if !ident.EstActif {
				forceSignOut(c, cfg.DB, userID)
				return c.Redirect(constants.PathHome, fiber.StatusFound)
			}
			if !constants.IsAllowed(ident.Role, path) {
				log.Printf("[GATE] refus role=%s prefix=%s", ident.Role, prefix)
				return c.Redirect(constants.PathUnauthorized, fiber.StatusFound)
			}
		}

		return c.Next()
	}
}

// resolveSession: session = token présent, signature valide, non expiré.
// Pas de lookup DB ici; le profil n'est résolu que sur les préfixes protégés.
func resolveSession(c *fiber.Ctx, secret string) (uuid.UUID, bool) {
	tokenString, err := helperAuth.ExtractBearerToken(c)
	if err != nil || secret == "" {
		return uuid.Nil, false
	}
	claims, err := helperAuth.ParseClaims(tokenString, secret)
	if err != nil {
		return uuid.Nil, false
	}
	if err := helperAuth.ValidateTokenExpiry(claims, 30*time.Second); err != nil {
		return uuid.Nil, false
	}
	id, err := helperAuth.ExtractUserID(claims)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func isPublicPath(path string) bool {
	if path == constants.PathHome || path == constants.PathHealth {
		return true
	}
	for _, p := range []string{constants.PathLogin, constants.PathUnauthorized} {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// forceSignOut: blacklist le token présenté + efface le cookie de session.
func forceSignOut(c *fiber.Ctx, db *gorm.DB, userID uuid.UUID) {
	if tokenString, err := helperAuth.ExtractBearerToken(c); err == nil && db != nil {
		entry := blacklistModel.TokenBlacklist{
			Token:         tokenString,
			UtilisateurID: &userID,
			Motif:         "compte_desactive",
			ExpiredAt:     time.Now().Add(24 * time.Hour),
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("[GATE] échec blacklist token: %v", err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:    helperAuth.AccessTokenCookie,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
	})
}
