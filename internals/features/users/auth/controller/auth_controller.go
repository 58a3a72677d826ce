// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"ecoleadmin_backend/internals/configs"
	"ecoleadmin_backend/internals/constants"
	dto "ecoleadmin_backend/internals/features/users/auth/dto"
	blacklistModel "ecoleadmin_backend/internals/features/users/auth/model"
	userModel "ecoleadmin_backend/internals/features/users/users/model"
	helper "ecoleadmin_backend/internals/helpers"
	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	if v == nil {
		v = validator.New()
	}
	return &AuthController{DB: db, Validator: v}
}

/* ============================================
   CONNEXION
   POST /api/auth/connexion
============================================ */

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var p dto.LoginRequestDTO
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload invalide")
	}
	if err := ctl.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(p.Email))

	var user userModel.UserModel
	if err := ctl.DB.Where("utilisateur_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// même message que pour un mauvais mot de passe
			return helper.JsonError(c, fiber.StatusUnauthorized, "Identifiants invalides")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de connexion")
	}

	if !user.CheckPassword(p.MotDePasse) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identifiants invalides")
	}
	if !user.UtilisateurEstActif {
		return helper.JsonError(c, fiber.StatusForbidden, "Votre compte a été désactivé")
	}

	now := time.Now()
	expiresAt := now.Add(configs.AccessTokenTTL())
	claims := jwt.MapClaims{
		"user_id":       user.UtilisateurID.String(),
		"role":          user.UtilisateurRole,
		"nom_affichage": user.UtilisateurNomAffichage,
		"iat":           now.Unix(),
		"exp":           expiresAt.Unix(),
	}

	secretKey := configs.JWTSecret
	if secretKey == "" {
		log.Println("[ERROR] JWT_SECRET vide, connexion impossible")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Configuration serveur incomplète")
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
	if err != nil {
		log.Println("[ERROR] Signature du token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de connexion")
	}

	// cookie de session pour la navigation pages, token en clair pour les
	// clients API
	c.Cookie(&fiber.Cookie{
		Name:     helperAuth.AccessTokenCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Connexion réussie", dto.LoginResponseDTO{
		Token:       token,
		ExpireLe:    expiresAt,
		Utilisateur: dto.MeFromModel(user),
	})
}

/* ============================================
   DÉCONNEXION
   POST /api/auth/deconnexion
============================================ */

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, err := helperAuth.ExtractBearerToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Aucun token à révoquer")
	}

	// expiration du token pour borner la durée de vie de l'entrée blacklist
	expiredAt := time.Now().Add(configs.AccessTokenTTL())
	if claims, err := helperAuth.ParseClaims(tokenString, configs.JWTSecret); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := blacklistModel.TokenBlacklist{
		Token:     tokenString,
		Motif:     "deconnexion",
		ExpiredAt: expiredAt,
	}
	if userID, err := helperAuth.GetUserIDFromLocals(c); err == nil {
		entry.UtilisateurID = &userID
	}
	// token déjà blacklisté = déconnexion déjà effective, pas une erreur
	if err := ctl.DB.Create(&entry).Error; err != nil && !helper.IsUniqueViolation(err) {
		log.Println("[ERROR] Blacklist du token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de déconnexion")
	}

	c.Cookie(&fiber.Cookie{
		Name:     helperAuth.AccessTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Déconnexion réussie", nil)
}

/* ============================================
   PROFIL COURANT
   GET /api/auth/moi
============================================ */

func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Utilisateur non identifié")
	}

	var user userModel.UserModel
	if err := ctl.DB.Where("utilisateur_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Compte introuvable")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Échec de lecture du profil")
	}

	return helper.JsonOK(c, "OK", dto.MeFromModel(user))
}

/* ============================================
   VÉRIFICATION D'ACCÈS
   GET /api/auth/acces?path=/personnel
============================================ */

func (ctl *AuthController) Access(c *fiber.Ctx) error {
	path := strings.TrimSpace(c.Query("path"))
	if path == "" || !strings.HasPrefix(path, "/") {
		return helper.JsonError(c, fiber.StatusBadRequest, "paramètre path requis (chemin absolu)")
	}

	role, ok := helperAuth.GetRoleFromLocals(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Utilisateur non identifié")
	}

	_, protege := constants.MatchProtectedPrefix(path)
	return helper.JsonOK(c, "OK", dto.AccessCheckDTO{
		Path:     path,
		Role:     role,
		Protege:  protege,
		Autorise: !protege || constants.IsAllowed(role, path),
	})
}
