// file: internals/helpers/auth/token.go
package helperAuth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const AccessTokenCookie = "access_token"

/* ======== Extraction ======== */

// ExtractBearerToken: header Authorization, sinon cookie access_token.
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies(AccessTokenCookie); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - no token provided")
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("unauthorized - empty token")
	}
	return tok, nil
}

// ParseClaims vérifie la signature et retourne les claims (sans valider exp,
// la validation d'expiration est faite séparément avec une tolérance).
func ParseClaims(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}); err != nil {
		return nil, err
	}
	return claims, nil
}

func ValidateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	default:
		return fmt.Errorf("invalid exp type")
	}

	now := time.Now().UTC()
	expTime := time.Unix(expUnix, 0).UTC()
	if now.After(expTime.Add(skew)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}

func ExtractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fmt.Errorf("claim user_id manquant")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("claim user_id invalide: %w", err)
	}
	return id, nil
}

/* ======== Locals (une seule convention de clés) ======== */

const (
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
	LocalUserName = "user_name"
)

func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocalUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fmt.Errorf("user_id absent du contexte")
	}
	return uuid.Parse(raw)
}

func GetRoleFromLocals(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals(LocalUserRole).(string)
	return role, ok && role != ""
}
