package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret-de-test"

type stubResolver struct {
	ident Identity
	err   error
}

func (s stubResolver) Resolve(ctx context.Context, userID uuid.UUID) (Identity, error) {
	return s.ident, s.err
}

func makeToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newGateApp(resolver IdentityResolver) *fiber.App {
	app := fiber.New()
	app.Use(RequestGate(GateConfig{
		Resolver: resolver,
		Secret:   func() string { return testSecret },
	}))

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", ok)
	app.Get("/connexion", ok)
	app.Get("/dashboard", ok)
	app.Get("/dashboard/eleves", ok)
	app.Get("/dashboard/personnel", ok)
	app.Get("/api/eleves", ok)
	app.Post("/api/auth/connexion", ok)
	return app
}

func TestGateAnonymous(t *testing.T) {
	app := newGateApp(stubResolver{})

	t.Run("API sans session repond 401, jamais de redirect", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/eleves", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Location"))
	})

	t.Run("la connexion API reste accessible", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/connexion", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("page protegee redirige vers /connexion en conservant la cible", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/dashboard/eleves", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/connexion?redirect=%2Fdashboard%2Feleves", resp.Header.Get("Location"))
	})

	t.Run("chemins publics accessibles", func(t *testing.T) {
		for _, path := range []string{"/", "/connexion"} {
			resp, err := app.Test(httptest.NewRequest("GET", path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		}
	})
}

func TestGateWithSession(t *testing.T) {
	userID := uuid.New()

	t.Run("utilisateur connecte renvoye du formulaire de connexion", func(t *testing.T) {
		app := newGateApp(stubResolver{ident: Identity{ID: userID, Role: "admin", EstActif: true}})
		req := httptest.NewRequest("GET", "/connexion", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, userID))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	})

	t.Run("role autorise passe", func(t *testing.T) {
		app := newGateApp(stubResolver{ident: Identity{ID: userID, Role: "secretary", EstActif: true}})
		req := httptest.NewRequest("GET", "/dashboard/personnel", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, userID))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("role insuffisant redirige vers /non-autorise", func(t *testing.T) {
		app := newGateApp(stubResolver{ident: Identity{ID: userID, Role: "cashier", EstActif: true}})
		req := httptest.NewRequest("GET", "/dashboard/personnel", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, userID))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/non-autorise", resp.Header.Get("Location"))
	})

	t.Run("role inconnu redirige vers /non-autorise", func(t *testing.T) {
		app := newGateApp(stubResolver{ident: Identity{ID: userID, Role: "visiteur", EstActif: true}})
		req := httptest.NewRequest("GET", "/dashboard/eleves", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, userID))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/non-autorise", resp.Header.Get("Location"))
	})

	t.Run("profil introuvable redirige vers /non-autorise", func(t *testing.T) {
		app := newGateApp(stubResolver{err: context.DeadlineExceeded})
		req := httptest.NewRequest("GET", "/dashboard/eleves", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, userID))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/non-autorise", resp.Header.Get("Location"))
	})

	t.Run("compte desactive: deconnexion forcee et retour accueil", func(t *testing.T) {
		app := newGateApp(stubResolver{ident: Identity{ID: userID, Role: "admin", EstActif: false}})
		req := httptest.NewRequest("GET", "/dashboard/eleves", nil)
		req.Header.Set("Authorization", "Bearer "+makeToken(t, userID))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))

		// le cookie de session est efface
		var cleared bool
		for _, cookie := range resp.Cookies() {
			if cookie.Name == "access_token" {
				cleared = cookie.Value == "" || cookie.Expires.Before(time.Now())
			}
		}
		assert.True(t, cleared, "le cookie access_token doit être invalidé")
	})

	t.Run("token expire traite comme anonyme", func(t *testing.T) {
		app := newGateApp(stubResolver{ident: Identity{ID: userID, Role: "admin", EstActif: true}})
		claims := jwt.MapClaims{
			"user_id": userID.String(),
			"exp":     time.Now().Add(-2 * time.Minute).Unix(),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/dashboard/eleves", nil)
		req.Header.Set("Authorization", "Bearer "+expired)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Location"), "/connexion?redirect=")
	})
}
