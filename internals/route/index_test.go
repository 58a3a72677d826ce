// file: internals/route/index_test.go
package routes

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journalRoute "ecoleadmin_backend/internals/features/finance/journal/route"
	paymentRoute "ecoleadmin_backend/internals/features/finance/payments/route"
	yearRoute "ecoleadmin_backend/internals/features/school/academic_years/route"
	yearService "ecoleadmin_backend/internals/features/school/academic_years/service"
	classRoute "ecoleadmin_backend/internals/features/school/classes/route"
	staffRoute "ecoleadmin_backend/internals/features/school/staff/route"
	studentRoute "ecoleadmin_backend/internals/features/school/students/route"
	userRoute "ecoleadmin_backend/internals/features/users/users/route"
	helperAuth "ecoleadmin_backend/internals/helpers/auth"
)

// newAPIApp monte toutes les features dans le même ordre que SetupRoutes,
// avec une session simulée portant le rôle donné. Les gardes de rôle
// tournent avant tout accès DB, donc un nil *gorm.DB suffit ici: seul le
// verdict 403-ou-pas nous intéresse.
func newAPIApp(role string) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())

	years := yearService.NewActiveYearCache(time.Minute)

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocalUserID, uuid.NewString())
		c.Locals(helperAuth.LocalUserRole, role)
		return c.Next()
	})

	yearRoute.AcademicYearRoutes(api, nil, years)
	studentRoute.StudentRoutes(api, nil, years)
	staffRoute.StaffRoutes(api, nil, years)
	classRoute.ClassRoutes(api, nil, years)
	paymentRoute.PaymentRoutes(api, nil, years)
	journalRoute.JournalRoutes(api, nil, years)
	userRoute.UserRoutes(api, nil)

	return app
}

// La matrice rôle × endpoint, toutes les features montées ensemble: la
// garde d'une feature ne doit jamais fermer les routes d'une autre.
func TestAPIRoleMatrix(t *testing.T) {
	cases := []struct {
		role      string
		method    string
		path      string
		forbidden bool
	}{
		// secretary: scolarité oui, finance et comptes non
		{"secretary", fiber.MethodGet, "/api/eleves", false},
		{"secretary", fiber.MethodGet, "/api/personnel", false},
		{"secretary", fiber.MethodGet, "/api/classes", false},
		{"secretary", fiber.MethodGet, "/api/paiements", true},
		{"secretary", fiber.MethodGet, "/api/journal", true},
		{"secretary", fiber.MethodGet, "/api/utilisateurs", true},

		// accountant: finance oui, scolarité et direction non
		{"accountant", fiber.MethodGet, "/api/paiements", false},
		{"accountant", fiber.MethodGet, "/api/journal", false},
		{"accountant", fiber.MethodGet, "/api/eleves", true},
		{"accountant", fiber.MethodGet, "/api/paiements-supprimes", true},

		// cashier: comme accountant, sans l'historique des suppressions
		{"cashier", fiber.MethodGet, "/api/paiements", false},
		{"cashier", fiber.MethodGet, "/api/journal", false},
		{"cashier", fiber.MethodGet, "/api/paiements-supprimes", true},
		{"cashier", fiber.MethodPost, "/api/annees", true},

		// lecture des années: ouverte à toute session
		{"cashier", fiber.MethodGet, "/api/annees", false},
		{"secretary", fiber.MethodGet, "/api/annees", false},

		// direction: tout
		{"director", fiber.MethodGet, "/api/paiements-supprimes", false},
		{"director", fiber.MethodGet, "/api/utilisateurs", false},
		{"director", fiber.MethodPost, "/api/annees", false},
		{"admin", fiber.MethodGet, "/api/eleves", false},
		{"admin", fiber.MethodGet, "/api/journal", false},
	}

	for _, tc := range cases {
		app := newAPIApp(tc.role)
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err, "%s %s %s", tc.role, tc.method, tc.path)

		if tc.forbidden {
			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode,
				"%s %s %s devrait être refusé", tc.role, tc.method, tc.path)
		} else {
			assert.NotEqual(t, fiber.StatusForbidden, resp.StatusCode,
				"%s %s %s ne devrait pas être refusé", tc.role, tc.method, tc.path)
		}
	}
}

// Un comptable sur /api/paiements ne doit jamais recevoir le message de la
// garde des années académiques: chaque garde reste sur son propre préfixe.
func TestGuardsScopedToTheirPrefix(t *testing.T) {
	app := newAPIApp("accountant")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/paiements", nil))
	require.NoError(t, err)
	assert.NotEqual(t, fiber.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "années académiques")
}
