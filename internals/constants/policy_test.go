package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchProtectedPrefix(t *testing.T) {
	tests := []struct {
		path       string
		wantPrefix string
		wantOK     bool
	}{
		{"/dashboard", "/dashboard", true},
		{"/dashboard/eleves", "/dashboard/eleves", true},
		{"/dashboard/eleves/123", "/dashboard/eleves", true},
		// le prefixe le plus long gagne
		{"/dashboard/paiements-supprimes", "/dashboard/paiements-supprimes", true},
		{"/dashboard/paiements-supprimes/42", "/dashboard/paiements-supprimes", true},
		{"/dashboard/settings/utilisateurs/abc", "/dashboard/settings/utilisateurs", true},
		// la racine /dashboard ne couvre pas ses sous-chemins inconnus
		{"/dashboard/inconnu", "", false},
		{"/connexion", "", false},
		{"/", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			prefix, ok := MatchProtectedPrefix(tc.path)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantPrefix, prefix)
		})
	}
}

func TestIsAllowed(t *testing.T) {
	tests := []struct {
		name string
		role string
		path string
		want bool
	}{
		{"caissier refuse sur le personnel", RoleCashier, "/dashboard/personnel", false},
		{"secretaire autorisee sur le personnel", RoleSecretary, "/dashboard/personnel", true},
		{"comptable autorise sur le journal", RoleAccountant, "/dashboard/journal", true},
		{"secretaire refusee sur les paiements", RoleSecretary, "/dashboard/paiements", false},
		{"caissier autorise sur les paiements", RoleCashier, "/dashboard/paiements", true},
		{"caissier refuse sur l'historique des paiements supprimes", RoleCashier, "/dashboard/paiements-supprimes", false},
		{"directeur autorise sur l'historique", RoleDirector, "/dashboard/paiements-supprimes", true},
		{"admin autorise partout", RoleAdmin, "/dashboard/settings/utilisateurs", true},
		{"tous les roles sur la racine du dashboard", RoleCashier, "/dashboard", true},
		// chemin non couvert par la table = refus
		{"refus par defaut", RoleAdmin, "/dashboard/inconnu", false},
		{"role inconnu refuse", "visiteur", "/dashboard/eleves", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsAllowed(tc.role, tc.path))
		})
	}
}

func TestIsKnownRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsKnownRole(r), r)
	}
	assert.False(t, IsKnownRole(""))
	assert.False(t, IsKnownRole("visiteur"))
}
