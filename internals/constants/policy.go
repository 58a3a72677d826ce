package constants

import "strings"

// Chemins publics / pages spéciales servies par le front.
const (
	PathHome         = "/"
	PathLogin        = "/connexion"
	PathUnauthorized = "/non-autorise"
	PathDashboard    = "/dashboard"
	APIPrefix        = "/api"
	PathAPILogin     = "/api/auth/connexion"
	PathHealth       = "/health"
)

// RoutePolicy est LA table d'autorisation, unique source de vérité :
// la gate côté serveur ET le guard côté client (via GET /api/auth/acces)
// consomment cette même table. Ne jamais la dupliquer ailleurs.
//
// préfixe de chemin → rôles autorisés
var RoutePolicy = map[string][]string{
	PathDashboard:                      AllRoles,
	"/dashboard/personnel":             ScolariteRoles,
	"/dashboard/eleves":                ScolariteRoles,
	"/dashboard/paiements":             FinanceRoles,
	"/dashboard/paiements-supprimes":   DirectionOnly,
	"/dashboard/journal":               FinanceRoles,
	"/dashboard/repartition":           FinanceRoles,
	"/dashboard/classes":               ScolariteRoles,
	"/dashboard/settings/annees":       DirectionOnly,
	"/dashboard/settings/utilisateurs": DirectionOnly,
}

// MatchProtectedPrefix retourne le préfixe configuré le plus long qui couvre
// path (match exact, ou path commence par préfixe+"/"). Le préfixe racine
// /dashboard n'est couvert QUE par match exact, sinon il absorberait tous les
// sous-chemins et sur-autoriserait.
func MatchProtectedPrefix(path string) (string, bool) {
	best := ""
	for prefix := range RoutePolicy {
		if path == prefix {
			if len(prefix) > len(best) {
				best = prefix
			}
			continue
		}
		if prefix == PathDashboard {
			continue // racine: exact uniquement
		}
		if strings.HasPrefix(path, prefix+"/") && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

// IsAllowed: predicate unique rôle × chemin. Aucun préfixe connu → refus.
func IsAllowed(role, path string) bool {
	prefix, ok := MatchProtectedPrefix(path)
	if !ok {
		return false
	}
	for _, r := range RoutePolicy[prefix] {
		if r == role {
			return true
		}
	}
	return false
}
