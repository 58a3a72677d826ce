package constants

import "fmt"

// Rôles applicatifs (valeurs stockées telles quelles dans utilisateurs.role)
const (
	RoleAdmin      = "admin"
	RoleDirector   = "director"
	RoleSecretary  = "secretary"
	RoleAccountant = "accountant"
	RoleCashier    = "cashier"
)

// Messages d'erreur de rôle
const (
	ErrOnlyDirectionCanAccess = "❌ Seuls l'admin ou le directeur peuvent accéder à %s."
	ErrOnlyFinanceCanAccess   = "❌ Seuls l'admin, le directeur, le comptable ou le caissier peuvent accéder à %s."
	ErrOnlyScolariteCanAccess = "❌ Seuls l'admin, le directeur ou le secrétaire peuvent accéder à %s."
)

func RoleErrorDirection(feature string) string {
	return fmt.Sprintf(ErrOnlyDirectionCanAccess, feature)
}

func RoleErrorFinance(feature string) string {
	return fmt.Sprintf(ErrOnlyFinanceCanAccess, feature)
}

func RoleErrorScolarite(feature string) string {
	return fmt.Sprintf(ErrOnlyScolariteCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleDirector,
		RoleSecretary,
		RoleAccountant,
		RoleCashier,
	}

	// gestion des élèves / personnel / classes
	ScolariteRoles = []string{
		RoleAdmin,
		RoleDirector,
		RoleSecretary,
	}

	// paiements / journal de caisse / répartition
	FinanceRoles = []string{
		RoleAdmin,
		RoleDirector,
		RoleAccountant,
		RoleCashier,
	}

	DirectionOnly = []string{
		RoleAdmin,
		RoleDirector,
	}
)

func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
