// file: internals/middlewares/auth/identity.go
package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "ecoleadmin_backend/internals/features/users/users/model"
)

// Identity: profil applicatif minimal résolu à partir d'une session.
type Identity struct {
	ID           uuid.UUID
	Role         string
	NomAffichage string
	EstActif     bool
}

// IdentityResolver est injectable pour que la gate soit testable sans DB.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (Identity, error)
}

// DBIdentityResolver: implémentation de production, lit la table utilisateurs.
type DBIdentityResolver struct {
	DB *gorm.DB
}

func (r DBIdentityResolver) Resolve(ctx context.Context, userID uuid.UUID) (Identity, error) {
	var u userModel.UserModel
	if err := r.DB.WithContext(ctx).
		Where("utilisateur_id = ?", userID).
		First(&u).Error; err != nil {
		return Identity{}, err
	}
	return Identity{
		ID:           u.UtilisateurID,
		Role:         u.UtilisateurRole,
		NomAffichage: u.UtilisateurNomAffichage,
		EstActif:     u.UtilisateurEstActif,
	}, nil
}
