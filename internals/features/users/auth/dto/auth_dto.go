// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "ecoleadmin_backend/internals/features/users/users/model"
)

type LoginRequestDTO struct {
	Email      string `json:"email" validate:"required,email"`
	MotDePasse string `json:"mot_de_passe" validate:"required,min=6"`
}

// MeDTO: profil exposé au client (jamais le hash de mot de passe).
type MeDTO struct {
	UtilisateurID uuid.UUID `json:"utilisateur_id"`
	Email         string    `json:"email"`
	NomAffichage  string    `json:"nom_affichage"`
	Role          string    `json:"role"`
	EstActif      bool      `json:"est_actif"`
}

func MeFromModel(u userModel.UserModel) MeDTO {
	return MeDTO{
		UtilisateurID: u.UtilisateurID,
		Email:         u.UtilisateurEmail,
		NomAffichage:  u.UtilisateurNomAffichage,
		Role:          u.UtilisateurRole,
		EstActif:      u.UtilisateurEstActif,
	}
}

type LoginResponseDTO struct {
	Token       string    `json:"token"`
	ExpireLe    time.Time `json:"expire_le"`
	Utilisateur MeDTO     `json:"utilisateur"`
}

// AccessCheckDTO: réponse de GET /api/auth/acces — la table de routage des
// rôles est la même que celle du garde serveur, le front ne la duplique pas.
type AccessCheckDTO struct {
	Path     string `json:"path"`
	Role     string `json:"role"`
	Protege  bool   `json:"protege"`
	Autorise bool   `json:"autorise"`
}
