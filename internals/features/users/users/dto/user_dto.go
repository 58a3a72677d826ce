// file: internals/features/users/users/dto/user_dto.go
package dto

import (
	"strings"

	model "ecoleadmin_backend/internals/features/users/users/model"
)

type UserCreateDTO struct {
	Email        string `json:"email" validate:"required,email"`
	MotDePasse   string `json:"mot_de_passe" validate:"required,min=8"`
	NomAffichage string `json:"nom_affichage" validate:"required,min=2,max=120"`
	Role         string `json:"role" validate:"required,oneof=admin director secretary accountant cashier"`
}

func (p UserCreateDTO) ToModel() (model.UserModel, error) {
	u := model.UserModel{
		UtilisateurEmail:        strings.ToLower(strings.TrimSpace(p.Email)),
		UtilisateurNomAffichage: strings.TrimSpace(p.NomAffichage),
		UtilisateurRole:         p.Role,
		UtilisateurEstActif:     true,
	}
	if err := u.SetPassword(p.MotDePasse); err != nil {
		return model.UserModel{}, err
	}
	return u, nil
}

// UserUpdateDTO: champs administrables. Un compte ne se supprime jamais,
// est_actif=false en tient lieu.
type UserUpdateDTO struct {
	NomAffichage *string `json:"nom_affichage" validate:"omitempty,min=2,max=120"`
	Role         *string `json:"role" validate:"omitempty,oneof=admin director secretary accountant cashier"`
	EstActif     *bool   `json:"est_actif"`
	MotDePasse   *string `json:"mot_de_passe" validate:"omitempty,min=8"`
}

func (p UserUpdateDTO) Apply(u *model.UserModel) error {
	if p.NomAffichage != nil {
		u.UtilisateurNomAffichage = strings.TrimSpace(*p.NomAffichage)
	}
	if p.Role != nil {
		u.UtilisateurRole = *p.Role
	}
	if p.EstActif != nil {
		u.UtilisateurEstActif = *p.EstActif
	}
	if p.MotDePasse != nil {
		if err := u.SetPassword(*p.MotDePasse); err != nil {
			return err
		}
	}
	return nil
}
