// file: internals/features/school/staff/dto/staff_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "ecoleadmin_backend/internals/features/school/staff/model"
)

type StaffCreateDTO struct {
	PersonnelNom       string   `json:"personnel_nom" validate:"required,min=1,max=100"`
	PersonnelPrenom    string   `json:"personnel_prenom" validate:"required,min=1,max=100"`
	PersonnelFonction  string   `json:"personnel_fonction" validate:"required,min=2,max=50"`
	PersonnelTelephone string   `json:"personnel_telephone" validate:"omitempty,max=30"`
	PersonnelEmail     *string  `json:"personnel_email" validate:"omitempty,email"`
	PersonnelSalaire   *float64 `json:"personnel_salaire" validate:"omitempty,gte=0"`
}

func (p *StaffCreateDTO) Normalize() {
	p.PersonnelNom = strings.TrimSpace(p.PersonnelNom)
	p.PersonnelPrenom = strings.TrimSpace(p.PersonnelPrenom)
	p.PersonnelFonction = strings.TrimSpace(p.PersonnelFonction)
	p.PersonnelTelephone = strings.TrimSpace(p.PersonnelTelephone)
}

func (p StaffCreateDTO) ToModel(anneeID uuid.UUID) model.StaffModel {
	return model.StaffModel{
		PersonnelNom:       p.PersonnelNom,
		PersonnelPrenom:    p.PersonnelPrenom,
		PersonnelFonction:  p.PersonnelFonction,
		PersonnelTelephone: p.PersonnelTelephone,
		PersonnelEmail:     p.PersonnelEmail,
		PersonnelSalaire:   p.PersonnelSalaire,
		PersonnelAnneeID:   anneeID,
	}
}

type StaffUpdateDTO struct {
	PersonnelNom       *string  `json:"personnel_nom" validate:"omitempty,min=1,max=100"`
	PersonnelPrenom    *string  `json:"personnel_prenom" validate:"omitempty,min=1,max=100"`
	PersonnelFonction  *string  `json:"personnel_fonction" validate:"omitempty,min=2,max=50"`
	PersonnelTelephone *string  `json:"personnel_telephone" validate:"omitempty,max=30"`
	PersonnelEmail     *string  `json:"personnel_email" validate:"omitempty,email"`
	PersonnelSalaire   *float64 `json:"personnel_salaire" validate:"omitempty,gte=0"`
}

func (p StaffUpdateDTO) Apply(ent *model.StaffModel) {
	if p.PersonnelNom != nil {
		ent.PersonnelNom = strings.TrimSpace(*p.PersonnelNom)
	}
	if p.PersonnelPrenom != nil {
		ent.PersonnelPrenom = strings.TrimSpace(*p.PersonnelPrenom)
	}
	if p.PersonnelFonction != nil {
		ent.PersonnelFonction = strings.TrimSpace(*p.PersonnelFonction)
	}
	if p.PersonnelTelephone != nil {
		ent.PersonnelTelephone = strings.TrimSpace(*p.PersonnelTelephone)
	}
	if p.PersonnelEmail != nil {
		ent.PersonnelEmail = p.PersonnelEmail
	}
	if p.PersonnelSalaire != nil {
		ent.PersonnelSalaire = p.PersonnelSalaire
	}
}

type StaffDetailDTO struct {
	model.StaffModel
	EstSupprime bool       `json:"est_supprime"`
	SupprimeLe  *time.Time `json:"supprime_le,omitempty"`
}
