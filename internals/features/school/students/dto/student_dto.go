// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "ecoleadmin_backend/internals/features/school/students/model"
)

type StudentCreateDTO struct {
	EleveMatricule     string     `json:"eleve_matricule" validate:"required,min=3,max=30"`
	EleveNom           string     `json:"eleve_nom" validate:"required,min=1,max=100"`
	ElevePrenom        string     `json:"eleve_prenom" validate:"required,min=1,max=100"`
	EleveSexe          string     `json:"eleve_sexe" validate:"omitempty,oneof=M F"`
	EleveDateNaissance *time.Time `json:"eleve_date_naissance"`
	EleveNiveau        string     `json:"eleve_niveau" validate:"omitempty,max=20"`
	EleveClasseID      *uuid.UUID `json:"eleve_classe_id"`
}

func (p *StudentCreateDTO) Normalize() {
	p.EleveMatricule = strings.TrimSpace(p.EleveMatricule)
	p.EleveNom = strings.TrimSpace(p.EleveNom)
	p.ElevePrenom = strings.TrimSpace(p.ElevePrenom)
	p.EleveNiveau = strings.TrimSpace(p.EleveNiveau)
}

func (p StudentCreateDTO) ToModel(anneeID uuid.UUID) model.StudentModel {
	return model.StudentModel{
		EleveMatricule:     p.EleveMatricule,
		EleveNom:           p.EleveNom,
		ElevePrenom:        p.ElevePrenom,
		EleveSexe:          p.EleveSexe,
		EleveDateNaissance: p.EleveDateNaissance,
		EleveNiveau:        p.EleveNiveau,
		EleveClasseID:      p.EleveClasseID,
		EleveAnneeID:       anneeID,
	}
}

type StudentUpdateDTO struct {
	EleveNom           *string    `json:"eleve_nom" validate:"omitempty,min=1,max=100"`
	ElevePrenom        *string    `json:"eleve_prenom" validate:"omitempty,min=1,max=100"`
	EleveSexe          *string    `json:"eleve_sexe" validate:"omitempty,oneof=M F"`
	EleveDateNaissance *time.Time `json:"eleve_date_naissance"`
	EleveNiveau        *string    `json:"eleve_niveau" validate:"omitempty,max=20"`
	EleveClasseID      *uuid.UUID `json:"eleve_classe_id"`
}

func (p StudentUpdateDTO) Apply(ent *model.StudentModel) {
	if p.EleveNom != nil {
		ent.EleveNom = strings.TrimSpace(*p.EleveNom)
	}
	if p.ElevePrenom != nil {
		ent.ElevePrenom = strings.TrimSpace(*p.ElevePrenom)
	}
	if p.EleveSexe != nil {
		ent.EleveSexe = *p.EleveSexe
	}
	if p.EleveDateNaissance != nil {
		ent.EleveDateNaissance = p.EleveDateNaissance
	}
	if p.EleveNiveau != nil {
		ent.EleveNiveau = strings.TrimSpace(*p.EleveNiveau)
	}
	if p.EleveClasseID != nil {
		ent.EleveClasseID = p.EleveClasseID
	}
}

// StudentDetailDTO: détail avec le flag est_supprime posé par le fallback
// sur la table miroir.
type StudentDetailDTO struct {
	model.StudentModel
	EstSupprime bool       `json:"est_supprime"`
	SupprimeLe  *time.Time `json:"supprime_le,omitempty"`
}
