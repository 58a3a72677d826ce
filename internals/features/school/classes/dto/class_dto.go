// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "ecoleadmin_backend/internals/features/school/classes/model"
	studentModel "ecoleadmin_backend/internals/features/school/students/model"
)

type ClassCreateDTO struct {
	ClasseNom            string     `json:"classe_nom" validate:"required,min=1,max=50"`
	ClasseNiveau         string     `json:"classe_niveau" validate:"required,min=1,max=20"`
	ClasseFraisScolarite float64    `json:"classe_frais_scolarite" validate:"gte=0"`
	ClasseTitulaireID    *uuid.UUID `json:"classe_titulaire_id"`
}

func (p *ClassCreateDTO) Normalize() {
	p.ClasseNom = strings.TrimSpace(p.ClasseNom)
	p.ClasseNiveau = strings.TrimSpace(p.ClasseNiveau)
}

func (p ClassCreateDTO) ToModel(anneeID uuid.UUID) model.ClassModel {
	return model.ClassModel{
		ClasseNom:            p.ClasseNom,
		ClasseNiveau:         p.ClasseNiveau,
		ClasseFraisScolarite: p.ClasseFraisScolarite,
		ClasseTitulaireID:    p.ClasseTitulaireID,
		ClasseAnneeID:        anneeID,
	}
}

type ClassUpdateDTO struct {
	ClasseNom            *string    `json:"classe_nom" validate:"omitempty,min=1,max=50"`
	ClasseNiveau         *string    `json:"classe_niveau" validate:"omitempty,min=1,max=20"`
	ClasseFraisScolarite *float64   `json:"classe_frais_scolarite" validate:"omitempty,gte=0"`
	ClasseTitulaireID    *uuid.UUID `json:"classe_titulaire_id"`
}

func (p ClassUpdateDTO) Apply(ent *model.ClassModel) {
	if p.ClasseNom != nil {
		ent.ClasseNom = strings.TrimSpace(*p.ClasseNom)
	}
	if p.ClasseNiveau != nil {
		ent.ClasseNiveau = strings.TrimSpace(*p.ClasseNiveau)
	}
	if p.ClasseFraisScolarite != nil {
		ent.ClasseFraisScolarite = *p.ClasseFraisScolarite
	}
	if p.ClasseTitulaireID != nil {
		ent.ClasseTitulaireID = p.ClasseTitulaireID
	}
}

// TuitionRollup: agrégat scolarité de la classe — attendu (frais × effectif),
// payé (somme des paiements type scolarite), reste.
type TuitionRollup struct {
	MontantAttendu float64 `json:"montant_attendu"`
	MontantPaye    float64 `json:"montant_paye"`
	MontantRestant float64 `json:"montant_restant"`
}

type ClassDetailDTO struct {
	model.ClassModel
	Effectif  int                          `json:"effectif"`
	Eleves    []studentModel.StudentModel  `json:"eleves"`
	Scolarite TuitionRollup                `json:"scolarite"`
}

type ClassListItemDTO struct {
	model.ClassModel
	Effectif int `json:"effectif"`
}
