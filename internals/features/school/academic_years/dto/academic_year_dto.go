// file: internals/features/school/academic_years/dto/academic_year_dto.go
package dto

import (
	"strings"
	"time"

	model "ecoleadmin_backend/internals/features/school/academic_years/model"
)

type AcademicYearCreateDTO struct {
	AnneeLibelle   string    `json:"annee_libelle" validate:"required,min=4,max=20"`
	AnneeDateDebut time.Time `json:"annee_date_debut" validate:"required"`
	AnneeDateFin   time.Time `json:"annee_date_fin" validate:"required"`
}

func (p *AcademicYearCreateDTO) Normalize() {
	p.AnneeLibelle = strings.TrimSpace(p.AnneeLibelle)
}

func (p AcademicYearCreateDTO) ToModel() model.AcademicYearModel {
	return model.AcademicYearModel{
		AnneeLibelle:   p.AnneeLibelle,
		AnneeDateDebut: p.AnneeDateDebut,
		AnneeDateFin:   p.AnneeDateFin,
	}
}

type AcademicYearUpdateDTO struct {
	AnneeLibelle   *string    `json:"annee_libelle" validate:"omitempty,min=4,max=20"`
	AnneeDateDebut *time.Time `json:"annee_date_debut"`
	AnneeDateFin   *time.Time `json:"annee_date_fin"`
}

func (p AcademicYearUpdateDTO) Apply(ent *model.AcademicYearModel) {
	if p.AnneeLibelle != nil {
		ent.AnneeLibelle = strings.TrimSpace(*p.AnneeLibelle)
	}
	if p.AnneeDateDebut != nil {
		ent.AnneeDateDebut = *p.AnneeDateDebut
	}
	if p.AnneeDateFin != nil {
		ent.AnneeDateFin = *p.AnneeDateFin
	}
}
