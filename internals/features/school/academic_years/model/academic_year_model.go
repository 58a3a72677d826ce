// file: internals/features/school/academic_years/model/academic_year_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicYearModel: entité racine de scoping — élèves, personnel, paiements
// et écritures du journal y sont rattachés. Invariant applicatif: au plus une
// ligne avec annee_est_active = true (géré par la transaction d'activation,
// pas par une contrainte DB).
type AcademicYearModel struct {
	AnneeID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:annee_id" json:"annee_id"`
	// Exemple: "2025-2026"
	AnneeLibelle   string    `gorm:"type:varchar(20);not null;uniqueIndex;column:annee_libelle" json:"annee_libelle"`
	AnneeDateDebut time.Time `gorm:"type:date;not null;column:annee_date_debut" json:"annee_date_debut"`
	AnneeDateFin   time.Time `gorm:"type:date;not null;column:annee_date_fin" json:"annee_date_fin"`
	AnneeEstActive bool      `gorm:"not null;default:false;column:annee_est_active" json:"annee_est_active"`

	AnneeCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:annee_created_at" json:"annee_created_at"`
	AnneeUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:annee_updated_at" json:"annee_updated_at"`
}

func (AcademicYearModel) TableName() string { return "annees_academiques" }

func (m *AcademicYearModel) BeforeSave(tx *gorm.DB) error {
	if m.AnneeDateFin.Before(m.AnneeDateDebut) {
		return errors.New("annee_date_fin doit être >= annee_date_debut")
	}
	m.AnneeLibelle = strings.TrimSpace(m.AnneeLibelle)
	return nil
}
