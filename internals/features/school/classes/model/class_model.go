// file: internals/features/school/classes/model/class_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClasseID  uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:classe_id" json:"classe_id"`
	ClasseNom string    `gorm:"type:varchar(50);not null;column:classe_nom" json:"classe_nom"`
	// Exemple: "CP1", "CM2", "6e"
	ClasseNiveau string `gorm:"type:varchar(20);not null;column:classe_niveau" json:"classe_niveau"`
	// Frais de scolarité attendus par élève pour l'année
	ClasseFraisScolarite float64 `gorm:"type:numeric(12,2);not null;default:0;column:classe_frais_scolarite" json:"classe_frais_scolarite"`
	// Titulaire (professeur principal) — bloque la suppression du personnel
	ClasseTitulaireID *uuid.UUID `gorm:"type:uuid;column:classe_titulaire_id" json:"classe_titulaire_id,omitempty"`
	ClasseAnneeID     uuid.UUID  `gorm:"type:uuid;not null;index;column:classe_annee_id" json:"classe_annee_id"`

	ClasseCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:classe_created_at" json:"classe_created_at"`
	ClasseUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:classe_updated_at" json:"classe_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeSave(tx *gorm.DB) error {
	m.ClasseNom = strings.TrimSpace(m.ClasseNom)
	m.ClasseNiveau = strings.TrimSpace(m.ClasseNiveau)
	return nil
}
