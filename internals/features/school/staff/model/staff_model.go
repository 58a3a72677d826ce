// file: internals/features/school/staff/model/staff_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StaffModel struct {
	PersonnelID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:personnel_id" json:"personnel_id"`
	PersonnelNom    string    `gorm:"type:varchar(100);not null;column:personnel_nom" json:"personnel_nom"`
	PersonnelPrenom string    `gorm:"type:varchar(100);not null;column:personnel_prenom" json:"personnel_prenom"`
	// Exemple: "enseignant", "surveillant", "comptable"
	PersonnelFonction  string     `gorm:"type:varchar(50);not null;column:personnel_fonction" json:"personnel_fonction"`
	PersonnelTelephone string     `gorm:"type:varchar(30);column:personnel_telephone" json:"personnel_telephone"`
	PersonnelEmail     *string    `gorm:"type:varchar(255);column:personnel_email" json:"personnel_email,omitempty"`
	PersonnelSalaire   *float64   `gorm:"type:numeric(12,2);column:personnel_salaire" json:"personnel_salaire,omitempty"`
	PersonnelAnneeID   uuid.UUID  `gorm:"type:uuid;not null;index;column:personnel_annee_id" json:"personnel_annee_id"`

	PersonnelCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:personnel_created_at" json:"personnel_created_at"`
	PersonnelUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:personnel_updated_at" json:"personnel_updated_at"`
}

func (StaffModel) TableName() string { return "personnel" }

func (m *StaffModel) BeforeSave(tx *gorm.DB) error {
	m.PersonnelNom = strings.TrimSpace(m.PersonnelNom)
	m.PersonnelPrenom = strings.TrimSpace(m.PersonnelPrenom)
	m.PersonnelFonction = strings.TrimSpace(m.PersonnelFonction)
	return nil
}

// DeletedStaffModel: même convention de table miroir que les élèves.
type DeletedStaffModel struct {
	SuppressionID uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:suppression_id" json:"suppression_id"`
	PersonnelID   uuid.UUID      `gorm:"type:uuid;not null;index;column:personnel_id" json:"personnel_id"`
	Donnees       datatypes.JSON `gorm:"type:jsonb;not null;column:donnees" json:"donnees"`
	AnneeID       uuid.UUID      `gorm:"type:uuid;not null;column:annee_id" json:"annee_id"`
	SupprimePar   *uuid.UUID     `gorm:"type:uuid;column:supprime_par" json:"supprime_par,omitempty"`
	SupprimeLe    time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:supprime_le" json:"supprime_le"`
}

func (DeletedStaffModel) TableName() string { return "personnel_supprime" }
