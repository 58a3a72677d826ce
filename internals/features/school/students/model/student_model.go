// file: internals/features/school/students/model/student_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudentModel struct {
	EleveID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:eleve_id" json:"eleve_id"`
	EleveMatricule string    `gorm:"type:varchar(30);not null;uniqueIndex;column:eleve_matricule" json:"eleve_matricule"`
	EleveNom       string    `gorm:"type:varchar(100);not null;column:eleve_nom" json:"eleve_nom"`
	ElevePrenom    string    `gorm:"type:varchar(100);not null;column:eleve_prenom" json:"eleve_prenom"`
	// "M" | "F"
	EleveSexe          string     `gorm:"type:varchar(1);column:eleve_sexe" json:"eleve_sexe"`
	EleveDateNaissance *time.Time `gorm:"type:date;column:eleve_date_naissance" json:"eleve_date_naissance,omitempty"`
	// Exemple: "CP1", "CM2", "6e"
	EleveNiveau   string     `gorm:"type:varchar(20);column:eleve_niveau" json:"eleve_niveau"`
	EleveClasseID *uuid.UUID `gorm:"type:uuid;column:eleve_classe_id" json:"eleve_classe_id,omitempty"`
	EleveAnneeID  uuid.UUID  `gorm:"type:uuid;not null;index;column:eleve_annee_id" json:"eleve_annee_id"`

	EleveCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:eleve_created_at" json:"eleve_created_at"`
	EleveUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:eleve_updated_at" json:"eleve_updated_at"`
}

func (StudentModel) TableName() string { return "eleves" }

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.EleveMatricule = strings.TrimSpace(m.EleveMatricule)
	m.EleveNom = strings.TrimSpace(m.EleveNom)
	m.ElevePrenom = strings.TrimSpace(m.ElevePrenom)
	m.EleveNiveau = strings.TrimSpace(m.EleveNiveau)
	return nil
}

// DeletedStudentModel: table miroir d'audit. La ligne vivante est copiée en
// snapshot JSONB avant suppression physique, dans la même transaction;
// l'identité d'origine est conservée via eleve_id.
type DeletedStudentModel struct {
	SuppressionID uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:suppression_id" json:"suppression_id"`
	EleveID       uuid.UUID      `gorm:"type:uuid;not null;index;column:eleve_id" json:"eleve_id"`
	Donnees       datatypes.JSON `gorm:"type:jsonb;not null;column:donnees" json:"donnees"`
	AnneeID       uuid.UUID      `gorm:"type:uuid;not null;column:annee_id" json:"annee_id"`
	SupprimePar   *uuid.UUID     `gorm:"type:uuid;column:supprime_par" json:"supprime_par,omitempty"`
	SupprimeLe    time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:supprime_le" json:"supprime_le"`
}

func (DeletedStudentModel) TableName() string { return "eleves_supprimes" }
