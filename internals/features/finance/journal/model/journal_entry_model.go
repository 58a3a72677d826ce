// file: internals/features/finance/journal/model/journal_entry_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sens d'une écriture
const (
	SensEntree = "entree"
	SensSortie = "sortie"
)

// Sous-types d'entrée — choisissent le compartiment crédité.
// Défaut documenté: scolarite.
const (
	SousTypeEntreeScolarite     = "scolarite"
	SousTypeEntreeDon           = "don"
	SousTypeEntreeAutresRevenus = "autres_revenus"
)

// Sous-types de sortie. Défaut documenté: fonctionnement.
const (
	SousTypeSortieFonctionnement = "fonctionnement"
	SousTypeSortieDonAccorde     = "don_accorde"
	SousTypeSortieAutre          = "autre"
)

// Source des fonds d'une sortie don_accorde/autre. Défaut: scolarite.
const (
	SourceScolarite     = "scolarite"
	SourceDon           = "don"
	SourceAutresRevenus = "autres_revenus"
)

// JournalEntryModel: une ligne du journal de caisse. Montant toujours >= 0,
// le signe est porté par le sens. Chaque écriture appartient à exactement
// une année académique.
type JournalEntryModel struct {
	EcritureID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ecriture_id" json:"ecriture_id"`
	EcritureDate    time.Time `gorm:"type:timestamptz;not null;index;column:ecriture_date" json:"ecriture_date"`
	EcritureLibelle string    `gorm:"type:varchar(255);not null;column:ecriture_libelle" json:"ecriture_libelle"`
	EcritureMontant float64   `gorm:"type:numeric(12,2);not null;column:ecriture_montant" json:"ecriture_montant"`
	// entree | sortie
	EcritureSens      string `gorm:"type:varchar(10);not null;column:ecriture_sens" json:"ecriture_sens"`
	EcritureCategorie string `gorm:"type:varchar(50);column:ecriture_categorie" json:"ecriture_categorie"`
	// renseigné si sens=entree
	EcritureSousTypeEntree string `gorm:"type:varchar(20);column:ecriture_sous_type_entree" json:"ecriture_sous_type_entree,omitempty"`
	// renseignés si sens=sortie
	EcritureSousTypeSortie string `gorm:"type:varchar(20);column:ecriture_sous_type_sortie" json:"ecriture_sous_type_sortie,omitempty"`
	EcritureSourceFonds    string `gorm:"type:varchar(20);column:ecriture_source_fonds" json:"ecriture_source_fonds,omitempty"`

	EcritureAnneeID       uuid.UUID `gorm:"type:uuid;not null;index;column:ecriture_annee_id" json:"ecriture_annee_id"`
	EcritureUtilisateurID uuid.UUID `gorm:"type:uuid;not null;column:ecriture_utilisateur_id" json:"ecriture_utilisateur_id"`

	EcritureCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:ecriture_created_at" json:"ecriture_created_at"`
	EcritureUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:ecriture_updated_at" json:"ecriture_updated_at"`
}

func (JournalEntryModel) TableName() string { return "journal_caisse" }

func (m *JournalEntryModel) BeforeSave(tx *gorm.DB) error {
	m.EcritureLibelle = strings.TrimSpace(m.EcritureLibelle)
	if m.EcritureMontant < 0 {
		return errors.New("ecriture_montant doit être >= 0, le sens porte le signe")
	}
	if m.EcritureSens != SensEntree && m.EcritureSens != SensSortie {
		return errors.New("ecriture_sens doit être 'entree' ou 'sortie'")
	}
	return nil
}
