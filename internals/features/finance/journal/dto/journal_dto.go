// file: internals/features/finance/journal/dto/journal_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "ecoleadmin_backend/internals/features/finance/journal/model"
)

type JournalEntryCreateDTO struct {
	EcritureDate      time.Time `json:"ecriture_date" validate:"required"`
	EcritureLibelle   string    `json:"ecriture_libelle" validate:"required,min=1,max=255"`
	EcritureMontant   float64   `json:"ecriture_montant" validate:"required,gte=0"`
	EcritureSens      string    `json:"ecriture_sens" validate:"required,oneof=entree sortie"`
	EcritureCategorie string    `json:"ecriture_categorie" validate:"omitempty,max=50"`

	EcritureSousTypeEntree string `json:"ecriture_sous_type_entree" validate:"omitempty,oneof=scolarite don autres_revenus"`
	EcritureSousTypeSortie string `json:"ecriture_sous_type_sortie" validate:"omitempty,oneof=fonctionnement don_accorde autre"`
	EcritureSourceFonds    string `json:"ecriture_source_fonds" validate:"omitempty,oneof=scolarite don autres_revenus"`
}

// Normalize matérialise les défauts documentés au lieu de tester l'absence
// de champ à la lecture: entrée sans sous-type → scolarite; sortie sans
// sous-type → fonctionnement; sortie don_accorde/autre sans source →
// scolarite.
func (p *JournalEntryCreateDTO) Normalize() {
	p.EcritureLibelle = strings.TrimSpace(p.EcritureLibelle)
	p.EcritureCategorie = strings.TrimSpace(p.EcritureCategorie)

	switch p.EcritureSens {
	case model.SensEntree:
		if p.EcritureSousTypeEntree == "" {
			p.EcritureSousTypeEntree = model.SousTypeEntreeScolarite
		}
		p.EcritureSousTypeSortie = ""
		p.EcritureSourceFonds = ""
	case model.SensSortie:
		if p.EcritureSousTypeSortie == "" {
			p.EcritureSousTypeSortie = model.SousTypeSortieFonctionnement
		}
		p.EcritureSousTypeEntree = ""
		if p.EcritureSousTypeSortie != model.SousTypeSortieFonctionnement && p.EcritureSourceFonds == "" {
			p.EcritureSourceFonds = model.SourceScolarite
		}
	}
}

func (p JournalEntryCreateDTO) ToModel(anneeID, userID uuid.UUID) model.JournalEntryModel {
	return model.JournalEntryModel{
		EcritureDate:           p.EcritureDate,
		EcritureLibelle:        p.EcritureLibelle,
		EcritureMontant:        p.EcritureMontant,
		EcritureSens:           p.EcritureSens,
		EcritureCategorie:      p.EcritureCategorie,
		EcritureSousTypeEntree: p.EcritureSousTypeEntree,
		EcritureSousTypeSortie: p.EcritureSousTypeSortie,
		EcritureSourceFonds:    p.EcritureSourceFonds,
		EcritureAnneeID:        anneeID,
		EcritureUtilisateurID:  userID,
	}
}

type JournalEntryUpdateDTO struct {
	EcritureDate      *time.Time `json:"ecriture_date"`
	EcritureLibelle   *string    `json:"ecriture_libelle" validate:"omitempty,min=1,max=255"`
	EcritureMontant   *float64   `json:"ecriture_montant" validate:"omitempty,gte=0"`
	EcritureCategorie *string    `json:"ecriture_categorie" validate:"omitempty,max=50"`

	EcritureSousTypeEntree *string `json:"ecriture_sous_type_entree" validate:"omitempty,oneof=scolarite don autres_revenus"`
	EcritureSousTypeSortie *string `json:"ecriture_sous_type_sortie" validate:"omitempty,oneof=fonctionnement don_accorde autre"`
	EcritureSourceFonds    *string `json:"ecriture_source_fonds" validate:"omitempty,oneof=scolarite don autres_revenus"`
}

func (p JournalEntryUpdateDTO) Apply(ent *model.JournalEntryModel) {
	if p.EcritureDate != nil {
		ent.EcritureDate = *p.EcritureDate
	}
	if p.EcritureLibelle != nil {
		ent.EcritureLibelle = strings.TrimSpace(*p.EcritureLibelle)
	}
	if p.EcritureMontant != nil {
		ent.EcritureMontant = *p.EcritureMontant
	}
	if p.EcritureCategorie != nil {
		ent.EcritureCategorie = strings.TrimSpace(*p.EcritureCategorie)
	}
	if p.EcritureSousTypeEntree != nil {
		ent.EcritureSousTypeEntree = *p.EcritureSousTypeEntree
	}
	if p.EcritureSousTypeSortie != nil {
		ent.EcritureSousTypeSortie = *p.EcritureSousTypeSortie
	}
	if p.EcritureSourceFonds != nil {
		ent.EcritureSourceFonds = *p.EcritureSourceFonds
	}
}
