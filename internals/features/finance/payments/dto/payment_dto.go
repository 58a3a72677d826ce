// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "ecoleadmin_backend/internals/features/finance/payments/model"
	yearModel "ecoleadmin_backend/internals/features/school/academic_years/model"
	studentModel "ecoleadmin_backend/internals/features/school/students/model"
)

type PaymentCreateDTO struct {
	PaiementEleveID     uuid.UUID `json:"paiement_eleve_id" validate:"required"`
	PaiementType        string    `json:"paiement_type" validate:"omitempty,oneof=scolarite frais_divers frais_connexes autre"`
	PaiementMontant     float64   `json:"paiement_montant" validate:"required,gt=0"`
	PaiementDate        time.Time `json:"paiement_date" validate:"required"`
	PaiementMode        string    `json:"paiement_mode" validate:"omitempty,oneof=especes mobile_money virement"`
	PaiementCommentaire *string   `json:"paiement_commentaire"`
}

// Normalize: défauts explicites — type scolarite, mode especes.
func (p *PaymentCreateDTO) Normalize() {
	p.PaiementType = strings.TrimSpace(p.PaiementType)
	if p.PaiementType == "" {
		p.PaiementType = model.TypeScolarite
	}
	p.PaiementMode = strings.TrimSpace(p.PaiementMode)
	if p.PaiementMode == "" {
		p.PaiementMode = "especes"
	}
}

func (p PaymentCreateDTO) ToModel(anneeID, userID uuid.UUID) model.PaymentModel {
	return model.PaymentModel{
		PaiementEleveID:       p.PaiementEleveID,
		PaiementType:          p.PaiementType,
		PaiementMontant:       p.PaiementMontant,
		PaiementDate:          p.PaiementDate,
		PaiementMode:          p.PaiementMode,
		PaiementCommentaire:   p.PaiementCommentaire,
		PaiementAnneeID:       anneeID,
		PaiementUtilisateurID: userID,
	}
}

type PaymentUpdateDTO struct {
	PaiementType        *string    `json:"paiement_type" validate:"omitempty,oneof=scolarite frais_divers frais_connexes autre"`
	PaiementMontant     *float64   `json:"paiement_montant" validate:"omitempty,gt=0"`
	PaiementDate        *time.Time `json:"paiement_date"`
	PaiementMode        *string    `json:"paiement_mode" validate:"omitempty,oneof=especes mobile_money virement"`
	PaiementCommentaire *string    `json:"paiement_commentaire"`
}

func (p PaymentUpdateDTO) Apply(ent *model.PaymentModel) {
	if p.PaiementType != nil {
		ent.PaiementType = *p.PaiementType
	}
	if p.PaiementMontant != nil {
		ent.PaiementMontant = *p.PaiementMontant
	}
	if p.PaiementDate != nil {
		ent.PaiementDate = *p.PaiementDate
	}
	if p.PaiementMode != nil {
		ent.PaiementMode = *p.PaiementMode
	}
	if p.PaiementCommentaire != nil {
		ent.PaiementCommentaire = p.PaiementCommentaire
	}
}

// PaymentDetailDTO: paiement + élève + année (jointure du détail)
type PaymentDetailDTO struct {
	model.PaymentModel
	Eleve *studentModel.StudentModel   `json:"eleve,omitempty"`
	Annee *yearModel.AcademicYearModel `json:"annee,omitempty"`
}

// StudentTotalsDTO: totaux par élève pour la requête batch
type StudentTotalsDTO struct {
	EleveID   uuid.UUID            `json:"eleve_id"`
	Total     float64              `json:"total"`
	ParType   map[string]float64   `json:"par_type"`
	Paiements []model.PaymentModel `json:"paiements"`
}

// PeriodTotalsDTO: stats catégorisées d'une fenêtre datée
type PeriodTotalsDTO struct {
	Total   float64            `json:"total"`
	Nombre  int                `json:"nombre"`
	ParType map[string]float64 `json:"par_type"`
}
