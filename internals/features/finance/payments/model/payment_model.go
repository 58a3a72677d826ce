// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Types de paiement (énumération explicite, défaut scolarite)
const (
	TypeScolarite     = "scolarite"
	TypeFraisDivers   = "frais_divers"
	TypeFraisConnexes = "frais_connexes"
	TypeAutre         = "autre"
)

var PaymentTypes = []string{TypeScolarite, TypeFraisDivers, TypeFraisConnexes, TypeAutre}

// PaymentModel: versement rattaché à un élève. Montant toujours >= 0.
type PaymentModel struct {
	PaiementID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:paiement_id" json:"paiement_id"`
	PaiementEleveID uuid.UUID `gorm:"type:uuid;not null;index;column:paiement_eleve_id" json:"paiement_eleve_id"`
	PaiementType    string    `gorm:"type:varchar(20);not null;default:'scolarite';column:paiement_type" json:"paiement_type"`
	PaiementMontant float64   `gorm:"type:numeric(12,2);not null;column:paiement_montant" json:"paiement_montant"`
	PaiementDate    time.Time `gorm:"type:timestamptz;not null;index;column:paiement_date" json:"paiement_date"`
	// "especes" | "mobile_money" | "virement"
	PaiementMode          string    `gorm:"type:varchar(20);not null;default:'especes';column:paiement_mode" json:"paiement_mode"`
	PaiementCommentaire   *string   `gorm:"type:text;column:paiement_commentaire" json:"paiement_commentaire,omitempty"`
	PaiementAnneeID       uuid.UUID `gorm:"type:uuid;not null;index;column:paiement_annee_id" json:"paiement_annee_id"`
	PaiementUtilisateurID uuid.UUID `gorm:"type:uuid;not null;column:paiement_utilisateur_id" json:"paiement_utilisateur_id"`

	PaiementCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:paiement_created_at" json:"paiement_created_at"`
	PaiementUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:paiement_updated_at" json:"paiement_updated_at"`
}

func (PaymentModel) TableName() string { return "paiements" }

func IsKnownPaymentType(t string) bool {
	for _, pt := range PaymentTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// DeletedPaymentModel: historique des paiements supprimés, purgeable
// définitivement par la direction.
type DeletedPaymentModel struct {
	SuppressionID uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:suppression_id" json:"suppression_id"`
	PaiementID    uuid.UUID      `gorm:"type:uuid;not null;index;column:paiement_id" json:"paiement_id"`
	Donnees       datatypes.JSON `gorm:"type:jsonb;not null;column:donnees" json:"donnees"`
	AnneeID       uuid.UUID      `gorm:"type:uuid;not null;column:annee_id" json:"annee_id"`
	SupprimePar   *uuid.UUID     `gorm:"type:uuid;column:supprime_par" json:"supprime_par,omitempty"`
	SupprimeLe    time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:supprime_le" json:"supprime_le"`
}

func (DeletedPaymentModel) TableName() string { return "paiements_supprimes" }
