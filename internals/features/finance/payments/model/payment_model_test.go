// file: internals/features/finance/payments/model/payment_model_test.go
package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKnownPaymentType(t *testing.T) {
	for _, pt := range PaymentTypes {
		assert.True(t, IsKnownPaymentType(pt), pt)
	}
	assert.False(t, IsKnownPaymentType("bourse"))
	assert.False(t, IsKnownPaymentType(""))
}

// Le snapshot posé dans paiements_supprimes doit rendre le paiement
// restituable à l'identique.
func TestDeletedPaymentSnapshotRoundTrip(t *testing.T) {
	commentaire := "rattrapage trimestre 2"
	original := PaymentModel{
		PaiementID:            uuid.New(),
		PaiementEleveID:       uuid.New(),
		PaiementType:          TypeFraisDivers,
		PaiementMontant:       12500,
		PaiementDate:          time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		PaiementMode:          "mobile_money",
		PaiementCommentaire:   &commentaire,
		PaiementAnneeID:       uuid.New(),
		PaiementUtilisateurID: uuid.New(),
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	supprimePar := uuid.New()
	shadow := DeletedPaymentModel{
		PaiementID:  original.PaiementID,
		Donnees:     raw,
		AnneeID:     original.PaiementAnneeID,
		SupprimePar: &supprimePar,
	}

	var restored PaymentModel
	require.NoError(t, json.Unmarshal(shadow.Donnees, &restored))

	assert.Equal(t, original.PaiementID, restored.PaiementID)
	assert.Equal(t, original.PaiementEleveID, restored.PaiementEleveID)
	assert.Equal(t, original.PaiementType, restored.PaiementType)
	assert.Equal(t, original.PaiementMontant, restored.PaiementMontant)
	assert.True(t, original.PaiementDate.Equal(restored.PaiementDate))
	assert.Equal(t, original.PaiementMode, restored.PaiementMode)
	require.NotNil(t, restored.PaiementCommentaire)
	assert.Equal(t, commentaire, *restored.PaiementCommentaire)
	assert.Equal(t, original.PaiementAnneeID, restored.PaiementAnneeID)
}
