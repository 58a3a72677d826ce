package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	model "ecoleadmin_backend/internals/features/finance/journal/model"
)

func entree(montant float64, sousType string) model.JournalEntryModel {
	return model.JournalEntryModel{
		EcritureSens:           model.SensEntree,
		EcritureMontant:        montant,
		EcritureSousTypeEntree: sousType,
	}
}

func sortie(montant float64, sousType, source string) model.JournalEntryModel {
	return model.JournalEntryModel{
		EcritureSens:           model.SensSortie,
		EcritureMontant:        montant,
		EcritureSousTypeSortie: sousType,
		EcritureSourceFonds:    source,
	}
}

func TestComputeBuckets(t *testing.T) {
	tests := []struct {
		name    string
		entries []model.JournalEntryModel
		want    Buckets
	}{
		{
			name:    "vide",
			entries: nil,
			want:    Buckets{},
		},
		{
			name: "entrees par sous-type",
			entries: []model.JournalEntryModel{
				entree(100, model.SousTypeEntreeScolarite),
				entree(50, model.SousTypeEntreeDon),
				entree(30, model.SousTypeEntreeAutresRevenus),
			},
			want: Buckets{Scolarite: 100, Don: 50, AutresRevenus: 30},
		},
		{
			name: "entree sans sous-type tombe sur scolarite",
			entries: []model.JournalEntryModel{
				entree(40, ""),
			},
			want: Buckets{Scolarite: 40},
		},
		{
			name: "sortie fonctionnement toujours sur scolarite meme financee par un don",
			entries: []model.JournalEntryModel{
				entree(100, model.SousTypeEntreeDon),
				sortie(30, model.SousTypeSortieFonctionnement, model.SourceDon),
			},
			want: Buckets{Scolarite: -30, Don: 100},
		},
		{
			name: "sortie sans sous-type traitee comme fonctionnement",
			entries: []model.JournalEntryModel{
				sortie(25, "", model.SourceDon),
			},
			want: Buckets{Scolarite: -25},
		},
		{
			name: "don accorde debite le compartiment de la source",
			entries: []model.JournalEntryModel{
				entree(100, model.SousTypeEntreeDon),
				sortie(60, model.SousTypeSortieDonAccorde, model.SourceDon),
			},
			want: Buckets{Don: 40},
		},
		{
			name: "sortie autre sur autres_revenus",
			entries: []model.JournalEntryModel{
				entree(80, model.SousTypeEntreeAutresRevenus),
				sortie(20, model.SousTypeSortieAutre, model.SourceAutresRevenus),
			},
			want: Buckets{AutresRevenus: 60},
		},
		{
			name: "don accorde sans source tombe sur scolarite",
			entries: []model.JournalEntryModel{
				sortie(10, model.SousTypeSortieDonAccorde, ""),
			},
			want: Buckets{Scolarite: -10},
		},
		{
			name: "position combinee",
			entries: []model.JournalEntryModel{
				entree(100, model.SousTypeEntreeScolarite),
				entree(50, model.SousTypeEntreeDon),
				sortie(30, model.SousTypeSortieFonctionnement, model.SourceDon),
			},
			want: Buckets{Scolarite: 70, Don: 50, AutresRevenus: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBuckets(tc.entries)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBucketsTotal(t *testing.T) {
	b := Buckets{Scolarite: 70, Don: 50, AutresRevenus: 0}
	assert.Equal(t, 120.0, b.Total())
}

func TestComputePeriodStats(t *testing.T) {
	entries := []model.JournalEntryModel{
		entree(100, model.SousTypeEntreeScolarite),
		entree(50, model.SousTypeEntreeDon),
		sortie(30, model.SousTypeSortieFonctionnement, ""),
	}

	stats := ComputePeriodStats(entries)
	assert.Equal(t, 150.0, stats.TotalEntrees)
	assert.Equal(t, 30.0, stats.TotalSorties)
	assert.Equal(t, 120.0, stats.Solde)
	assert.Equal(t, 3, stats.Nombre)
}

func TestPeriodBounds(t *testing.T) {
	ref := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	from, to, ok := PeriodBounds(GranulariteJour, ref)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), to)

	from, to, ok = PeriodBounds(GranulariteMois, ref)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), to)

	from, to, ok = PeriodBounds(GranulariteAnnee, ref)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), to)

	_, _, ok = PeriodBounds("semaine", ref)
	assert.False(t, ok)
}

func TestPreviousMonth(t *testing.T) {
	y, m := PreviousMonth(2025, time.March)
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.February, m)

	// janvier retombe sur decembre de l'annee precedente
	y, m = PreviousMonth(2025, time.January)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.December, m)
}

func TestCompareMonths(t *testing.T) {
	courant := PeriodStats{TotalEntrees: 200, TotalSorties: 80, Solde: 120, Nombre: 7}
	precedent := PeriodStats{TotalEntrees: 150, TotalSorties: 100, Solde: 50, Nombre: 5}

	cmp := CompareMonths(courant, precedent)
	assert.Equal(t, courant, cmp.Courant)
	assert.Equal(t, precedent, cmp.Precedent)
	assert.Equal(t, PeriodStats{TotalEntrees: 50, TotalSorties: -20, Solde: 70, Nombre: 2}, cmp.Delta)
}
