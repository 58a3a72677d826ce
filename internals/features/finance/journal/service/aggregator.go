// file: internals/features/finance/journal/service/aggregator.go
//
// Agrégateur du journal de caisse: soldes par compartiment, statistiques par
// période, comparaison mois par mois. Fonctions pures sur des lignes déjà
// chargées — passes linéaires et sommes courantes, rien d'autre.
package service

import (
	"time"

	model "ecoleadmin_backend/internals/features/finance/journal/model"
)

/* ============================================
   Compartiments de solde
============================================ */

// Buckets: les trois soldes courants qui partitionnent la position de caisse.
type Buckets struct {
	Scolarite     float64 `json:"scolarite"`
	Don           float64 `json:"don"`
	AutresRevenus float64 `json:"autres_revenus"`
}

func (b Buckets) Total() float64 {
	return b.Scolarite + b.Don + b.AutresRevenus
}

// ComputeBuckets applique la règle d'affectation — à reproduire à l'identique,
// c'est l'endroit où une écriture mal classée fausse silencieusement un solde:
//
//   - entrée: compartiment = sous_type_entree (défaut scolarite).
//   - sortie "fonctionnement" (défaut si non renseigné): TOUJOURS débitée de
//     scolarite, quelle que soit la source de fonds.
//   - sortie "don_accorde" ou "autre": débitée du compartiment nommé par
//     source_fonds (don → Don, autres_revenus → AutresRevenus, sinon
//     scolarite).
//
// La règle est asymétrique: les sorties ne reflètent pas le sous-type
// d'entrée qui les a financées.
func ComputeBuckets(entries []model.JournalEntryModel) Buckets {
	var b Buckets
	for _, e := range entries {
		switch e.EcritureSens {
		case model.SensEntree:
			switch e.EcritureSousTypeEntree {
			case model.SousTypeEntreeDon:
				b.Don += e.EcritureMontant
			case model.SousTypeEntreeAutresRevenus:
				b.AutresRevenus += e.EcritureMontant
			default:
				b.Scolarite += e.EcritureMontant
			}
		case model.SensSortie:
			switch e.EcritureSousTypeSortie {
			case model.SousTypeSortieDonAccorde, model.SousTypeSortieAutre:
				switch e.EcritureSourceFonds {
				case model.SourceDon:
					b.Don -= e.EcritureMontant
				case model.SourceAutresRevenus:
					b.AutresRevenus -= e.EcritureMontant
				default:
					b.Scolarite -= e.EcritureMontant
				}
			default:
				// fonctionnement (ou non renseigné): toujours sur scolarite
				b.Scolarite -= e.EcritureMontant
			}
		}
	}
	return b
}

/* ============================================
   Statistiques par période
============================================ */

type PeriodStats struct {
	TotalEntrees float64 `json:"total_entrees"`
	TotalSorties float64 `json:"total_sorties"`
	Solde        float64 `json:"solde"`
	Nombre       int     `json:"nombre"`
}

func ComputePeriodStats(entries []model.JournalEntryModel) PeriodStats {
	var s PeriodStats
	for _, e := range entries {
		switch e.EcritureSens {
		case model.SensEntree:
			s.TotalEntrees += e.EcritureMontant
		case model.SensSortie:
			s.TotalSorties += e.EcritureMontant
		}
		s.Nombre++
	}
	s.Solde = s.TotalEntrees - s.TotalSorties
	return s
}

// Granularités pour /api/journal/stats
const (
	GranulariteJour  = "jour"
	GranulariteMois  = "mois"
	GranulariteAnnee = "annee"
)

// PeriodBounds: bornes semi-ouvertes [from, to) du jour, mois ou année
// calendaire contenant ref.
func PeriodBounds(granularite string, ref time.Time) (time.Time, time.Time, bool) {
	switch granularite {
	case GranulariteJour:
		from := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
		return from, from.AddDate(0, 0, 1), true
	case GranulariteMois:
		from := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return from, from.AddDate(0, 1, 0), true
	case GranulariteAnnee:
		from := time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, ref.Location())
		return from, from.AddDate(1, 0, 0), true
	}
	return time.Time{}, time.Time{}, false
}

/* ============================================
   Comparaison mois par mois
============================================ */

// PreviousMonth gère le passage d'année: janvier → décembre de l'année
// précédente.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

type MonthComparison struct {
	Courant   PeriodStats `json:"courant"`
	Precedent PeriodStats `json:"precedent"`
	Delta     PeriodStats `json:"delta"`
}

// CompareMonths: delta arithmétique champ à champ entre le mois courant et
// le mois immédiatement précédent.
func CompareMonths(courant, precedent PeriodStats) MonthComparison {
	return MonthComparison{
		Courant:   courant,
		Precedent: precedent,
		Delta: PeriodStats{
			TotalEntrees: courant.TotalEntrees - precedent.TotalEntrees,
			TotalSorties: courant.TotalSorties - precedent.TotalSorties,
			Solde:        courant.Solde - precedent.Solde,
			Nombre:       courant.Nombre - precedent.Nombre,
		},
	}
}
