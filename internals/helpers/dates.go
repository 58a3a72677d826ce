package helper

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate: date calendaire stricte YYYY-MM-DD, sans composante horaire.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date invalide %q (attendu YYYY-MM-DD)", s)
	}
	return t, nil
}

// DateWindow: bornes de requête semi-ouvertes [start, end+1j).
// L'ajout d'un jour garantit que la date de fin est couverte en entier quelle
// que soit l'heure stockée sur les lignes.
func DateWindow(start, end time.Time) (time.Time, time.Time) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)
	return from, to
}
