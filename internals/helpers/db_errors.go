package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation: couvre les deux drivers Postgres (pgx via GORM, lib/pq
// pour les outils qui ouvrent une connexion directe).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
