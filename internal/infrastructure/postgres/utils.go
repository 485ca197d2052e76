package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isDataViolation verifica si el servidor rechazó los datos de una escritura:
// clase 22 (data exception, ej. 22P02 invalid_text_representation) o clase 23
// (integrity constraint violation, ej. 23505 unique_violation).
func isDataViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}
