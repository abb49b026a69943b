package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// containsPattern arma el patrón %query% para ILIKE. El texto del usuario viaja
// siempre como bind parameter, nunca concatenado al SQL.
func containsPattern(query string) string {
	return "%" + query + "%"
}
