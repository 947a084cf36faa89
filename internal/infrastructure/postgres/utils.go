package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de constraint único.
const pgUniqueViolation = "23505"

// isUniqueViolation detecta el duplicado de username/email/nombre de categoría
// para traducirlo a domain.ErrDuplicate en los adaptadores.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
