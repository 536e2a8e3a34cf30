package postgres

import (
	"strings"

	"marketbot/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the audit writer maps to domain errors.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
)

// constraintCode returns the SQLSTATE of a PostgreSQL constraint error, or
// "" when err did not come from the server.
func constraintCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	// Drivers that flatten the error still keep the code in the text.
	msg := err.Error()
	for _, code := range []string{pgNotNullViolation, pgForeignKeyViolation} {
		if strings.Contains(msg, "SQLSTATE "+code) {
			return code
		}
	}

	return ""
}
