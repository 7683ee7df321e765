package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// IsUniqueViolation сообщает, что err нарушает уникальность constraint.
// Пустой constraint подходит под любое ограничение.
func IsUniqueViolation(err error, constraint string) bool {
	return hasPgCode(err, pgUniqueViolation, constraint)
}

// IsForeignKeyViolation то же для внешних ключей.
func IsForeignKeyViolation(err error, constraint string) bool {
	return hasPgCode(err, pgForeignKeyViolation, constraint)
}

func hasPgCode(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
