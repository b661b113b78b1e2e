// Package sqlerr classifies driver errors shared by the GORM repositories.
package sqlerr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UniqueViolation is the Postgres SQLSTATE for a duplicate key.
const UniqueViolation = "23505"

// IsUniqueViolation reports whether err came from a primary or unique key
// collision. It understands pgx errors, GORM's translated ErrDuplicatedKey and
// the sqlite message used by the in-memory test store.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == UniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsNotFound reports whether err is GORM's missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
