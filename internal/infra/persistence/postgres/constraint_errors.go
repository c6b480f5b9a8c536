package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint classification for write errors. GORM translates driver errors
// when TranslateError is on; the SQLSTATE fallback covers raw exec paths.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasSQLState(err, "23503")
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, "23502") ||
		strings.Contains(strings.ToLower(err.Error()), "null value")
}

func hasSQLState(err error, code string) bool {
	return strings.Contains(err.Error(), "SQLSTATE "+code)
}
