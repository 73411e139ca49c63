package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a unique constraint violation and
// returns a description naming the constraint (postgres) or column (sqlite).
func uniqueViolation(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return err.Error(), true
	}

	// sqlite: "UNIQUE constraint failed: users.email"
	if msg := err.Error(); strings.Contains(msg, "UNIQUE constraint failed") {
		return msg, true
	}

	return "", false
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
