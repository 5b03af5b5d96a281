package store

import (
	"errors"

	"github.com/valldsonsantos/PI-MVP-Senac/apperrors"

	gosqlite "github.com/glebarez/go-sqlite"
)

// SQLITE_CONSTRAINT; extended codes (787 foreign key, 2067 unique, ...)
// share it in their low byte.
const sqliteConstraint = 19

func isConstraintViolation(err error) bool {
	var sqliteErr *gosqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == sqliteConstraint
}

func classify(err error, integrityMessage, storageMessage string) error {
	if isConstraintViolation(err) {
		return apperrors.Wrap(err, apperrors.KindIntegrity, integrityMessage)
	}
	return apperrors.Wrap(err, apperrors.KindStorage, storageMessage)
}
