// Package pgerrs translates Postgres driver errors into domain error types.
// Repositories funnel every write error through Translate so that handlers
// and the HTTP adapter only ever see the errs taxonomy.
package pgerrs

import (
	"errors"
	"strings"

	"workforce/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Translate maps integrity constraint breaches (Postgres error class 23:
// unique, foreign key, check, not null) onto ConstraintViolationError.
// Any other error passes through unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && strings.HasPrefix(string(pqErr.Code), "23") {
		constraint := pqErr.Constraint
		if constraint == "" {
			constraint = pqErr.Code.Name()
		}
		return errs.NewConstraintViolationErrorWithCause(constraint, err)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errs.NewConstraintViolationErrorWithCause("duplicate or dangling key", err)
	}

	return err
}
