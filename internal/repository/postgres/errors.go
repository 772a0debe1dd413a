package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapError converts driver-level failures into the application taxonomy so
// handlers degrade to client errors rather than unhandled faults.
func mapError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(resource)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return apperrors.Conflict(resource+" already exists", err)
		case foreignKeyViolation:
			// Insert with a missing parent, or delete with dependents.
			return apperrors.Conflict("referential constraint violated", err)
		}
	}
	return apperrors.Internal(err)
}
