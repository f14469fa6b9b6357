// Package records implements the generic single-table gateway used by every
// resource: create, get, list, update and delete over a declared schema, each
// mutation running in its own transaction scope.
package records

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	appErrors "github.com/sebuszqo/LanaApp/internal/errors"
)

var ErrNotFound = errors.New("record not found")

// Data exceptions raised by the store for values that do not fit a column.
var (
	ErrValueTooLong    = appErrors.NewValidationError("Un valor excede la longitud permitida")
	ErrValueOutOfRange = appErrors.NewValidationError("Un valor numérico está fuera de rango")
)

const (
	codeStringDataRightTruncation = "22001"
	codeNumericValueOutOfRange    = "22003"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Schema declares how a record type maps onto its table.
type Schema[T any] struct {
	Table string
	// Columns are the writable columns, in the order returned by Values.
	Columns []string
	// Projection is the full column list read back, in the order Scan expects.
	Projection []string
	// Touch names a timestamp column refreshed on every update, if any.
	Touch string

	Values func(rec *T) []any
	Scan   func(s Scanner, rec *T) error

	// Violations translate store constraint failures into domain errors.
	Violations []Violation
}

// Violation matches a store failure either by constraint name or by a
// substring of the driver message.
type Violation struct {
	Constraint string
	Signature  string
	Err        error
}

// ConstraintError is a store constraint failure that no Violation matched.
type ConstraintError struct {
	Table      string
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: constraint %q violated: %v", e.Table, e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// translate maps err onto the schema's known violations. Unmatched errors are
// returned unchanged, except oversized values which become validation errors
// and integrity violations which are wrapped in a ConstraintError.
func (s *Schema[T]) translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	isPg := errors.As(err, &pgErr)
	if isPg && pgErr.ConstraintName != "" {
		for _, v := range s.Violations {
			if v.Constraint == pgErr.ConstraintName {
				return v.Err
			}
		}
	}

	msg := err.Error()
	for _, v := range s.Violations {
		if v.Signature != "" && strings.Contains(msg, v.Signature) {
			return v.Err
		}
		if v.Constraint != "" && strings.Contains(msg, `"`+v.Constraint+`"`) {
			return v.Err
		}
	}

	if isPg {
		switch pgErr.Code {
		case codeStringDataRightTruncation:
			return ErrValueTooLong
		case codeNumericValueOutOfRange:
			return ErrValueOutOfRange
		}
	}
	if isPg && strings.HasPrefix(pgErr.Code, "23") {
		return &ConstraintError{Table: s.Table, Constraint: pgErr.ConstraintName, Err: err}
	}
	return err
}

func (s *Schema[T]) validate() error {
	switch {
	case s.Table == "":
		return errors.New("records: schema without table")
	case len(s.Columns) == 0 || len(s.Projection) == 0:
		return fmt.Errorf("records: schema %s without columns", s.Table)
	case s.Values == nil || s.Scan == nil:
		return fmt.Errorf("records: schema %s without Values/Scan", s.Table)
	}
	return nil
}
