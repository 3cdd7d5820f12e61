package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraints the services care about
const (
	ConstraintUserEmail           = "uq_usuarios_email"
	ConstraintStudentRegistration = "uq_alunos_matricula"
	ConstraintReadReceipt         = "uq_avisos_lidos"
)

const pgUniqueViolation = "23505"

// UniqueViolationError an insert or update hit a unique constraint
type UniqueViolationError struct {
	Constraint string
	Err        error
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique constraint %q violated: %v", e.Constraint, e.Err)
}

func (e *UniqueViolationError) Unwrap() error { return e.Err }

// IsUniqueViolation reports whether err is a violation of the named constraint
func IsUniqueViolation(err error, constraint string) bool {
	var uv *UniqueViolationError
	return errors.As(err, &uv) && uv.Constraint == constraint
}

// translateError maps driver errors to repository errors; everything else
// passes through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &UniqueViolationError{Constraint: pgErr.ConstraintName, Err: err}
	}
	return err
}

// ErrorDetail the database's own diagnostic for err, empty when err did not
// come from PostgreSQL.
func ErrorDetail(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	if pgErr.Detail != "" {
		return pgErr.Detail
	}
	return pgErr.Message
}
