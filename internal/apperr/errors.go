// Package apperr defines the error kinds the hub reports to its callers:
// rejected input, unknown records and storage failures.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError rejects a create or update before anything is mutated.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Validation builds a single-field ValidationError.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports an id (or roster name) that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func NotFound(kind string, id any) error {
	return &NotFoundError{Kind: kind, ID: fmt.Sprint(id)}
}

// PersistenceError wraps a load, save or decode failure of one collection.
type PersistenceError struct {
	Op         string
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func Persistence(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Collection: collection, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// Fields collects every ValidationError inside err, which may be a join.
func Fields(err error) []*ValidationError {
	var out []*ValidationError
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if ve, ok := e.(*ValidationError); ok {
			out = append(out, ve)
			return
		}
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				walk(inner)
			}
			return
		}
		walk(errors.Unwrap(e))
	}
	walk(err)
	return out
}

// Message renders err for a user-facing reply, one line per field problem.
func Message(err error) string {
	fields := Fields(err)
	if len(fields) == 0 {
		return err.Error()
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Error()
	}
	return strings.Join(parts, "; ")
}
