package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds
const (
	NotFoundErrorKind     = "NOT_FOUND"
	ValidationErrorKind   = "VALIDATION_ERROR"
	InvalidParamErrorKind = "INVALID_PARAM"
	DBErrorKind           = "DB_ERROR"
)

// TodoNotFoundMessage is returned to clients for missing todos.
const TodoNotFoundMessage = "Todo not found"

// NotFoundError is raised when an identifier has no matching row.
type NotFoundError struct {
	ID  interface{}
	err error
}

// NewNotFoundError wraps err with the identifier that was looked up.
func NewNotFoundError(err error, id interface{}) *NotFoundError {
	if err == nil {
		err = errors.New(TodoNotFoundMessage)
	}
	return &NotFoundError{ID: id, err: err}
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return TodoNotFoundMessage
	}
	return fmt.Sprintf("%s: id=%v", TodoNotFoundMessage, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.err }

// Kind returns the error kind.
func (e *NotFoundError) Kind() string { return NotFoundErrorKind }

// ValidationError means the request shape was rejected before touching storage.
type ValidationError struct {
	err error
}

// NewValidationError wraps err as a validation failure.
func NewValidationError(err error) *ValidationError {
	return &ValidationError{err: err}
}

func (e *ValidationError) Error() string { return e.err.Error() }

func (e *ValidationError) Unwrap() error { return e.err }

// Kind returns the error kind.
func (e *ValidationError) Kind() string { return ValidationErrorKind }

// InvalidParamError is a validation failure tied to one parameter.
type InvalidParamError struct {
	Param string
	err   error
}

// NewInvalidParamError reports a bad value for param.
func NewInvalidParamError(param string, err error) *InvalidParamError {
	if err == nil {
		err = errors.New("invalid value")
	}
	return &InvalidParamError{Param: param, err: err}
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, e.err.Error())
}

func (e *InvalidParamError) Unwrap() error { return e.err }

// Kind returns the error kind.
func (e *InvalidParamError) Kind() string { return InvalidParamErrorKind }

// DBError is any storage fault that is not a missing row.
type DBError struct {
	err error
}

// NewDBError wraps a storage error keeping its stack.
func NewDBError(err error) *DBError {
	return &DBError{err: errors.WithStack(err)}
}

func (e *DBError) Error() string { return "db error: " + e.err.Error() }

func (e *DBError) Unwrap() error { return e.err }

// Kind returns the error kind.
func (e *DBError) Kind() string { return DBErrorKind }

// ErrorKind returns the kind of the outermost typed error in err's chain,
// or an empty string when there is none.
func ErrorKind(err error) string {
	var k interface{ Kind() string }
	if errors.As(err, &k) {
		return k.Kind()
	}
	return ""
}

// IsNotFoundError reports whether err is or wraps a NotFoundError.
func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidationError reports whether err is a validation or invalid param error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	var ip *InvalidParamError
	return errors.As(err, &ip)
}

// IsDBError reports whether err is or wraps a DBError.
func IsDBError(err error) bool {
	var de *DBError
	return errors.As(err, &de)
}
