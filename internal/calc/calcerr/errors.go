// Package calcerr holds the error kinds shared by every calculation package.
package calcerr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCombination = errors.New("invalid combination")
	ErrCodeProhibition    = errors.New("code prohibition")
	ErrDegenerateInput    = errors.New("degenerate input")
)

// CalcError is a terminal calculation failure of a given kind.
type CalcError struct {
	Kind    error
	Message string
	Err     error
}

func (e *CalcError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CalcError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newf(kind error, format string, args ...any) *CalcError {
	return &CalcError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return newf(ErrValidation, format, args...)
}

func NotFound(format string, args ...any) error {
	return newf(ErrNotFound, format, args...)
}

func InvalidCombination(format string, args ...any) error {
	return newf(ErrInvalidCombination, format, args...)
}

func Degenerate(format string, args ...any) error {
	return newf(ErrDegenerateInput, format, args...)
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind error, err error, message string) error {
	return &CalcError{Kind: kind, Message: message, Err: err}
}

// ProhibitionError reports an irregularity the seismic code forbids for the
// computed seismic design category.
type ProhibitionError struct {
	Irregularity string
	Level        string
	Category     string
}

func (e *ProhibitionError) Error() string {
	return fmt.Sprintf("%s: %s %s irregularity is not permitted for seismic design category %s",
		ErrCodeProhibition, e.Level, e.Irregularity, e.Category)
}

func (e *ProhibitionError) Unwrap() error {
	return ErrCodeProhibition
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidCombination(err error) bool {
	return errors.Is(err, ErrInvalidCombination)
}

func IsCodeProhibition(err error) bool {
	return errors.Is(err, ErrCodeProhibition)
}

func IsDegenerate(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}

// HTTPStatus maps an error kind to the status code handlers respond with.
func HTTPStatus(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsCodeProhibition(err):
		return http.StatusUnprocessableEntity
	case IsValidation(err), IsInvalidCombination(err), IsDegenerate(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
