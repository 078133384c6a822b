// Package apierr holds the PostgREST-shaped errors returned by the store.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

// Error codes emitted by the store. They match the ones PostgREST and
// PostgreSQL use for the same conditions.
const (
	CodeTableMissing      = "PGRST205"
	CodeColumnMissing     = "PGRST204"
	CodeNoRows            = "PGRST116"
	CodeBadQuery          = "PGRST100"
	CodeBadBody           = "PGRST102"
	CodeJWT               = "PGRST301"
	CodeJWTExpired        = "PGRST303"
	CodeInsufficientPrivs = "42501"
	CodeInvalidText       = "22P02"
	CodeInternal          = "XX000"
)

// Error is written to the wire as {code, message, details, hint}.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`

	kind error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the common sentinel the error corresponds to.
func (e *Error) Unwrap() error { return e.kind }

func TableMissing(table string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    CodeTableMissing,
		Message: fmt.Sprintf("Could not find the table 'public.%s' in the schema cache", table),
		kind:    common.ErrSchemaMissing,
	}
}

func ColumnMissing(column, table string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    CodeColumnMissing,
		Message: fmt.Sprintf("Could not find the '%s' column of '%s' in the schema cache", column, table),
		kind:    common.ErrSchemaMissing,
	}
}

func NoRows() *Error {
	return &Error{
		Status:  http.StatusNotAcceptable,
		Code:    CodeNoRows,
		Message: "JSON object requested, multiple (or no) rows returned",
		Details: "The result contains 0 rows",
		kind:    common.ErrNotFound,
	}
}

func PermissionDenied(table string) *Error {
	return &Error{
		Status:  http.StatusForbidden,
		Code:    CodeInsufficientPrivs,
		Message: fmt.Sprintf("new row violates row-level security policy for table %q", table),
		kind:    common.ErrPermissionDenied,
	}
}

func BadRequest(code, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message, kind: common.ErrValidation}
}

func Unauthorized(code, message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: code, Message: message, kind: common.ErrPermissionDenied}
}

// From converts any error into an *Error. Known sentinels keep their
// meaning; everything else becomes a 500 without leaking its text.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	switch {
	case errors.Is(err, common.ErrNotFound):
		return NoRows()
	case errors.Is(err, common.ErrPermissionDenied):
		return PermissionDenied(common.PresentationsTable)
	case errors.Is(err, common.ErrSchemaMissing):
		return TableMissing(common.PresentationsTable)
	case errors.Is(err, common.ErrTokenExpired):
		return Unauthorized(CodeJWTExpired, "JWT expired")
	case errors.Is(err, common.ErrInvalidToken):
		return Unauthorized(CodeJWT, "Invalid JWT")
	case errors.Is(err, common.ErrValidation):
		return BadRequest(CodeBadQuery, err.Error())
	}

	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "internal server error"}
}
