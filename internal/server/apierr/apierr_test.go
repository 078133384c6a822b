package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestConstructors_UnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
		code   string
		kind   error
	}{
		{"table", TableMissing("presentations"), http.StatusNotFound, CodeTableMissing, common.ErrSchemaMissing},
		{"column", ColumnMissing("meta", "presentations"), http.StatusBadRequest, CodeColumnMissing, common.ErrSchemaMissing},
		{"no rows", NoRows(), http.StatusNotAcceptable, CodeNoRows, common.ErrNotFound},
		{"policy", PermissionDenied("presentations"), http.StatusForbidden, CodeInsufficientPrivs, common.ErrPermissionDenied},
		{"bad request", BadRequest(CodeBadQuery, "x"), http.StatusBadRequest, CodeBadQuery, common.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.ErrorIs(t, tt.err, tt.kind)
		})
	}
}

func TestColumnMissing_NamesColumn(t *testing.T) {
	e := ColumnMissing("meta", "presentations")
	assert.Equal(t, "Could not find the 'meta' column of 'presentations' in the schema cache", e.Message)
}

func TestFrom(t *testing.T) {
	wrapped := fmt.Errorf("repo: %w", PermissionDenied("presentations"))

	tests := []struct {
		name   string
		in     error
		status int
		code   string
	}{
		{"already typed", wrapped, http.StatusForbidden, CodeInsufficientPrivs},
		{"not found", fmt.Errorf("x: %w", common.ErrNotFound), http.StatusNotAcceptable, CodeNoRows},
		{"expired", common.ErrTokenExpired, http.StatusUnauthorized, CodeJWTExpired},
		{"invalid token", common.ErrInvalidToken, http.StatusUnauthorized, CodeJWT},
		{"validation", common.ErrValidation, http.StatusBadRequest, CodeBadQuery},
		{"schema", common.ErrSchemaMissing, http.StatusNotFound, CodeTableMissing},
		{"unknown", errors.New("socket closed"), http.StatusInternalServerError, CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.in)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.code, got.Code)
		})
	}

	assert.NotContains(t, From(errors.New("password=hunter2")).Message, "hunter2")
}
