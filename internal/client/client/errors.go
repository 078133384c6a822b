package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/deckkeeper/internal/common"
)

// RemoteError is an error response from the store.
type RemoteError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`

	kind error
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("store error %d (%s): %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("store error %d: %s", e.Status, msg)
}

// Unwrap exposes the taxonomy sentinel, if the response maps to one.
func (e *RemoteError) Unwrap() error { return e.kind }

// Store error codes with a fixed meaning for the client.
const (
	CodeTableMissing      = "PGRST205"
	CodeColumnMissing     = "PGRST204"
	CodeNoRows            = "PGRST116"
	CodeUndefinedTable    = "42P01"
	CodeUndefinedColumn   = "42703"
	CodeInsufficientPrivs = "42501"
)

func classify(status int, code string) error {
	switch code {
	case CodeTableMissing, CodeUndefinedTable, CodeColumnMissing, CodeUndefinedColumn:
		return common.ErrSchemaMissing
	case CodeInsufficientPrivs:
		return common.ErrPermissionDenied
	case CodeNoRows:
		return common.ErrNotFound
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrPermissionDenied
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return common.ErrConnectivity
	}
	return nil
}

// mapResponseError reads an error body and classifies it.
func mapResponseError(resp *http.Response) error {
	e := &RemoteError{Status: resp.StatusCode}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(body) > 0 {
		if err := json.Unmarshal(body, e); err != nil {
			e.Message = string(body)
		}
	}
	e.kind = classify(e.Status, e.Code)
	return e
}

func connectivity(err error) error {
	return fmt.Errorf("%w: %v", common.ErrConnectivity, err)
}
