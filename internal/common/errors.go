package common

import "errors"

var (

	// remote store taxonomy
	ErrConnectivity     = errors.New("store unreachable")
	ErrSchemaMissing    = errors.New("presentations table or column missing")
	ErrPermissionDenied = errors.New("permission denied by row-level policy")
	ErrNotFound         = errors.New("not found")

	// slide generator
	ErrGeneratorUnavailable = errors.New("generator unreachable")
	ErrGeneratorRejected    = errors.New("generator rejected the API key")

	// local input errors
	ErrValidation = errors.New("validation error")

	// auth
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
