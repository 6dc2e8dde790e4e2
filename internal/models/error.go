package models

import "errors"

// Sentinel errors for common failure conditions
var (
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")

	// Admin authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimited        = errors.New("too many failed attempts")

	// Token errors. Both map to 401 at the boundary but are
	// distinguished in logs.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	// Content document errors
	ErrStorageUnavailable = errors.New("content storage unavailable")
)
