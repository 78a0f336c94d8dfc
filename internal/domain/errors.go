package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP codes;
// usecases wrap them with context via fmt.Errorf("...: %w", err).
var (
	ErrNotFound       = errors.New("resource not found")
	ErrValidation     = errors.New("validation failed")
	ErrDuplicate      = errors.New("resource already exists")
	ErrRenderFailed   = errors.New("document render failed")
	ErrStoreFailed    = errors.New("record store operation failed")
	ErrDispatchFailed = errors.New("mail dispatch failed")
)
