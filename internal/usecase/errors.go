package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrSelectionNotFound  = errors.New("pending selection not found")
)
