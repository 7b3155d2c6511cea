// internal/catalog/errors.go
package catalog

import "errors"

var (
	ErrNotFound      = errors.New("book not found")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidField  = errors.New("invalid search field")
	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrInvalidYear   = errors.New("year must not be negative")
)
