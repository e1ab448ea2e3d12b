// internal/services/errors.go
package services

import "errors"

var (
	// ErrProductNotFound means no complete product record exists anywhere,
	// in the catalog or at the external source.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNotAddable means a scan could not be added to history because
	// the product does not resolve to a complete record.
	ErrProductNotAddable = errors.New("product could not be added to history")

	// ErrScanNotFound means no history entry matches the given scan id.
	ErrScanNotFound = errors.New("scan not found")
)
