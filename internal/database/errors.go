package database

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateBarcode is returned when an insert or update would give
	// two products the same barcode. Enforced by the unique index, not an
	// application-level pre-check.
	ErrDuplicateBarcode = errors.New("barcode already registered to another product")

	// ErrNotFound is returned by lookups that miss, e.g. scanning an
	// unregistered barcode.
	ErrNotFound = errors.New("record not found")

	// ErrEmptySale is returned when a cart has no positive-quantity lines
	// left after filtering, or its lines sum to a zero total.
	ErrEmptySale = errors.New("sale has no valid lines")
)

// InsufficientStockError reports the single cart line that could not be
// covered by the product's current stock. The whole sale is rejected; no
// partial commit happens.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}
