package billing

import "errors"

// Sentinel errors returned by the engine.
var (
	ErrInvalidQuantityOrRate = errors.New("quantity and rate must be non-negative numbers")
	ErrProductNotFound       = errors.New("product not found")
	ErrIncompleteInvoice     = errors.New("invoice needs a number, a customer name and at least one item")
)
