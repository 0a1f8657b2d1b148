package store

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvoiceNotFound  = errors.New("invoice not found")
)

// errNoChange aborts an update without persisting anything and without
// reporting an error to the caller.
var errNoChange = errors.New("no change")
