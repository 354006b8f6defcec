package orders

import (
	"errors"
	"fmt"
)

// Error taxonomy for the order manager. Handlers map these onto HTTP
// statuses; the manager itself stays transport-free.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// InsufficientStockError names the offending product and how much is
// actually available, so the cashier sees something actionable.
type InsufficientStockError struct {
	ProductName string
	Available   float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock for %s. (Available: %g)", e.ProductName, e.Available)
}
