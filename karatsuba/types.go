package karatsuba

import "errors"

// Sentinel errors returned by Multiply and MultiplySigned.
var (
	// ErrNilOperand indicates a nil *big.Int operand.
	ErrNilOperand = errors.New("karatsuba: operand is nil")

	// ErrNegativeOperand indicates a negative operand passed to Multiply.
	// Use MultiplySigned for signed inputs.
	ErrNegativeOperand = errors.New("karatsuba: operand must be non-negative")

	// ErrDepthExceeded indicates the recursion went deeper than the configured limit.
	ErrDepthExceeded = errors.New("karatsuba: recursion depth limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("karatsuba: invalid option supplied")
)

// Stats counts the recursion of one Multiply call.
//
// Every call either hits the base case or splits into exactly three
// sub-calls, so Calls == 3·Splits + 1 and Calls == BaseCases + Splits.
type Stats struct {
	Calls     int
	BaseCases int
	Splits    int
	MaxDepth  int
}
