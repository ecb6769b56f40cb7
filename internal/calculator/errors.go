package calculator

import "errors"

// The messages below are part of the response contract and are returned to
// callers verbatim.
var (
	ErrDivisionByZero   = errors.New("Division by zero is not allowed")
	ErrUnknownOperation = errors.New("Unknown operation")

	// ErrOverflow matches every *OverflowError through errors.Is.
	ErrOverflow = errors.New("overflow")
)

// OverflowError reports that Op would leave the finite float64 range.
type OverflowError struct {
	Op Operation
}

func (e *OverflowError) Error() string {
	switch e.Op {
	case OperationAdd:
		return "Addition would cause overflow"
	case OperationSubtract:
		return "Subtraction would cause overflow"
	case OperationMultiply:
		return "Multiplication would cause overflow"
	default:
		return e.Op.String() + " would cause overflow"
	}
}

func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}
