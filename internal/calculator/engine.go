package calculator

import "math"

// epsilon is the float64 machine epsilon, the gap between 1 and the next
// representable value.
const epsilon = 0x1p-52

const (
	maxFloat    = math.MaxFloat64
	lowestFloat = -math.MaxFloat64
)

// binaryOp is the shape shared by every engine operation.
type binaryOp func(a, b float64) (float64, error)

var operations = map[Operation]binaryOp{
	OperationAdd:      Add,
	OperationSubtract: Subtract,
	OperationMultiply: Multiply,
	OperationDivide:   Divide,
}

// Add returns a + b, or an *OverflowError when the sum would leave the finite
// range. The check runs before the addition.
func Add(a, b float64) (float64, error) {
	if (b > 0 && a > maxFloat-b) || (b < 0 && a < lowestFloat-b) {
		return 0, &OverflowError{Op: OperationAdd}
	}
	return a + b, nil
}

// Subtract returns a - b, or an *OverflowError when the difference would
// leave the finite range.
func Subtract(a, b float64) (float64, error) {
	if (b < 0 && a > maxFloat+b) || (b > 0 && a < lowestFloat+b) {
		return 0, &OverflowError{Op: OperationSubtract}
	}
	return a - b, nil
}

// Multiply returns a * b, or an *OverflowError when |a| > max/|b|.
func Multiply(a, b float64) (float64, error) {
	if b != 0 && math.Abs(a) > maxFloat/math.Abs(b) {
		return 0, &OverflowError{Op: OperationMultiply}
	}
	return a * b, nil
}

// Divide returns a / b. Any |b| below machine epsilon counts as zero.
func Divide(a, b float64) (float64, error) {
	if math.Abs(b) < epsilon {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
