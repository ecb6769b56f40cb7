package calculator

import (
	"fmt"
	"strings"
)

// Operation selects the arithmetic performed for a Request. The numeric
// values match the protobuf enum, so any value outside the four known
// operations is kept as-is and answered with ErrUnknownOperation.
type Operation int32

const (
	OperationAdd      Operation = 0
	OperationSubtract Operation = 1
	OperationMultiply Operation = 2
	OperationDivide   Operation = 3
)

// Known reports whether op is one of the four supported operations.
func (op Operation) Known() bool {
	return op >= OperationAdd && op <= OperationDivide
}

func (op Operation) String() string {
	switch op {
	case OperationAdd:
		return "add"
	case OperationSubtract:
		return "subtract"
	case OperationMultiply:
		return "multiply"
	case OperationDivide:
		return "divide"
	default:
		return fmt.Sprintf("unknown(%d)", int32(op))
	}
}

// Label is String with every unknown selector collapsed to "unknown", for
// metric attributes and span names.
func (op Operation) Label() string {
	if !op.Known() {
		return "unknown"
	}
	return op.String()
}

// ParseOperation accepts an operation name ("add") or symbol ("+").
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return OperationAdd, nil
	case "subtract", "sub", "-":
		return OperationSubtract, nil
	case "multiply", "mul", "*", "x":
		return OperationMultiply, nil
	case "divide", "div", "/":
		return OperationDivide, nil
	default:
		return 0, fmt.Errorf("parse operation %q: %w", s, ErrUnknownOperation)
	}
}

// Request carries two operands and the operation to apply to them.
type Request struct {
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Operation Operation `json:"operation"`
}

// Response holds either a Result or a non-empty Error, never both.
// Build it with Success or Failure.
type Response struct {
	Result float64 `json:"result"`
	Error  string  `json:"error,omitempty"`
}

// Success returns a response carrying result.
func Success(result float64) Response {
	return Response{Result: result}
}

// Failure returns a response carrying the message of err.
func Failure(err error) Response {
	return Response{Error: err.Error()}
}

// Failed reports whether the response carries an error.
func (r Response) Failed() bool {
	return r.Error != ""
}
