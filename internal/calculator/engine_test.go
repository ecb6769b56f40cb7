package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineOperations(t *testing.T) {
	tests := []struct {
		name string
		op   binaryOp
		a, b float64
		want float64
	}{
		{"add", Add, 2, 3, 5},
		{"add negative", Add, -2, 3, 1},
		{"add zeros", Add, 0, 0, 0},
		{"add fractions", Add, 10.5, 20.7, 31.2},
		{"subtract", Subtract, 5, 3, 2},
		{"subtract negative", Subtract, -2, 3, -5},
		{"subtract zeros", Subtract, 0, 0, 0},
		{"multiply", Multiply, 2, 3, 6},
		{"multiply negative", Multiply, -2, 3, -6},
		{"multiply by zero", Multiply, math.MaxFloat64, 0, 0},
		{"divide", Divide, 6, 2, 3},
		{"divide negative", Divide, -6, 2, -3},
		{"divide zero", Divide, 0, 5, 0},
		{"divide by epsilon", Divide, 1, epsilon, 1 / epsilon},
		{"add at the edge", Add, math.MaxFloat64, 0, math.MaxFloat64},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEngineOverflow(t *testing.T) {
	tests := []struct {
		name string
		op   binaryOp
		a, b float64
		msg  string
	}{
		{"add positive", Add, math.MaxFloat64, math.MaxFloat64, "Addition would cause overflow"},
		{"add negative", Add, -math.MaxFloat64, -math.MaxFloat64, "Addition would cause overflow"},
		{"subtract positive", Subtract, math.MaxFloat64, -math.MaxFloat64, "Subtraction would cause overflow"},
		{"subtract negative", Subtract, -math.MaxFloat64, math.MaxFloat64, "Subtraction would cause overflow"},
		{"multiply", Multiply, math.MaxFloat64, 2, "Multiplication would cause overflow"},
		{"multiply negative", Multiply, -math.MaxFloat64, 1.5, "Multiplication would cause overflow"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.op(tc.a, tc.b)
			require.Error(t, err)
			assert.EqualError(t, err, tc.msg)
			assert.ErrorIs(t, err, ErrOverflow)

			var overflow *OverflowError
			assert.True(t, errors.As(err, &overflow))
		})
	}
}

func TestDivideByNearZero(t *testing.T) {
	for _, b := range []float64{0, math.Copysign(0, -1), epsilon / 2, -epsilon / 2, 1e-300} {
		_, err := Divide(10, b)
		assert.ErrorIs(t, err, ErrDivisionByZero, "b=%g", b)
		assert.EqualError(t, err, "Division by zero is not allowed", "b=%g", b)
	}
}
