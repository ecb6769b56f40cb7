package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want Operation
	}{
		{"add", OperationAdd},
		{"+", OperationAdd},
		{" Subtract ", OperationSubtract},
		{"-", OperationSubtract},
		{"MUL", OperationMultiply},
		{"*", OperationMultiply},
		{"divide", OperationDivide},
		{"/", OperationDivide},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseOperation(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseOperation("modulo")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "divide", OperationDivide.String())
	assert.Equal(t, "unknown(999)", Operation(999).String())
	assert.Equal(t, "unknown", Operation(999).Label())
	assert.Equal(t, "add", OperationAdd.Label())
}

func TestResponseConstructors(t *testing.T) {
	ok := Success(4.5)
	assert.False(t, ok.Failed())
	assert.Equal(t, 4.5, ok.Result)

	failed := Failure(errors.New("boom"))
	assert.True(t, failed.Failed())
	assert.Equal(t, "boom", failed.Error)
	assert.Zero(t, failed.Result)
}
