package dispatcher

import (
	"testing"

	"calculator-service/internal/calculator"

	"github.com/stretchr/testify/assert"
)

func TestSlotDeliversOnce(t *testing.T) {
	s := newSlot()
	s.fulfill(calculator.Success(3))
	assert.Equal(t, calculator.Success(3), s.wait())
}

func TestSlotMisusePanics(t *testing.T) {
	t.Run("fulfilled twice", func(t *testing.T) {
		s := newSlot()
		s.fulfill(calculator.Success(1))
		assert.Panics(t, func() { s.fulfill(calculator.Success(2)) })
	})

	t.Run("awaited twice", func(t *testing.T) {
		s := newSlot()
		s.fulfill(calculator.Success(1))
		s.wait()
		assert.Panics(t, func() { s.wait() })
	})
}
