package cubeerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	err := New(InvalidMove, "Q")
	assert.True(t, errors.Is(err, ErrInvalidMove))
	assert.False(t, errors.Is(err, ErrInvalidCornerString))
}

func TestErrorMessage(t *testing.T) {
	err := New(InvalidThreeCycle, "U0,U1,U2")
	assert.Equal(t, "invalid three-cycle: U0,U1,U2", err.Error())
}
