package commutator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckasRanarison/three-style/internal/move"
)

func mustAlg(t *testing.T, s string) move.Alg {
	t.Helper()
	a, err := move.ParseAlg(s)
	require.NoError(t, err)
	return a
}

func TestCommutatorString(t *testing.T) {
	u, err := move.Parse("U")
	require.NoError(t, err)

	c := Commutator{
		Interchange:    u,
		Insertion:      mustAlg(t, "R' D' R"),
		InsertionFirst: false,
	}
	assert.Equal(t, "[U, R' D' R]", c.String())

	setup := mustAlg(t, "U")
	c.Setup = &setup
	assert.Equal(t, "[U: [U, R' D' R]]", c.String())
}

func TestCommutatorExpand(t *testing.T) {
	u, err := move.Parse("U")
	require.NoError(t, err)
	setup := mustAlg(t, "D")

	c := Commutator{
		Setup:          &setup,
		Interchange:    u,
		Insertion:      mustAlg(t, "R' D' R"),
		InsertionFirst: true,
	}

	want := mustAlg(t, "D R' D' R U R' D R U' D'")
	assert.Equal(t, want, c.Expand().Reduce())
}

func TestCommutatorLenAndIsPure(t *testing.T) {
	u, err := move.Parse("U")
	require.NoError(t, err)

	c := Commutator{Interchange: u, Insertion: mustAlg(t, "R' D' R")}
	assert.True(t, c.IsPure())
	assert.Equal(t, 4, c.Len())

	setup := mustAlg(t, "D")
	c.Setup = &setup
	assert.False(t, c.IsPure())
	assert.Equal(t, 5, c.Len())
}
