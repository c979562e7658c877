package move

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		m, err := Parse("R")
		require.NoError(t, err)
		assert.Equal(t, New(R, Simple), m)
	})

	t.Run("double", func(t *testing.T) {
		m, err := Parse("R2")
		require.NoError(t, err)
		assert.Equal(t, New(R, Double), m)
	})

	t.Run("prime", func(t *testing.T) {
		m, err := Parse("R'")
		require.NoError(t, err)
		assert.Equal(t, New(R, Prime), m)
	})

	t.Run("wide lowercase kind", func(t *testing.T) {
		m, err := Parse("u'")
		require.NoError(t, err)
		assert.Equal(t, New(Uw, Prime), m)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Parse("Q")
		require.Error(t, err)
	})
}

func TestKindInverse(t *testing.T) {
	cases := map[Kind]Kind{
		U: D, D: U, R: L, L: R, F: B, B: F,
		Uw: Dw, Dw: Uw, Rw: Lw, Lw: Rw, Fw: Bw, Bw: Fw,
		M: M, E: E, S: S, X: X, Y: Y, Z: Z,
	}
	for k, want := range cases {
		assert.Equal(t, want, k.Inverse(), "inverse of %v", k)
	}
}

func TestKindParallel(t *testing.T) {
	assert.ElementsMatch(t, []Kind{U, D}, E.Parallel())
	assert.ElementsMatch(t, []Kind{R, L}, M.Parallel())
	assert.ElementsMatch(t, []Kind{F, B}, S.Parallel())
	assert.ElementsMatch(t, []Kind{D, E}, U.Parallel())
}

func TestMoveMul(t *testing.T) {
	t.Run("cancels to identity", func(t *testing.T) {
		a := New(U, Simple)
		b := New(U, Prime)
		assert.Nil(t, a.Mul(b))
	})

	t.Run("fuses counts mod four", func(t *testing.T) {
		a := New(D, Double)
		b := New(D, Simple)
		got := a.Mul(b)
		require.NotNil(t, got)
		assert.Equal(t, New(D, Prime), *got)
	})

	t.Run("opposite outer kinds do not compose", func(t *testing.T) {
		a := New(U, Simple)
		b := New(D, Simple)
		assert.Nil(t, a.Mul(b))
	})

	t.Run("wide synthesis fuses an outer move with its paired slice", func(t *testing.T) {
		got := New(M, Simple).Mul(New(R, Prime))
		require.NotNil(t, got)
		assert.Equal(t, New(Rw, Prime), *got)
	})

	t.Run("wide synthesis respects argument order", func(t *testing.T) {
		got := New(R, Prime).Mul(New(M, Simple))
		require.NotNil(t, got)
		assert.Equal(t, New(Rw, Prime), *got)
	})

	t.Run("wide synthesis rejects a mismatched slice direction", func(t *testing.T) {
		assert.Nil(t, New(M, Double).Mul(New(R, Prime)))
	})

	t.Run("wide analysis against the outer kind yields the slice", func(t *testing.T) {
		got := New(Rw, Simple).Mul(New(R, Prime))
		require.NotNil(t, got)
		assert.Equal(t, New(M, Prime), *got)
	})

	t.Run("wide analysis against the slice kind yields the outer", func(t *testing.T) {
		got := New(Rw, Simple).Mul(New(M, Simple))
		require.NotNil(t, got)
		assert.Equal(t, New(R, Simple), *got)
	})
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "R", New(R, Simple).String())
	assert.Equal(t, "R2", New(R, Double).String())
	assert.Equal(t, "R'", New(R, Prime).String())
	assert.Equal(t, "u'", New(Uw, Prime).String())
}
