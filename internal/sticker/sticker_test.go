package sticker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckasRanarison/three-style/internal/facelet"
)

func TestParseCorner(t *testing.T) {
	c, err := ParseCorner("UFR")
	require.NoError(t, err)
	assert.Equal(t, UFR, c)
	assert.Equal(t, "UFR", c.String())

	_, err = ParseCorner("XYZ")
	require.Error(t, err)
}

func TestParseEdge(t *testing.T) {
	e, err := ParseEdge("UF")
	require.NoError(t, err)
	assert.Equal(t, UF, e)
	assert.Equal(t, "UF", e.String())

	_, err = ParseEdge("ZZ")
	require.Error(t, err)
}

func TestCornerFaceletsSharedByThreeReadings(t *testing.T) {
	seen := map[facelet.Facelet]int{}
	for c := UBL; c <= BDL; c++ {
		for _, f := range c.Facelets() {
			seen[f]++
		}
	}
	// Each of the 8 physical corners is reachable from 3 named readings,
	// each reading sharing the same 3 underlying facelets, so every
	// facelet referenced by a corner target is seen exactly 3 times.
	for f, n := range seen {
		assert.Equal(t, 3, n, "facelet %v seen %d times", f, n)
	}
}

func TestEdgeFaceletsSharedByTwoReadings(t *testing.T) {
	seen := map[facelet.Facelet]int{}
	for e := UB; e <= LD; e++ {
		for _, f := range e.Facelets() {
			seen[f]++
		}
	}
	for f, n := range seen {
		assert.Equal(t, 2, n, "facelet %v seen %d times", f, n)
	}
}
