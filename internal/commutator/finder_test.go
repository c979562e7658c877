package commutator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckasRanarison/three-style/internal/facelet"
	"github.com/luckasRanarison/three-style/internal/move"
	"github.com/luckasRanarison/three-style/internal/sticker"
)

func assertCommutatorsSolve(t *testing.T, initial facelet.Cube, results []Commutator) {
	t.Helper()
	require.NotEmpty(t, results)
	for _, c := range results {
		got := initial.ApplyAlg(c.Expand())
		assert.True(t, got.IsSolved(), "commutator %s did not restore the cube", c)
	}
}

func TestFindCornerCommutators(t *testing.T) {
	cycle := NewCycle(sticker.UFR, sticker.URB, sticker.RFD)
	initial, err := initialState(cycle)
	require.NoError(t, err)

	results := FindCornerCommutators(cycle, []move.Kind{move.U, move.R, move.D}, 6)
	assertCommutatorsSolve(t, initial, results)
}

func TestFindEdgeCommutators(t *testing.T) {
	cycle := NewCycle(sticker.UF, sticker.UB, sticker.LF)
	initial, err := initialState(cycle)
	require.NoError(t, err)

	results := FindEdgeCommutators(cycle, []move.Kind{move.U, move.R, move.E}, 5)
	assertCommutatorsSolve(t, initial, results)
}

func TestFindEdgeCommutatorsFourMover(t *testing.T) {
	cycle := NewCycle(sticker.UF, sticker.UB, sticker.DF)
	initial, err := initialState(cycle)
	require.NoError(t, err)

	results := FindEdgeCommutators(cycle, []move.Kind{move.U, move.M}, 2)
	assertCommutatorsSolve(t, initial, results)
}

func TestFindCornerCommutatorsParallelMatchesSerial(t *testing.T) {
	cycle := NewCycle(sticker.UFR, sticker.URB, sticker.RFD)
	serial := FindCornerCommutators(cycle, []move.Kind{move.U, move.R, move.D}, 6)
	parallel := FindCornerCommutatorsParallel(cycle, []move.Kind{move.U, move.R, move.D}, 6)
	assert.ElementsMatch(t, serial, parallel)
}

func TestDedupe(t *testing.T) {
	cycle := NewCycle(sticker.UF, sticker.UB, sticker.LF)
	results := FindEdgeCommutators(cycle, []move.Kind{move.U, move.R, move.E}, 5)
	require.NotEmpty(t, results)

	doubled := append(append([]Commutator{}, results...), results...)
	deduped := Dedupe(doubled)
	assert.Len(t, deduped, len(Dedupe(results)))
}
