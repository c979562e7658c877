package commutator

import (
	"golang.org/x/sync/errgroup"

	"github.com/rs/zerolog"

	"github.com/luckasRanarison/three-style/internal/facelet"
	"github.com/luckasRanarison/three-style/internal/move"
	"github.com/luckasRanarison/three-style/internal/sticker"
)

// findParallel mirrors find but fans the first level of setup moves out
// across goroutines: each first move starts an independent, disjoint
// subtree of the search (distinct setup prefixes touch disjoint move
// trails), so running them concurrently is safe. The root-level
// interchange/insertion check (the empty-setup case) still runs once,
// serially, before branching. Results are concatenated root-then-branch,
// branches in allowedMoves order, matching the serial engine's emission
// order within each region.
func findParallel[T facelet.Target](cycle Cycle[T], allowedKinds []move.Kind, maxDepth int, searchType SearchType) []Commutator {
	state, err := initialState(cycle)
	if err != nil {
		return nil
	}

	var allowedMoves []move.Move
	for _, k := range allowedKinds {
		vs := k.ToMoves()
		allowedMoves = append(allowedMoves, vs[:]...)
	}

	params := newSearchParams(cycle, state, allowedMoves)

	root := &finder{searchType: searchType, maxDepth: maxDepth, logger: zerolog.Nop()}
	root.checkAndInsert(params)

	branches := make([][]Commutator, len(allowedMoves))
	var g errgroup.Group

	for i, m := range allowedMoves {
		i, m := i, m
		g.Go(func() error {
			f := &finder{searchType: searchType, maxDepth: maxDepth, currentMoves: []move.Move{m}, logger: zerolog.Nop()}
			f.findInterchange(params.next(m))
			branches[i] = f.results
			return nil
		})
	}
	_ = g.Wait()

	results := append([]Commutator{}, root.results...)
	for _, b := range branches {
		results = append(results, b...)
	}
	return results
}

// FindCornerCommutatorsParallel is the concurrent counterpart of
// FindCornerCommutators, fanning the first level of setup moves across
// goroutines via errgroup.
func FindCornerCommutatorsParallel(cycle Cycle[sticker.Corner], allowedKinds []move.Kind, maxDepth int) []Commutator {
	return findParallel(cycle, allowedKinds, maxDepth, Corner)
}

// FindEdgeCommutatorsParallel is the concurrent counterpart of
// FindEdgeCommutators.
func FindEdgeCommutatorsParallel(cycle Cycle[sticker.Edge], allowedKinds []move.Kind, maxDepth int) []Commutator {
	return findParallel(cycle, allowedKinds, maxDepth, Edge)
}
