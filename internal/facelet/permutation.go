package facelet

import "github.com/luckasRanarison/three-style/internal/move"

// Permutation maps a facelet position to the position it is sent to by a
// move, i.e. the inverse view of Cube's "is replaced by" substitution —
// used by the search engine to track where a tracked sticker moves to.
type Permutation [54]Facelet

// At returns where f is sent to under p.
func (p Permutation) At(f Facelet) Facelet {
	return p[int(f)]
}

// PermutationFromMove derives the position->position permutation m
// induces, by inverting Cube's substitution view: for every position i,
// the solved facelet i moves to the position that now holds it.
func PermutationFromMove(m move.Move) Permutation {
	cube := FromMove(m)
	var res Permutation
	for i := 0; i < 54; i++ {
		res[int(cube.state[i])] = Facelet(i)
	}
	return res
}
