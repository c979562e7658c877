package move

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/luckasRanarison/three-style/internal/cubeerr"
)

// Alg is an ordered sequence of moves.
type Alg struct {
	moves []Move
}

// NewAlg builds an Alg from an ordered list of moves.
func NewAlg(moves ...Move) Alg {
	cp := make([]Move, len(moves))
	copy(cp, moves)
	return Alg{moves: cp}
}

// Len returns the number of moves in a.
func (a Alg) Len() int { return len(a.moves) }

// IsEmpty reports whether a has no moves.
func (a Alg) IsEmpty() bool { return len(a.moves) == 0 }

// Moves returns the underlying move slice; callers must not mutate it.
func (a Alg) Moves() []Move { return a.moves }

// Inverse returns the reversed, move-by-move inverted algorithm.
func (a Alg) Inverse() Alg {
	out := make([]Move, len(a.moves))
	for i, m := range a.moves {
		out[len(a.moves)-1-i] = m.Inverse()
	}
	return Alg{moves: out}
}

// Concat appends rhs's moves after a's, returning a new Alg.
func (a Alg) Concat(rhs Alg) Alg {
	out := make([]Move, 0, len(a.moves)+len(rhs.moves))
	out = append(out, a.moves...)
	out = append(out, rhs.moves...)
	return Alg{moves: out}
}

// Reduce runs the two-pass canonicalization described by spec §4.B.
//
// Pass 1 coalesces parallel-commuting runs: a working group maps move kind
// to its running cumulative move, accepting an incoming move into the group
// when it shares a kind already present (fusing via Mul, dropping it if the
// fusion absorbs to the identity) or when it's parallel to some kind already
// in the group; otherwise the group is flushed, in kind order, and reseeded.
//
// Pass 2 walks the flushed list with a stack, composing each move against
// the stack's top via Mul — same-kind fusion, wide-move synthesis, and
// wide-move analysis all apply here, since adjacency is what allows those
// rules to fire.
func (a Alg) Reduce() Alg {
	return Alg{moves: reduceAdjacent(reduceGroups(a.moves))}
}

func reduceGroups(moves []Move) []Move {
	var out []Move
	group := map[Kind]Move{}

	flush := func() {
		if len(group) == 0 {
			return
		}
		kinds := maps.Keys(group)
		slices.Sort(kinds)
		for _, k := range kinds {
			out = append(out, group[k])
		}
		group = map[Kind]Move{}
	}

	groupAccepts := func(k Kind) bool {
		for existing := range group {
			if slices.Contains(existing.Parallel(), k) || slices.Contains(k.Parallel(), existing) {
				return true
			}
		}
		return false
	}

	for _, m := range moves {
		if prior, ok := group[m.Kind]; ok {
			delete(group, m.Kind)
			if combined := prior.Mul(m); combined != nil {
				group[m.Kind] = *combined
			}
			continue
		}
		if groupAccepts(m.Kind) {
			group[m.Kind] = m
			continue
		}
		flush()
		group[m.Kind] = m
	}
	flush()

	return out
}

func reduceAdjacent(moves []Move) []Move {
	var stack []Move

	for _, m := range moves {
		if n := len(stack); n > 0 {
			top := stack[n-1]
			if top.Kind == m.Kind && top.Count == m.Count.Inverse() {
				stack = stack[:n-1]
				continue
			}
			if combined := top.Mul(m); combined != nil {
				stack[n-1] = *combined
				continue
			}
		}
		stack = append(stack, m)
	}

	return stack
}

// ParseAlg parses a whitespace-separated sequence of move tokens.
func ParseAlg(s string) (Alg, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := Parse(f)
		if err != nil {
			return Alg{}, cubeerr.New(cubeerr.InvalidMove, f)
		}
		moves = append(moves, m)
	}
	return Alg{moves: moves}, nil
}

func (a Alg) String() string {
	parts := make([]string, len(a.moves))
	for i, m := range a.moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
