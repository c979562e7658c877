// Package move implements the move algebra: move kinds, move counts,
// single moves, and their inversion/composition rules.
package move

import (
	"fmt"

	"github.com/luckasRanarison/three-style/internal/cubeerr"
)

// Kind identifies which of the 18 recognized moves a Move performs.
type Kind int

const (
	U Kind = iota
	R
	F
	D
	L
	B
	X
	Y
	Z
	M
	E
	S
	Uw
	Rw
	Fw
	Dw
	Lw
	Bw
)

var kindNames = map[Kind]string{
	U: "U", R: "R", F: "F", D: "D", L: "L", B: "B",
	X: "x", Y: "y", Z: "z",
	M: "M", E: "E", S: "S",
	Uw: "u", Rw: "r", Fw: "f", Dw: "d", Lw: "l", Bw: "b",
}

var kindFromToken = map[string]Kind{
	"U": U, "R": R, "F": F, "D": D, "L": L, "B": B,
	"x": X, "y": Y, "z": Z,
	"M": M, "E": E, "S": S,
	"u": Uw, "r": Rw, "f": Fw, "d": Dw, "l": Lw, "b": Bw,
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "?"
}

// ParseKind parses a single move-kind token (U, R, x, u, M, ...).
func ParseKind(s string) (Kind, error) {
	if k, ok := kindFromToken[s]; ok {
		return k, nil
	}
	return 0, cubeerr.New(cubeerr.InvalidMove, s)
}

// IsSide reports whether k is one of the six face moves.
func (k Kind) IsSide() bool {
	switch k {
	case U, R, F, D, L, B:
		return true
	}
	return false
}

// IsRotation reports whether k is a whole-cube rotation.
func (k Kind) IsRotation() bool {
	switch k {
	case X, Y, Z:
		return true
	}
	return false
}

// IsSlice reports whether k is a middle-layer slice move.
func (k Kind) IsSlice() bool {
	switch k {
	case M, E, S:
		return true
	}
	return false
}

// IsWide reports whether k is a wide (two-layer) move.
func (k Kind) IsWide() bool {
	switch k {
	case Uw, Rw, Fw, Dw, Lw, Bw:
		return true
	}
	return false
}

// Inverse returns the kind whose single application undoes k's axis,
// e.g. U inverts to D. Kinds without a distinct opposite are self-inverse.
func (k Kind) Inverse() Kind {
	switch k {
	case U:
		return D
	case D:
		return U
	case R:
		return L
	case L:
		return R
	case F:
		return B
	case B:
		return F
	case Uw:
		return Dw
	case Dw:
		return Uw
	case Rw:
		return Lw
	case Lw:
		return Rw
	case Fw:
		return Bw
	case Bw:
		return Fw
	default:
		return k
	}
}

// ToMoves enumerates the three counted variants of k.
func (k Kind) ToMoves() [3]Move {
	return [3]Move{
		New(k, Simple),
		New(k, Double),
		New(k, Prime),
	}
}

// Parallel lists the move kinds that turn about k's axis and so can be
// freely reordered around it: the opposite kind (plus the slice, for outer
// kinds), the two outer kinds for a slice, and the kind itself for a
// rotation.
func (k Kind) Parallel() []Kind {
	switch k {
	case E:
		return []Kind{U, D}
	case M:
		return []Kind{R, L}
	case S:
		return []Kind{F, B}
	case U, D:
		return []Kind{k.Inverse(), E}
	case R, L:
		return []Kind{k.Inverse(), M}
	case F, B:
		return []Kind{k.Inverse(), S}
	default:
		return []Kind{k.Inverse()}
	}
}

// Count is the quarter-turn multiplier applied to a Kind.
type Count int

const (
	Simple Count = 1
	Double Count = 2
	Prime  Count = 3
)

// Inverse returns the count that undoes c.
func (c Count) Inverse() Count {
	switch c {
	case Simple:
		return Prime
	case Prime:
		return Simple
	default:
		return Double
	}
}

// ParseCount parses a count token: "", "2", or "'".
func ParseCount(s string) (Count, error) {
	switch s {
	case "":
		return Simple, nil
	case "2":
		return Double, nil
	case "'":
		return Prime, nil
	default:
		return 0, cubeerr.New(cubeerr.InvalidMove, s)
	}
}

func (c Count) String() string {
	switch c {
	case Double:
		return "2"
	case Prime:
		return "'"
	default:
		return ""
	}
}

// Move is a single Kind applied Count times.
type Move struct {
	Kind  Kind
	Count Count
}

// New builds a Move.
func New(kind Kind, count Count) Move {
	return Move{Kind: kind, Count: count}
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return New(m.Kind, m.Count.Inverse())
}

func countFromSum(sum int) Count {
	switch sum % 4 {
	case 2:
		return Double
	case 3:
		return Prime
	default:
		return Simple
	}
}

// wideRule records one of the six outer/slice pairings that fuse into a
// wide move: outer∘slice = wide, with slice's count required to equal
// outer's count (inverse == false) or its inverse (inverse == true).
type wideRule struct {
	outer, slice, wide Kind
	inverse            bool
}

var wideRules = [...]wideRule{
	{outer: U, slice: E, wide: Uw, inverse: true},
	{outer: D, slice: E, wide: Dw, inverse: false},
	{outer: L, slice: M, wide: Lw, inverse: false},
	{outer: R, slice: M, wide: Rw, inverse: true},
	{outer: F, slice: S, wide: Fw, inverse: false},
	{outer: B, slice: S, wide: Bw, inverse: true},
}

func wideRuleFor(wide Kind) (wideRule, bool) {
	for _, r := range wideRules {
		if r.wide == wide {
			return r, true
		}
	}
	return wideRule{}, false
}

// mulWideSynthesis implements spec rule 2 ("wide synthesis"): an outer move
// composed with its paired slice move, in either order, fuses into a wide
// move when the slice's count matches the rule's required pairing.
func mulWideSynthesis(m, rhs Move) *Move {
	for _, r := range wideRules {
		var outer, slice Move
		switch {
		case m.Kind == r.outer && rhs.Kind == r.slice:
			outer, slice = m, rhs
		case rhs.Kind == r.outer && m.Kind == r.slice:
			outer, slice = rhs, m
		default:
			continue
		}

		want := outer.Count
		if r.inverse {
			want = outer.Count.Inverse()
		}
		if slice.Count == want {
			res := New(r.wide, outer.Count)
			return &res
		}
	}
	return nil
}

// mulWideAnalysis implements spec rule 3 ("wide analysis"): a wide move
// composed with its outer kind cancels the outer part, leaving the slice;
// composed with its slice kind cancels the slice part, leaving the outer.
func mulWideAnalysis(m, rhs Move) *Move {
	var wide, other Move
	switch {
	case m.Kind.IsWide() && !rhs.Kind.IsWide():
		wide, other = m, rhs
	case rhs.Kind.IsWide() && !m.Kind.IsWide():
		wide, other = rhs, m
	default:
		return nil
	}

	r, ok := wideRuleFor(wide.Kind)
	if !ok {
		return nil
	}

	sliceCount := wide.Count
	if r.inverse {
		sliceCount = wide.Count.Inverse()
	}

	switch other.Kind {
	case r.outer:
		if other.Count == wide.Count.Inverse() {
			res := New(r.slice, sliceCount)
			return &res
		}
	case r.slice:
		if other.Count == sliceCount.Inverse() {
			res := New(r.outer, wide.Count)
			return &res
		}
	}
	return nil
}

// Mul composes m and rhs, implementing spec §4.A's three reduction rules:
// same-kind fusion (absorbing to nil when the counts are mutual inverses),
// wide synthesis (an outer move fused with its paired slice move), and wide
// analysis (a wide move decomposed against its outer or slice kind). Returns
// nil when none of the rules apply.
func (m Move) Mul(rhs Move) *Move {
	if m.Kind == rhs.Kind {
		if m.Count == rhs.Count.Inverse() {
			return nil
		}
		res := New(m.Kind, countFromSum(int(m.Count)+int(rhs.Count)))
		return &res
	}

	if res := mulWideSynthesis(m, rhs); res != nil {
		return res
	}
	return mulWideAnalysis(m, rhs)
}

// Parse parses a move token such as "R", "R2", "R'", "u'".
func Parse(s string) (Move, error) {
	if len(s) == 0 {
		return Move{}, cubeerr.New(cubeerr.InvalidMove, s)
	}
	kind, err := ParseKind(s[:1])
	if err != nil {
		return Move{}, cubeerr.New(cubeerr.InvalidMove, s)
	}
	countToken := ""
	if len(s) > 1 {
		countToken = s[1:2]
	}
	count, err := ParseCount(countToken)
	if err != nil {
		return Move{}, cubeerr.New(cubeerr.InvalidMove, s)
	}
	return New(kind, count), nil
}

func (m Move) String() string {
	return fmt.Sprintf("%s%s", m.Kind, m.Count)
}
