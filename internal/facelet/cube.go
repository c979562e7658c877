package facelet

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/luckasRanarison/three-style/internal/cubeerr"
	"github.com/luckasRanarison/three-style/internal/move"
)

// Cube is the state of a cube at the facelet level.
type Cube struct {
	state State
}

// Default returns the solved cube.
func Default() Cube {
	return Cube{state: defaultState}
}

// New wraps a raw facelet state.
func New(state State) Cube {
	return Cube{state: state}
}

// At returns the facelet currently occupying position i.
func (c Cube) At(i Facelet) Facelet {
	return c.state[int(i)]
}

// IsSolved reports whether every face shows a single uniform color.
func (c Cube) IsSolved() bool {
	for face := 0; face < 6; face++ {
		first := c.state[face*9].Color()
		for i := 1; i < 9; i++ {
			if c.state[face*9+i].Color() != first {
				return false
			}
		}
	}
	return true
}

// mul implements the "is replaced by" composition law: the result at
// position i is self's facelet at whatever position rhs currently holds
// position i's content, i.e. res[i] = self[rhs[i]].
func mul(self, rhs Cube) Cube {
	var res Cube
	for i, f := range rhs.state {
		res.state[i] = self.At(f)
	}
	return res
}

func baseCube(kind move.Kind) Cube {
	switch kind {
	case move.U:
		return uCube
	case move.R:
		return rCube
	case move.F:
		return fCube
	case move.D:
		return dCube
	case move.L:
		return lCube
	case move.B:
		return bCube
	case move.M:
		return mCube
	case move.E:
		return eCube
	case move.S:
		return sCube
	case move.X:
		return xCube
	case move.Y:
		return yCube
	case move.Z:
		return zCube
	case move.Uw:
		return uwCube
	case move.Rw:
		return rwCube
	case move.Fw:
		return fwCube
	case move.Dw:
		return dwCube
	case move.Lw:
		return lwCube
	case move.Bw:
		return bwCube
	default:
		return Default()
	}
}

// FromMove builds the permutation a single move applies, raising the
// base per-kind table to the move's count via repeated self-composition.
func FromMove(m move.Move) Cube {
	base := baseCube(m.Kind)
	switch m.Count {
	case move.Double:
		return mul(base, base)
	case move.Prime:
		return mul(mul(base, base), base)
	default:
		return base
	}
}

// ApplyMove returns the cube after applying m.
func (c Cube) ApplyMove(m move.Move) Cube {
	return mul(c, FromMove(m))
}

// ApplyAlg returns the cube after applying every move of a in order.
func (c Cube) ApplyAlg(a move.Alg) Cube {
	cur := c
	for _, m := range a.Moves() {
		cur = cur.ApplyMove(m)
	}
	return cur
}

// Cycle forward three-cycles the sticker positions named by first,
// second and third on top of c: the content of first moves to second,
// second moves to third, and third moves to first. The three targets'
// facelets must be pairwise disjoint.
func (c Cube) Cycle(first, second, third Target) (Cube, error) {
	a := first.Facelets()
	b := second.Facelets()
	d := third.Facelets()

	expected := uint(len(a) + len(b) + len(d))
	seen := bitset.New(54)
	for _, group := range [][]Facelet{a, b, d} {
		for _, f := range group {
			seen.Set(uint(f))
		}
	}
	if seen.Count() != expected {
		return Cube{}, cubeerr.New(cubeerr.InvalidThreeCycle, cycleLabel(first, second, third))
	}

	res := c
	n := int(expected) / 3
	for i := 0; i < n; i++ {
		res.state[a[i]] = c.state[d[i]]
		res.state[b[i]] = c.state[a[i]]
		res.state[d[i]] = c.state[b[i]]
	}
	return res, nil
}

func cycleLabel(first, second, third Target) string {
	var sb strings.Builder
	sb.WriteString(AsFacelet(first).String())
	sb.WriteString(",")
	sb.WriteString(AsFacelet(second).String())
	sb.WriteString(",")
	sb.WriteString(AsFacelet(third).String())
	return sb.String()
}

func (c Cube) String() string {
	var sb strings.Builder
	for _, f := range c.state {
		sb.WriteString(f.Color().String())
	}
	return sb.String()
}

//nolint:gochecknoglobals // these are permutation constants, not mutable state
var (
	uCube = Cube{state: State{
		U6, U3, U0, U7, U4, U1, U8, U5, U2,
		B0, B1, B2, R3, R4, R5, R6, R7, R8,
		R0, R1, R2, F3, F4, F5, F6, F7, F8,
		D0, D1, D2, D3, D4, D5, D6, D7, D8,
		F0, F1, F2, L3, L4, L5, L6, L7, L8,
		L0, L1, L2, B3, B4, B5, B6, B7, B8,
	}}

	rCube = Cube{state: State{
		U0, U1, F2, U3, U4, F5, U6, U7, F8,
		R6, R3, R0, R7, R4, R1, R8, R5, R2,
		F0, F1, D2, F3, F4, D5, F6, F7, D8,
		D0, D1, B6, D3, D4, B3, D6, D7, B0,
		L0, L1, L2, L3, L4, L5, L6, L7, L8,
		U8, B1, B2, U5, B4, B5, U2, B7, B8,
	}}

	fCube = Cube{state: State{
		U0, U1, U2, U3, U4, U5, L8, L5, L2,
		U6, R1, R2, U7, R4, R5, U8, R7, R8,
		F6, F3, F0, F7, F4, F1, F8, F5, F2,
		R6, R3, R0, D3, D4, D5, D6, D7, D8,
		L0, L1, D0, L3, L4, D1, L6, L7, D2,
		B0, B1, B2, B3, B4, B5, B6, B7, B8,
	}}

	dCube = Cube{state: State{
		U0, U1, U2, U3, U4, U5, U6, U7, U8,
		R0, R1, R2, R3, R4, R5, F6, F7, F8,
		F0, F1, F2, F3, F4, F5, L6, L7, L8,
		D6, D3, D0, D7, D4, D1, D8, D5, D2,
		L0, L1, L2, L3, L4, L5, B6, B7, B8,
		B0, B1, B2, B3, B4, B5, R6, R7, R8,
	}}

	lCube = Cube{state: State{
		B8, U1, U2, B5, U4, U5, B2, U7, U8,
		R0, R1, R2, R3, R4, R5, R6, R7, R8,
		U0, F1, F2, U3, F4, F5, U6, F7, F8,
		F0, D1, D2, F3, D4, D5, F6, D7, D8,
		L6, L3, L0, L7, L4, L1, L8, L5, L2,
		B0, B1, D6, B3, B4, D3, B6, B7, D0,
	}}

	bCube = Cube{state: State{
		R2, R5, R8, U3, U4, U5, U6, U7, U8,
		R0, R1, D8, R3, R4, D7, R6, R7, D6,
		F0, F1, F2, F3, F4, F5, F6, F7, F8,
		D0, D1, D2, D3, D4, D5, L0, L3, L6,
		U2, L1, L2, U1, L4, L5, U0, L7, L8,
		B6, B3, B0, B7, B4, B1, B8, B5, B2,
	}}

	mCube = Cube{state: State{
		U0, B7, U2, U3, B4, U5, U6, B1, U8,
		R0, R1, R2, R3, R4, R5, R6, R7, R8,
		F0, U1, F2, F3, U4, F5, F6, U7, F8,
		D0, F1, D2, D3, F4, D5, D6, F7, D8,
		L0, L1, L2, L3, L4, L5, L6, L7, L8,
		B0, D7, B2, B3, D4, B5, B6, D1, B8,
	}}

	eCube = Cube{state: State{
		U0, U1, U2, U3, U4, U5, U6, U7, U8,
		R0, R1, R2, F3, F4, F5, R6, R7, R8,
		F0, F1, F2, L3, L4, L5, F6, F7, F8,
		D0, D1, D2, D3, D4, D5, D6, D7, D8,
		L0, L1, L2, B3, B4, B5, L6, L7, L8,
		B0, B1, B2, R3, R4, R5, B6, B7, B8,
	}}

	sCube = Cube{state: State{
		U0, U1, U2, L7, L4, L1, U6, U7, U8,
		R0, U3, R2, R3, U4, R5, R6, U5, R8,
		F0, F1, F2, F3, F4, F5, F6, F7, F8,
		D0, D1, D2, R7, R4, R1, D6, D7, D8,
		L0, D3, L2, L3, D4, L5, L6, D5, L8,
		B0, B1, B2, B3, B4, B5, B6, B7, B8,
	}}

	xCube = Cube{state: State{
		F0, F1, F2, F3, F4, F5, F6, F7, F8,
		R6, R3, R0, R7, R4, R1, R8, R5, R2,
		D0, D1, D2, D3, D4, D5, D6, D7, D8,
		B8, B7, B6, B5, B4, B3, B2, B1, B0,
		L2, L5, L8, L1, L4, L7, L0, L3, L6,
		U8, U7, U6, U5, U4, U3, U2, U1, U0,
	}}

	yCube = Cube{state: State{
		U6, U3, U0, U7, U4, U1, U8, U5, U2,
		B0, B1, B2, B3, B4, B5, B6, B7, B8,
		R0, R1, R2, R3, R4, R5, R6, R7, R8,
		D2, D5, D8, D1, D4, D7, D0, D3, D6,
		F0, F1, F2, F3, F4, F5, F6, F7, F8,
		L0, L1, L2, L3, L4, L5, L6, L7, L8,
	}}

	zCube = Cube{state: State{
		L6, L3, L0, L7, L4, L1, L8, L5, L2,
		U6, U3, U0, U7, U4, U1, U8, U5, U2,
		F6, F3, F0, F7, F4, F1, F8, F5, F2,
		R6, R3, R0, R7, R4, R1, R8, R5, R2,
		D6, D3, D0, D7, D4, D1, D8, D5, D2,
		B2, B5, B8, B1, B4, B7, B0, B3, B6,
	}}

	uwCube = Cube{state: State{
		U6, U3, U0, U7, U4, U1, U8, U5, U2,
		B0, B1, B2, B3, B4, B5, R6, R7, R8,
		R0, R1, R2, R3, R4, R5, F6, F7, F8,
		D0, D1, D2, D3, D4, D5, D6, D7, D8,
		F0, F1, F2, F3, F4, F5, L6, L7, L8,
		L0, L1, L2, L3, L4, L5, B6, B7, B8,
	}}

	rwCube = Cube{state: State{
		U0, F1, F2, U3, F4, F5, U6, F7, F8,
		R6, R3, R0, R7, R4, R1, R8, R5, R2,
		F0, D1, D2, F3, D4, D5, F6, D7, D8,
		D0, B7, B6, D3, B4, B3, D6, B1, B0,
		L0, L1, L2, L3, L4, L5, L6, L7, L8,
		U8, U7, B2, U5, U4, B5, U2, U1, B8,
	}}

	fwCube = Cube{state: State{
		U0, U1, U2, L7, L4, L1, L8, L5, L2,
		U6, U3, R2, U7, U4, R5, U8, U5, R8,
		F6, F3, F0, F7, F4, F1, F8, F5, F2,
		R6, R3, R0, R7, R4, R1, D6, D7, D8,
		L0, D3, D0, L3, D4, D1, L6, D5, D2,
		B0, B1, B2, B3, B4, B5, B6, B7, B8,
	}}

	dwCube = Cube{state: State{
		U0, U1, U2, U3, U4, U5, U6, U7, U8,
		R0, R1, R2, F3, F4, F5, F6, F7, F8,
		F0, F1, F2, L3, L4, L5, L6, L7, L8,
		D6, D3, D0, D7, D4, D1, D8, D5, D2,
		L0, L1, L2, B3, B4, B5, B6, B7, B8,
		B0, B1, B2, R3, R4, R5, R6, R7, R8,
	}}

	lwCube = Cube{state: State{
		B8, B7, U2, B5, B4, U5, B2, B1, U8,
		R0, R1, R2, R3, R4, R5, R6, R7, R8,
		U0, U1, F2, U3, U4, F5, U6, U7, F8,
		F0, F1, D2, F3, F4, D5, F6, F7, D8,
		L6, L3, L0, L7, L4, L1, L8, L5, L2,
		B0, D7, D6, B3, D4, D3, B6, D1, D0,
	}}

	bwCube = Cube{state: State{
		R2, R5, R8, R1, R4, R7, U6, U7, U8,
		R0, D5, D8, R3, D4, D7, R6, D3, D6,
		F0, F1, F2, F3, F4, F5, F6, F7, F8,
		D0, D1, D2, L1, L4, L7, L0, L3, L6,
		U2, U5, L2, U1, U4, L5, U0, U3, L8,
		B6, B3, B0, B7, B4, B1, B8, B5, B2,
	}}
)
