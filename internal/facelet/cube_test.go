package facelet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckasRanarison/three-style/internal/move"
)

func scramble(t *testing.T, s string) Cube {
	t.Helper()
	alg, err := move.ParseAlg(s)
	require.NoError(t, err)
	return Default().ApplyAlg(alg)
}

func TestPrimitiveMoves(t *testing.T) {
	cube := scramble(t, "U R F D L B")
	want := "BBDBUFLLFURRURBDDLUFRUFRLLBFDRFDRUBBRLFULFBDDFUURBLDDL"
	assert.Equal(t, want, cube.String())
}

func TestSliceMoves(t *testing.T) {
	cube := scramble(t, "M E S E' S' M'")
	want := "UUUUBUUUURRRRURRRRFFFFLFFFFDDDDFDDDDLLLLDLLLLBBBBRBBBB"
	assert.Equal(t, want, cube.String())
}

func TestRotations(t *testing.T) {
	cube := scramble(t, "x y z")
	want := "DDDDDDDDDFFFFFFFFFRRRRRRRRRUUUUUUUUUBBBBBBBBBLLLLLLLLL"
	assert.Equal(t, want, cube.String())
}

func TestWideMoves(t *testing.T) {
	cube := scramble(t, "u r f d l b")
	want := "BDDUDDLUFURRDLLDFLURRLFBLFBFRRUULUUBRFFRRDBBDFFUBBBDLL"
	assert.Equal(t, want, cube.String())
}

func TestLongScramble(t *testing.T) {
	cube := scramble(t, "D F2 U' B2 F2 U2 L2 D B2 D2 U' F2 U' F2 R' B R' D R2 D2 R' F' L R'")
	want := "FRDRULDFFRBLLRRFUURDDUFFLBLURDBDFLURUDBDLBUDFBURFBLBLB"
	assert.Equal(t, want, cube.String())
}

func TestIsSolved(t *testing.T) {
	assert.True(t, Default().IsSolved())
	assert.True(t, scramble(t, "x y2 z'").IsSolved())
	assert.False(t, scramble(t, "R U R' U'").IsSolved())
}

type pair struct{ facelets [2]Facelet }

func (p pair) Facelets() []Facelet { return p.facelets[:] }

type triple struct{ facelets [3]Facelet }

func (tr triple) Facelets() []Facelet { return tr.facelets[:] }

func TestEdgeCycleRoundTrip(t *testing.T) {
	uf := pair{[2]Facelet{U7, F1}}
	ub := pair{[2]Facelet{U1, B1}}
	fl := pair{[2]Facelet{F3, L5}}

	cycled, err := Default().Cycle(uf, ub, fl)
	require.NoError(t, err)
	assert.NotEqual(t, Default(), cycled)

	restored, err := cycled.Cycle(uf, fl, ub)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), restored, cmp.AllowUnexported(Cube{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCornerCycleRoundTrip(t *testing.T) {
	ufr := triple{[3]Facelet{U8, F2, R0}}
	ulf := triple{[3]Facelet{U6, L2, F0}}
	rfd := triple{[3]Facelet{R6, F8, D2}}

	cycled, err := Default().Cycle(ufr, ulf, rfd)
	require.NoError(t, err)
	assert.NotEqual(t, Default(), cycled)

	restored, err := cycled.Cycle(ufr, rfd, ulf)
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), restored, cmp.AllowUnexported(Cube{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCycleRejectsOverlappingFacelets(t *testing.T) {
	a := pair{[2]Facelet{U0, U1}}
	b := pair{[2]Facelet{U1, U2}}
	c := pair{[2]Facelet{U3, U4}}

	_, err := Default().Cycle(a, b, c)
	require.Error(t, err)
}
