// Package facelet implements the 54-sticker permutation model of the
// cube: the facelet enumeration, the base move permutation tables, state
// composition, and the three-cycle primitive.
package facelet

// Facelet names one of the 54 sticker positions, in U R F D L B order,
// each face numbered 0..8 reading left-to-right, top-to-bottom.
type Facelet int

const (
	U0 Facelet = iota
	U1
	U2
	U3
	U4
	U5
	U6
	U7
	U8
	R0
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	F0
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	D0
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	L0
	L1
	L2
	L3
	L4
	L5
	L6
	L7
	L8
	B0
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
)

// Color is the sticker color painted on a solved face.
type Color int

const (
	ColorU Color = iota
	ColorR
	ColorF
	ColorD
	ColorL
	ColorB
)

var colorNames = [...]string{"U", "R", "F", "D", "L", "B"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "?"
}

// Color returns the face color a solved cube shows at this position.
func (f Facelet) Color() Color {
	return Color(int(f) / 9)
}

func (f Facelet) String() string {
	face := [...]string{"U", "R", "F", "D", "L", "B"}[int(f)/9]
	return face + string(rune('0'+int(f)%9))
}

// Target is implemented by sticker targets (corners, edges) that resolve
// to an ordered list of facelets on the solved cube.
type Target interface {
	Facelets() []Facelet
}

// AsFacelet returns the canonical representative facelet of a Target,
// used to track a target's current position under a permutation.
func AsFacelet(t Target) Facelet {
	return t.Facelets()[0]
}

// State is the cube expressed as 54 facelet values, in the "is replaced
// by" convention: State[i] names which solved-cube facelet now sits at
// position i.
type State [54]Facelet

// defaultState is the identity/solved state.
var defaultState = func() State {
	var s State
	for i := range s {
		s[i] = Facelet(i)
	}
	return s
}()
