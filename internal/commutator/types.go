// Package commutator implements the commutator value type — a setup,
// an interchange move and an insertion algorithm — and the depth-bounded
// search engine that discovers them.
package commutator

import (
	"fmt"

	"github.com/luckasRanarison/three-style/internal/facelet"
	"github.com/luckasRanarison/three-style/internal/move"
)

// Commutator is a three-cycle solution expressed as [setup: [X, Y]],
// where X and Y are the interchange move and the insertion algorithm (in
// whichever order InsertionFirst selects).
type Commutator struct {
	Setup          *move.Alg
	Interchange    move.Move
	Insertion      move.Alg
	InsertionFirst bool
}

// IsPure reports whether the commutator has no setup moves.
func (c Commutator) IsPure() bool {
	return c.Setup == nil
}

// Len returns the commutator's length in its notation form: the setup
// length (if any) plus the insertion length plus one for the interchange.
func (c Commutator) Len() int {
	setupLen := 0
	if c.Setup != nil {
		setupLen = c.Setup.Len()
	}
	return setupLen + c.Insertion.Len() + 1
}

// Expand returns the non-reduced algorithm that [setup: [X, Y]] or [X, Y]
// represents, i.e. S · X · Y · X⁻¹ · Y⁻¹ · S⁻¹ with X and Y ordered
// according to InsertionFirst.
func (c Commutator) Expand() move.Alg {
	interchange := move.NewAlg(c.Interchange)
	first, second := interchange, c.Insertion
	if c.InsertionFirst {
		first, second = c.Insertion, interchange
	}
	middle := first.Concat(second).Concat(first.Inverse()).Concat(second.Inverse())

	if c.Setup == nil {
		return middle
	}
	return c.Setup.Concat(middle).Concat(c.Setup.Inverse())
}

func (c Commutator) String() string {
	insertion := c.Insertion.String()
	interchange := c.Interchange.String()
	first, second := interchange, insertion
	if c.InsertionFirst {
		first, second = insertion, interchange
	}

	start, end := "", ""
	if c.Setup != nil {
		start = fmt.Sprintf("[%s: ", c.Setup)
		end = "]"
	}

	return fmt.Sprintf("%s[%s, %s]%s", start, first, second, end)
}

// Cycle names a forward three-cycle over sticker targets of type T: the
// value at First moves to Second, Second's to Third, Third's to First.
type Cycle[T facelet.Target] struct {
	targets [3]T
}

// NewCycle builds a Cycle from three targets, in cycle order.
func NewCycle[T facelet.Target](first, second, third T) Cycle[T] {
	return Cycle[T]{targets: [3]T{first, second, third}}
}

func (c Cycle[T]) First() T  { return c.targets[0] }
func (c Cycle[T]) Second() T { return c.targets[1] }
func (c Cycle[T]) Third() T  { return c.targets[2] }

// Facelets returns the representative facelet of each of the three
// targets, in cycle order.
func (c Cycle[T]) Facelets() [3]facelet.Facelet {
	return [3]facelet.Facelet{
		facelet.AsFacelet(c.targets[0]),
		facelet.AsFacelet(c.targets[1]),
		facelet.AsFacelet(c.targets[2]),
	}
}

// Inverse returns the reverse cycle: First unchanged, Second and Third
// swapped, so that applying it after c restores the identity.
func (c Cycle[T]) Inverse() Cycle[T] {
	return Cycle[T]{targets: [3]T{c.targets[0], c.targets[2], c.targets[1]}}
}

func (c Cycle[T]) String() string {
	return fmt.Sprintf("%v - %v - %v", c.targets[0], c.targets[1], c.targets[2])
}
