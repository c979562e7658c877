package commutator

import (
	"golang.org/x/exp/slices"

	"github.com/rs/zerolog"

	"github.com/luckasRanarison/three-style/internal/facelet"
	"github.com/luckasRanarison/three-style/internal/move"
	"github.com/luckasRanarison/three-style/internal/sticker"
)

// slot tracks one of the three cycled stickers as the search advances:
// its position on the scrambled cube, where that position has moved to
// under the moves applied so far, and the solved-cube value it holds.
type slot struct {
	initial facelet.Facelet
	current facelet.Facelet
	value   facelet.Facelet
}

type insertion struct {
	source slot
	target slot
}

type searchParams struct {
	state        facelet.Cube
	slots        [3]slot
	allowedMoves []move.Move
	depth        int
}

func newSearchParams[T facelet.Target](cycle Cycle[T], state facelet.Cube, allowedMoves []move.Move) searchParams {
	facelets := cycle.Facelets()
	var slots [3]slot
	for i, f := range facelets {
		slots[i] = slot{initial: f, current: f, value: state.At(f)}
	}
	return searchParams{state: state, slots: slots, allowedMoves: allowedMoves}
}

func (p searchParams) next(m move.Move) searchParams {
	state := p.state.ApplyMove(m)
	perm := facelet.PermutationFromMove(m)
	slots := p.slots
	for i, s := range slots {
		slots[i] = slot{initial: s.initial, current: perm.At(s.current), value: s.value}
	}
	return searchParams{state: state, slots: slots, allowedMoves: p.allowedMoves, depth: p.depth + 1}
}

func (p searchParams) insideCycle(f facelet.Facelet) bool {
	return slices.ContainsFunc(p.slots[:], func(s slot) bool { return s.value == f })
}

func (p searchParams) remainingSlot(first, second facelet.Facelet) slot {
	for _, s := range p.slots {
		if s.value != first && s.value != second {
			return s
		}
	}
	panic("three-cycle search: no remaining slot")
}

// SearchType selects which pruning thresholds the finder applies.
type SearchType int

const (
	Corner SearchType = iota
	Edge
)

type finder struct {
	currentMoves []move.Move
	results      []Commutator
	searchType   SearchType
	maxDepth     int
	logger       zerolog.Logger
}

func (f *finder) search(params searchParams) []Commutator {
	f.findInterchange(params)
	return f.results
}

func (f *finder) findInterchange(params searchParams) {
	if !f.checkAndInsert(params) {
		return
	}
	f.findSetupMoves(params)
}

// checkAndInsert runs the non-recursive half of findInterchange: the
// pruning check and the interchange/insertion scan at the current depth.
// It reports whether the depth was within the pruning threshold, so
// callers that want to fan setup moves out themselves (see parallel.go)
// can run this once at the root and recurse separately.
func (f *finder) checkAndInsert(params searchParams) bool {
	threshold := 2
	if f.searchType == Corner {
		threshold = 4
	}
	if f.maxDepth-params.depth < threshold {
		return false
	}

	for _, interchange := range params.allowedMoves {
		newState := params.state.ApplyMove(interchange)

		if ins, ok := f.checkInterchange(params, newState); ok {
			if f.searchType == Edge && interchange.Count == move.Double {
				f.findFourMover(params, interchange, ins.source)
			}
			if f.maxDepth-params.depth > 3 {
				f.findInsertion(params, interchange, ins)
			}
		}
	}

	return true
}

func (f *finder) checkInterchange(params searchParams, state facelet.Cube) (insertion, bool) {
	for _, s := range params.slots {
		current := state.At(s.current)

		if s.value != current && params.insideCycle(current) {
			source := params.remainingSlot(s.value, current)

			if state.At(source.current) == source.value {
				return insertion{source: source, target: s}, true
			}
		}
	}
	return insertion{}, false
}

func (f *finder) findInsertion(params searchParams, interchange move.Move, ins insertion) {
	source, target := ins.source, ins.target

	var wrapperMoves []move.Move
	for _, m := range params.allowedMoves {
		if m.Kind != interchange.Kind && m.Count != move.Double {
			wrapperMoves = append(wrapperMoves, m)
		}
	}

	var secondMoves []move.Move
	for _, k := range interchange.Kind.Parallel() {
		for _, m := range k.ToMoves() {
			if slices.Contains(params.allowedMoves, m) {
				secondMoves = append(secondMoves, m)
			}
		}
	}

	for _, wm := range wrapperMoves {
		first := params.state.ApplyMove(wm)

		for _, sm := range secondMoves {
			second := first.ApplyMove(sm)
			last := second.ApplyMove(wm.Inverse())

			if last.At(target.current) == source.value {
				alg := move.NewAlg(wm, sm, wm.Inverse())
				insertionFirst := target.initial == source.value
				f.addCommutator(interchange, alg, insertionFirst)
			}
		}
	}
}

func (f *finder) findFourMover(params searchParams, interchange move.Move, source slot) {
	var sliceMoves []move.Move
	for _, m := range params.allowedMoves {
		if m.Kind.IsSlice() && m.Count != move.Double {
			sliceMoves = append(sliceMoves, m)
		}
	}

	for _, sm := range sliceMoves {
		alg := move.NewAlg(sm, interchange, sm.Inverse())
		state := params.state.ApplyAlg(alg)

		for _, s := range params.slots {
			if s != source && state.At(s.current) == source.value {
				ins := move.NewAlg(sm)
				insertionFirst := s.initial != source.value
				f.addCommutator(interchange, ins, insertionFirst)
			}
		}
	}
}

func (f *finder) findSetupMoves(params searchParams) {
	f.logger.Debug().
		Int("depth", params.depth).
		Str("trail", move.NewAlg(f.currentMoves...).String()).
		Msg("entering setup-move recursion")

	for _, m := range params.allowedMoves {
		if n := len(f.currentMoves); n > 0 && f.currentMoves[n-1].Kind == m.Kind {
			continue
		}

		f.currentMoves = append(f.currentMoves, m)
		f.findInterchange(params.next(m))
		f.currentMoves = f.currentMoves[:len(f.currentMoves)-1]
	}
}

func (f *finder) addCommutator(interchange move.Move, ins move.Alg, insertionFirst bool) {
	var setup *move.Alg
	if len(f.currentMoves) > 0 {
		reduced := move.NewAlg(f.currentMoves...).Reduce()
		setup = &reduced
	}

	setupLen := 0
	if setup != nil {
		setupLen = setup.Len()
	}
	f.logger.Debug().
		Str("interchange", interchange.String()).
		Int("insertion_len", ins.Len()).
		Int("setup_len", setupLen).
		Msg("commutator found")

	f.results = append(f.results, Commutator{
		Setup:          setup,
		Interchange:    interchange,
		Insertion:      ins,
		InsertionFirst: insertionFirst,
	})
}

func initialState[T facelet.Target](cycle Cycle[T]) (facelet.Cube, error) {
	inv := cycle.Inverse()
	return facelet.Default().Cycle(inv.First(), inv.Second(), inv.Third())
}

func find[T facelet.Target](cycle Cycle[T], allowedKinds []move.Kind, maxDepth int, searchType SearchType, logger zerolog.Logger) []Commutator {
	state, err := initialState(cycle)
	if err != nil {
		return nil
	}
	logger.Debug().Str("cycle", cycle.String()).Msg("scrambled state constructed")

	var allowedMoves []move.Move
	for _, k := range allowedKinds {
		vs := k.ToMoves()
		allowedMoves = append(allowedMoves, vs[:]...)
	}

	f := &finder{searchType: searchType, maxDepth: maxDepth, logger: logger}
	params := newSearchParams(cycle, state, allowedMoves)
	return f.search(params)
}

// FindCornerCommutators searches, up to maxDepth setup moves using only
// allowedKinds, for commutators that perform the given corner 3-cycle.
func FindCornerCommutators(cycle Cycle[sticker.Corner], allowedKinds []move.Kind, maxDepth int) []Commutator {
	return find(cycle, allowedKinds, maxDepth, Corner, zerolog.Nop())
}

// FindEdgeCommutators searches, up to maxDepth setup moves using only
// allowedKinds, for commutators that perform the given edge 3-cycle.
func FindEdgeCommutators(cycle Cycle[sticker.Edge], allowedKinds []move.Kind, maxDepth int) []Commutator {
	return find(cycle, allowedKinds, maxDepth, Edge, zerolog.Nop())
}
