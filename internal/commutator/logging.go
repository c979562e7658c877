package commutator

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/luckasRanarison/three-style/internal/move"
	"github.com/luckasRanarison/three-style/internal/sticker"
)

// WithCornerLogging runs FindCornerCommutators while emitting Debug-level
// trace events around the search; logger may be zerolog.Nop(), in which
// case logging costs nothing.
func WithCornerLogging(logger zerolog.Logger, cycle Cycle[sticker.Corner], allowedKinds []move.Kind, maxDepth int) []Commutator {
	start := time.Now()
	logger.Debug().
		Str("cycle", cycle.String()).
		Int("depth", maxDepth).
		Int("generators", len(allowedKinds)).
		Msg("corner commutator search started")

	results := find(cycle, allowedKinds, maxDepth, Corner, logger)

	logger.Debug().
		Int("results", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("corner commutator search finished")

	return results
}

// WithEdgeLogging is the edge-search counterpart of WithCornerLogging.
func WithEdgeLogging(logger zerolog.Logger, cycle Cycle[sticker.Edge], allowedKinds []move.Kind, maxDepth int) []Commutator {
	start := time.Now()
	logger.Debug().
		Str("cycle", cycle.String()).
		Int("depth", maxDepth).
		Int("generators", len(allowedKinds)).
		Msg("edge commutator search started")

	results := find(cycle, allowedKinds, maxDepth, Edge, logger)

	logger.Debug().
		Int("results", len(results)).
		Dur("elapsed", time.Since(start)).
		Msg("edge commutator search finished")

	return results
}
