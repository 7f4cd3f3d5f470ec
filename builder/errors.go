// SPDX-License-Identifier: MIT
// Package: hypart/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; context is attached with %w at call sites.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a node or edge count below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidEdgeSize indicates an edge size range that cannot be sampled.
var ErrInvalidEdgeSize = errors.New("builder: invalid hyperedge size")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the draft could not be turned into a hypergraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes an error with the constructor name.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{method}, args...)...)
}

// validateMin returns ErrTooFewNodes when got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, "%s=%d < min=%d: %w", name, got, min, ErrTooFewNodes)
	}
	return nil
}
