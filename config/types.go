package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration handling.
var (
	// ErrUnsupportedObjective indicates an objective other than cut or km1.
	ErrUnsupportedObjective = errors.New("config: unsupported partitioning objective")

	// ErrUnsupportedMode indicates an unknown partitioning mode.
	ErrUnsupportedMode = errors.New("config: unsupported partitioning mode")

	// ErrUnsupportedAlgorithm indicates an unknown refinement or initial partitioning algorithm.
	ErrUnsupportedAlgorithm = errors.New("config: unsupported algorithm")

	// ErrInvalidContext indicates a context that failed struct validation.
	ErrInvalidContext = errors.New("config: invalid context")
)

// Objective selects the quantity the partitioner minimizes.
type Objective string

const (
	// Cut counts the weight of hyperedges spanning more than one block.
	Cut Objective = "cut"
	// Km1 sums (λ(e) − 1)·w(e) over all hyperedges (connectivity minus one).
	Km1 Objective = "km1"
)

// Validate returns ErrUnsupportedObjective for unknown objectives.
func (o Objective) Validate() error {
	switch o {
	case Cut, Km1:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedObjective, string(o))
	}
}

// Mode selects between direct k-way partitioning and recursive bisection.
type Mode string

const (
	DirectKway         Mode = "direct_kway"
	RecursiveBisection Mode = "recursive_bisection"
)

// Validate returns ErrUnsupportedMode for unknown modes.
func (m Mode) Validate() error {
	switch m {
	case DirectKway, RecursiveBisection:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedMode, string(m))
	}
}

// RefinementAlgorithm selects the local search used during uncoarsening.
type RefinementAlgorithm string

const (
	// TwoWayFM is cut-based Fiduccia–Mattheyses on bipartitions.
	TwoWayFM RefinementAlgorithm = "twoway_fm"
	// LabelPropagation is a greedy k-way km1 local search.
	LabelPropagation RefinementAlgorithm = "label_propagation"
	// DoNothing keeps the projected partition.
	DoNothing RefinementAlgorithm = "do_nothing"
)

// Validate returns ErrUnsupportedAlgorithm for unknown refiners.
func (a RefinementAlgorithm) Validate() error {
	switch a {
	case TwoWayFM, LabelPropagation, DoNothing:
		return nil
	default:
		return fmt.Errorf("%w: refinement %q", ErrUnsupportedAlgorithm, string(a))
	}
}

// InitialAlgorithm selects the partitioner run on the coarsest hypergraph.
type InitialAlgorithm string

const (
	InitialRandom   InitialAlgorithm = "random"
	InitialBFS      InitialAlgorithm = "bfs"
	InitialSpectral InitialAlgorithm = "spectral"
)

// Validate returns ErrUnsupportedAlgorithm for unknown initial partitioners.
func (a InitialAlgorithm) Validate() error {
	switch a {
	case InitialRandom, InitialBFS, InitialSpectral:
		return nil
	default:
		return fmt.Errorf("%w: initial partitioning %q", ErrUnsupportedAlgorithm, string(a))
	}
}
