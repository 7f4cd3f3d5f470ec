package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Context is the read-only configuration of one partitioning run.
//
// Fields tagged "derived" are filled by Setup from the input hypergraph and
// are not meant to be configured directly.
type Context struct {
	Partition           PartitionParameters           `mapstructure:"partition" yaml:"partition"`
	Coarsening          CoarseningParameters          `mapstructure:"coarsening" yaml:"coarsening"`
	InitialPartitioning InitialPartitioningParameters `mapstructure:"initial_partitioning" yaml:"initial_partitioning"`
	LocalSearch         LocalSearchParameters         `mapstructure:"local_search" yaml:"local_search"`
	Logging             LoggingParameters             `mapstructure:"logging" yaml:"logging"`
}

// PartitionParameters configures the overall partitioning goal.
type PartitionParameters struct {
	K         int       `mapstructure:"k" yaml:"k" validate:"gte=2"`
	Epsilon   float64   `mapstructure:"epsilon" yaml:"epsilon" validate:"gte=0,lte=1"`
	Objective Objective `mapstructure:"objective" yaml:"objective"`
	Mode      Mode      `mapstructure:"mode" yaml:"mode"`
	Seed      int64     `mapstructure:"seed" yaml:"seed"`

	TotalGraphWeight int64 `mapstructure:"-" yaml:"total_graph_weight"` // derived
	MaxPartWeight    int64 `mapstructure:"-" yaml:"max_part_weight"`    // derived

	// MaxPartWeights overrides MaxPartWeight per block when the blocks are
	// meant to have different sizes (unequal bisections). Nil means uniform.
	MaxPartWeights []int64 `mapstructure:"-" yaml:"max_part_weights,omitempty"`
}

// BlockWeightBound returns the weight bound of block p. 0 means the bound
// was never set up.
func (p *PartitionParameters) BlockWeightBound(block int) int64 {
	if block < len(p.MaxPartWeights) {
		return p.MaxPartWeights[block]
	}
	return p.MaxPartWeight
}

// CoarseningParameters configures the contraction phase.
type CoarseningParameters struct {
	ContractionLimitMultiplier int     `mapstructure:"contraction_limit_multiplier" yaml:"contraction_limit_multiplier" validate:"gte=1"`
	MaxAllowedWeightMultiplier float64 `mapstructure:"max_allowed_weight_multiplier" yaml:"max_allowed_weight_multiplier" validate:"gt=0"`
	MaxEdgeSize                int     `mapstructure:"max_edge_size" yaml:"max_edge_size" validate:"gte=0"`

	ContractionLimit     int   `mapstructure:"-" yaml:"contraction_limit"`        // derived
	MaxAllowedNodeWeight int64 `mapstructure:"-" yaml:"max_allowed_node_weight"` // derived
}

// InitialPartitioningParameters configures the partitioner run on the coarsest hypergraph.
type InitialPartitioningParameters struct {
	Algorithm InitialAlgorithm `mapstructure:"algorithm" yaml:"algorithm"`
	NRuns     int              `mapstructure:"nruns" yaml:"nruns" validate:"gte=1"`
}

// LocalSearchParameters configures refinement.
type LocalSearchParameters struct {
	Algorithm         RefinementAlgorithm `mapstructure:"algorithm" yaml:"algorithm"`
	MaxIterations     int                 `mapstructure:"max_iterations" yaml:"max_iterations" validate:"gte=1"`
	MaxFruitlessMoves int                 `mapstructure:"max_fruitless_moves" yaml:"max_fruitless_moves" validate:"gte=1"`
}

// LoggingParameters configures the zerolog logger built by Context.Logger.
type LoggingParameters struct {
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=trace debug info warn error disabled"`
}

// Default returns the default context: bipartition, 3% imbalance, km1,
// direct k-way, label propagation, 20 initial runs.
func Default() Context {
	return Context{
		Partition: PartitionParameters{
			K:         2,
			Epsilon:   0.03,
			Objective: Km1,
			Mode:      DirectKway,
			Seed:      1,
		},
		Coarsening: CoarseningParameters{
			ContractionLimitMultiplier: 160,
			MaxAllowedWeightMultiplier: 1.5,
		},
		InitialPartitioning: InitialPartitioningParameters{
			Algorithm: InitialBFS,
			NRuns:     20,
		},
		LocalSearch: LocalSearchParameters{
			Algorithm:         LabelPropagation,
			MaxIterations:     10,
			MaxFruitlessMoves: 50,
		},
		Logging: LoggingParameters{Level: "info"},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks numeric ranges via struct tags and every enumerated field.
// Enum failures keep their own sentinel (e.g. ErrUnsupportedObjective).
func (c *Context) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalidContext, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidContext, err)
	}
	for _, check := range []func() error{
		c.Partition.Objective.Validate,
		c.Partition.Mode.Validate,
		c.LocalSearch.Algorithm.Validate,
		c.InitialPartitioning.Algorithm.Validate,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// Setup fills the derived fields for a hypergraph of the given total node
// weight and heaviest node.
//
//	MaxPartWeight        = ⌈(1+ε)·⌈W/k⌉⌉
//	ContractionLimit     = multiplier·k
//	MaxAllowedNodeWeight = max(⌈m·W/limit⌉, heaviest)
func (c *Context) Setup(totalWeight, heaviest int64) {
	k := int64(c.Partition.K)
	c.Partition.TotalGraphWeight = totalWeight
	perfect := (totalWeight + k - 1) / k
	c.Partition.MaxPartWeight = int64(math.Ceil((1 + c.Partition.Epsilon) * float64(perfect)))

	c.Coarsening.ContractionLimit = c.Coarsening.ContractionLimitMultiplier * c.Partition.K
	bound := int64(math.Ceil(c.Coarsening.MaxAllowedWeightMultiplier *
		float64(totalWeight) / float64(c.Coarsening.ContractionLimit)))
	if bound < heaviest {
		bound = heaviest
	}
	if bound < 1 {
		bound = 1
	}
	c.Coarsening.MaxAllowedNodeWeight = bound
}
