package cegar

import (
	"math"

	"github.com/pkg/errors"
)

// Options configures a CEGAR run (spec §6).
type Options struct {
	// MaxRefinements caps the number of refinement iterations. math.MaxInt
	// means "infinity".
	MaxRefinements int
	// MaxPDBSize caps the number of abstract states a single PDB may have.
	// Not enforced on the seed patterns (spec §4.4, §9).
	MaxPDBSize int
	// MaxCollectionSize caps the sum of pdb.Size() across all live
	// projections. Not enforced on the seed patterns. math.MaxInt means
	// "infinity".
	MaxCollectionSize int
	// WildcardPlans selects wildcard over regular plans.
	WildcardPlans bool
	// MaxTime is the wall-clock budget in seconds. math.Inf(1) means
	// "infinity".
	MaxTime float64
	// Verbosity is the requested logging level. Run does not read it:
	// what a run logs is decided by the verbosity of the Logger passed to
	// Run (a nil Logger logs nothing).
	Verbosity Verbosity
}

// DefaultOptions returns the option defaults of spec §6.
func DefaultOptions() Options {
	return Options{
		MaxRefinements:    math.MaxInt,
		MaxPDBSize:        1_000_000,
		MaxCollectionSize: math.MaxInt,
		WildcardPlans:     true,
		MaxTime:           math.Inf(1),
		Verbosity:         Normal,
	}
}

// Validate checks every option against the bounds of spec §6.
func (o Options) Validate() error {
	if o.MaxRefinements < 0 {
		return errors.New("max_refinements must be >= 0")
	}
	if o.MaxPDBSize < 1 {
		return errors.New("max_pdb_size must be >= 1")
	}
	if o.MaxCollectionSize < 1 {
		return errors.New("max_collection_size must be >= 1")
	}
	if o.MaxTime < 0.0 {
		return errors.New("max_time must be >= 0.0")
	}
	return nil
}
