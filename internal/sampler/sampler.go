// Package sampler implements single-pass random line sampling in two modes:
// independent per-line inclusion at a fixed probability, and fixed-size
// uniform selection via reservoir sampling. Both preserve the original
// relative order of the input.
package sampler

import (
	"errors"
	"math/rand"
	"time"

	"github.com/warpstreamlabs/linesample/internal/input"
	"github.com/warpstreamlabs/linesample/internal/log"
	"github.com/warpstreamlabs/linesample/internal/output"
)

// Validation errors returned by Params.Validate.
var (
	ErrNoMode        = errors.New("a value for exactly one of fraction or number is required")
	ErrBothModes     = errors.New("only one of fraction or number may be given")
	ErrFractionRange = errors.New("fraction must be between 0.0 and 1.0")
	ErrNumberRange   = errors.New("number must be a positive integer")
)

// Params describes a sampling run. Exactly one of Fraction or Number must be
// set; Seed is optional and, when nil, seeding falls back to wall-clock time.
type Params struct {
	Fraction *float64
	Number   *int
	Seed     *int64
}

// Validate checks the parameter combination before any input is read. Checks
// are ordered so that mode arbitration failures are reported before range
// failures.
func (p Params) Validate() error {
	if p.Fraction == nil && p.Number == nil {
		return ErrNoMode
	}
	if p.Fraction != nil && p.Number != nil {
		return ErrBothModes
	}
	if p.Fraction != nil && (*p.Fraction < 0 || *p.Fraction > 1) {
		return ErrFractionRange
	}
	if p.Number != nil && *p.Number < 1 {
		return ErrNumberRange
	}
	return nil
}

// Stats summarises a completed sampling pass.
type Stats struct {
	LinesRead    int64
	LinesEmitted int64
}

// NewRand returns the pseudorandom source for a run, seeded from seed when
// given and from wall-clock time otherwise. The handle is threaded through
// both sampling strategies explicitly; no package keeps ambient RNG state.
func NewRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Run validates params, seeds the pseudorandom source, routes the input
// through the selected sampling strategy and writes the selected lines to
// out in their original arrival order.
func Run(params Params, in input.Reader, out *output.Writer, logger log.Modular) (Stats, error) {
	if err := params.Validate(); err != nil {
		return Stats{}, err
	}

	rnd := NewRand(params.Seed)

	var stats Stats
	var err error
	if params.Fraction != nil {
		logger.Debug("Sampling lines with inclusion probability %v", *params.Fraction)
		stats, err = Bernoulli(rnd, *params.Fraction, in, out.Write)
	} else {
		logger.Debug("Sampling up to %v lines via reservoir", *params.Number)
		var selected []input.Line
		selected, stats, err = Reservoir(rnd, *params.Number, in)
		if err == nil {
			for _, line := range selected {
				if err = out.Write(line); err != nil {
					break
				}
			}
		}
	}
	if err != nil {
		return stats, err
	}

	return stats, out.Flush()
}
