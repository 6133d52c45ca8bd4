package sampler

import (
	"errors"
	"io"
	"math/rand"

	"github.com/warpstreamlabs/linesample/internal/input"
)

// Bernoulli streams lines from in and emits each one independently with the
// given inclusion probability. Exactly one uniform draw in [0,1) is consumed
// per input line, so runs with the same seed and input are reproducible.
// Selected lines are emitted immediately in arrival order; nothing is
// buffered.
func Bernoulli(rnd *rand.Rand, fraction float64, in input.Reader, emit func(input.Line) error) (Stats, error) {
	var stats Stats
	for {
		line, err := in.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			return stats, err
		}
		stats.LinesRead++

		// A canonical [0,1) draw is always strictly below 1.0, so a
		// fraction of 1 includes every line.
		if rnd.Float64() < fraction {
			if err := emit(line); err != nil {
				return stats, err
			}
			stats.LinesEmitted++
		}
	}
}
