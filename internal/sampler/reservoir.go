package sampler

import (
	"cmp"
	"errors"
	"io"
	"math/rand"
	"slices"

	"github.com/warpstreamlabs/linesample/internal/input"
)

// Reservoir consumes the entire input and returns a uniformly random subset
// of at most k lines, in their original arrival order. Memory is bounded at
// k lines regardless of stream length.
//
// The first k lines fill the reservoir; each subsequent line n draws a
// uniform integer j in [0,n) and replaces reservoir entry j when j < k.
// After n lines every line has survival probability k/n and every k-subset
// is equally likely. Replacement scrambles the interior order of the buffer,
// so each entry keeps its arrival index and the reservoir is sorted by that
// index before it is returned.
func Reservoir(rnd *rand.Rand, k int, in input.Reader) ([]input.Line, Stats, error) {
	var stats Stats
	reservoir := make([]input.Line, 0, k)

	for {
		line, err := in.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, stats, err
		}
		stats.LinesRead++

		if len(reservoir) < k {
			reservoir = append(reservoir, line)
			continue
		}
		if j := rnd.Intn(int(stats.LinesRead)); j < k {
			reservoir[j] = line
		}
	}

	slices.SortFunc(reservoir, func(a, b input.Line) int {
		return cmp.Compare(a.Index, b.Index)
	})
	stats.LinesEmitted = int64(len(reservoir))
	return reservoir, stats, nil
}
