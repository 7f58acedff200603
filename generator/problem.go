package generator

import (
	"fmt"

	"github.com/jumperroute/router/geom"
	"github.com/jumperroute/router/hypergraph"
)

// ProblemOptions bounds CreateProblem's retry search for a layout hitting
// the requested crossing count.
type ProblemOptions struct {
	// MaxAttempts caps the number of candidate layouts tried before giving
	// up with ErrGenerationFailed.
	MaxAttempts int
	// StartConnections is the initial connection count to try; when zero,
	// CreateProblem starts from max(numCrossings, 1).
	StartConnections int
	// MaxConnections caps how far CreateProblem will grow the connection
	// count while under-crossing; zero means unbounded (bounded in
	// practice by the perimeter's own size).
	MaxConnections int
}

// DefaultProblemOptions returns a 200-attempt budget with no starting or
// growth cap override.
func DefaultProblemOptions() ProblemOptions {
	return ProblemOptions{MaxAttempts: 200}
}

type endpointPair struct {
	startIdx, endIdx int
}

// CreateProblem places connection endpoints on grid's outer perimeter,
// treating the perimeter ring as a cyclic sequence the way a single
// region's port list is treated for crossing detection (geom.ChordsCross
// over ring indices). It retries under a seeded LCG until the installed
// connection set's same-ring crossing count equals numCrossings exactly,
// growing the connection count when consistently under-crossing, and
// returns ErrGenerationFailed once opts.MaxAttempts is exhausted.
func CreateProblem(grid *GridResult, numCrossings int, seed int64, opts ProblemOptions) ([]hypergraph.Connection, error) {
	n := len(grid.PerimeterRegions)
	if n < 2 {
		return nil, fmt.Errorf("%w: perimeter has fewer than 2 regions", ErrGenerationFailed)
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultProblemOptions().MaxAttempts
	}

	connCount := opts.StartConnections
	if connCount <= 0 {
		connCount = maxInt(numCrossings, 1)
	}

	rng := NewLCG(seed)
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		pairs := drawEndpointPairs(rng, n, connCount)
		crossings := countCrossings(pairs, n)

		if crossings == numCrossings {
			return buildConnections(grid.PerimeterRegions, pairs), nil
		}
		if crossings < numCrossings && (opts.MaxConnections <= 0 || connCount < opts.MaxConnections) {
			connCount++
		}
	}

	return nil, fmt.Errorf("%w: target %d crossings not reached in %d attempts", ErrGenerationFailed, numCrossings, opts.MaxAttempts)
}

func drawEndpointPairs(rng *LCG, n, count int) []endpointPair {
	pairs := make([]endpointPair, count)
	for i := range pairs {
		start := rng.Intn(n)
		end := rng.Intn(n)
		for end == start {
			end = rng.Intn(n)
		}
		pairs[i] = endpointPair{startIdx: start, endIdx: end}
	}

	return pairs
}

func countCrossings(pairs []endpointPair, period int) int {
	p := float64(period)
	count := 0
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			a, b := float64(pairs[i].startIdx), float64(pairs[i].endIdx)
			c, d := float64(pairs[j].startIdx), float64(pairs[j].endIdx)
			if geom.ChordsCross(a, b, c, d, p) {
				count++
			}
		}
	}

	return count
}

func buildConnections(ring []hypergraph.RegionID, pairs []endpointPair) []hypergraph.Connection {
	conns := make([]hypergraph.Connection, len(pairs))
	for i, pr := range pairs {
		conns[i] = hypergraph.Connection{
			ID:          hypergraph.ConnectionID(i),
			NetworkID:   hypergraph.NetworkID(i + 1),
			StartRegion: ring[pr.startIdx],
			EndRegion:   ring[pr.endIdx],
		}
	}

	return conns
}
