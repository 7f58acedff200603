package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumperroute/router/geom"
	"github.com/jumperroute/router/heuristic"
	"github.com/jumperroute/router/hypergraph"
)

// buildChain builds regions 0-1-2-3 in a line, each pair joined by one port.
func buildChain(t *testing.T) *hypergraph.Graph {
	t.Helper()
	g := hypergraph.NewGraph()
	for i := hypergraph.RegionID(0); i < 4; i++ {
		require.NoError(t, g.AddRegion(i, geom.Bounds{}, true))
	}
	require.NoError(t, g.AddPort(0, 0, 1, geom.Point{}))
	require.NoError(t, g.AddPort(1, 1, 2, geom.Point{}))
	require.NoError(t, g.AddPort(2, 2, 3, geom.Point{}))

	return g
}

func TestPrecomputeHopDistances(t *testing.T) {
	t.Parallel()

	g := buildChain(t)
	require.NoError(t, heuristic.Precompute(g, []hypergraph.RegionID{3}))

	p0, _ := g.Port(0) // region 0|1, region 1 is 2 hops from dest 3, region 0 is 3 hops.
	dist, ok := heuristic.Lookup(p0, 3)
	require.True(t, ok)
	assert.Equal(t, 2, dist) // min(3, 2) = 2

	p2, _ := g.Port(2) // region 2|3, region 3 is the destination itself: 0 hops.
	dist, ok = heuristic.Lookup(p2, 3)
	require.True(t, ok)
	assert.Equal(t, 0, dist)
}

func TestPrecomputeUnreachableRegion(t *testing.T) {
	t.Parallel()

	g := buildChain(t)
	require.NoError(t, g.AddRegion(9, geom.Bounds{}, true)) // isolated, no ports
	require.NoError(t, heuristic.Precompute(g, []hypergraph.RegionID{9}))

	p0, _ := g.Port(0)
	dist, ok := heuristic.Lookup(p0, 9)
	require.True(t, ok)
	assert.Equal(t, heuristic.Unreachable, dist)
}

func TestLookupBeforePrecompute(t *testing.T) {
	t.Parallel()

	g := buildChain(t)
	p0, _ := g.Port(0)
	_, ok := heuristic.Lookup(p0, 3)
	assert.False(t, ok)
}

func TestPrecomputeUnknownDestination(t *testing.T) {
	t.Parallel()

	g := buildChain(t)
	err := heuristic.Precompute(g, []hypergraph.RegionID{42})
	assert.ErrorIs(t, err, hypergraph.ErrRegionNotFound)
}
