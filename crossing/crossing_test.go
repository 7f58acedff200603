package crossing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumperroute/router/crossing"
	"github.com/jumperroute/router/geom"
	"github.com/jumperroute/router/hypergraph"
)

// buildUnderjumper builds a single axis-aligned region with four ports on
// its top and right edges, the minimal shape needed to exercise
// interleaving vs. nested chords.
func buildUnderjumper(t *testing.T) (*hypergraph.Graph, hypergraph.RegionID) {
	t.Helper()
	g := hypergraph.NewGraph()
	const region hypergraph.RegionID = 0
	require.NoError(t, g.AddRegion(region, geom.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, true))
	require.NoError(t, g.AddRegion(1, geom.Bounds{}, true))

	// Ports positioned at t=0 (top-left), t=5 (top-mid), t=10 (top-right),
	// t=15 (right-mid): all distinct perimeter-t values on a 40-length loop.
	require.NoError(t, g.AddPort(0, region, 1, geom.Point{X: 0, Y: 0}))
	require.NoError(t, g.AddPort(1, region, 1, geom.Point{X: 5, Y: 0}))
	require.NoError(t, g.AddPort(2, region, 1, geom.Point{X: 10, Y: 0}))
	require.NoError(t, g.AddPort(3, region, 1, geom.Point{X: 10, Y: 5}))

	return g, region
}

func netOf(m map[hypergraph.ConnectionID]hypergraph.NetworkID) crossing.NetworkLookup {
	return func(c hypergraph.ConnectionID) hypergraph.NetworkID { return m[c] }
}

func TestCheckDetectsInterleavingDifferentNet(t *testing.T) {
	t.Parallel()

	g, region := buildUnderjumper(t)
	// Existing assignment (port0, port2): chord spanning t=0..10.
	existing := &hypergraph.Assignment{Region: region, PortA: 0, PortB: 2, Connection: 1}
	require.NoError(t, g.InstallAssignment(existing))

	nets := map[hypergraph.ConnectionID]hypergraph.NetworkID{1: 100, 2: 200}
	// Candidate (port1, port3): t=5 and t=15 — port1 is inside (0,10), port3 is not: interleaves.
	count, offending, err := crossing.Check(g, region, 1, 3, 200, netOf(nets))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, offending, 1)
	assert.Same(t, existing, offending[0])
}

func TestCheckExcludesSameNet(t *testing.T) {
	t.Parallel()

	g, region := buildUnderjumper(t)
	existing := &hypergraph.Assignment{Region: region, PortA: 0, PortB: 2, Connection: 1}
	require.NoError(t, g.InstallAssignment(existing))

	nets := map[hypergraph.ConnectionID]hypergraph.NetworkID{1: 100, 2: 100}
	count, offending, err := crossing.Check(g, region, 1, 3, 100, netOf(nets))
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, offending)
}

func TestCheckNonInterleavingNested(t *testing.T) {
	t.Parallel()

	g, region := buildUnderjumper(t)
	// Chord (port0, port3): t=0..15.
	existing := &hypergraph.Assignment{Region: region, PortA: 0, PortB: 3, Connection: 1}
	require.NoError(t, g.InstallAssignment(existing))

	nets := map[hypergraph.ConnectionID]hypergraph.NetworkID{1: 100, 2: 200}
	// Candidate (port1, port2): t=5..10, fully inside (0,15): nested, no cross.
	count, _, err := crossing.Check(g, region, 1, 2, 200, netOf(nets))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCheckPortNotInRegion(t *testing.T) {
	t.Parallel()

	g, region := buildUnderjumper(t)
	_, _, err := crossing.Check(g, region, 0, 99, 1, netOf(nil))
	require.Error(t, err)
}
