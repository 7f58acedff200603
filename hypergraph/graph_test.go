package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumperroute/router/geom"
	"github.com/jumperroute/router/hypergraph"
)

// buildSquare builds a 1x1 square of four outer regions (N, E, S, W) and a
// center region, connected by four ports (one per outer region into the
// center, matching a minimal jumper-X4 footprint).
func buildSquare(t *testing.T) *hypergraph.Graph {
	t.Helper()
	g := hypergraph.NewGraph()

	const (
		north hypergraph.RegionID = iota
		east
		south
		west
		center
	)
	require.NoError(t, g.AddRegion(north, geom.Bounds{MinX: 0, MinY: -1, MaxX: 10, MaxY: 0}, true))
	require.NoError(t, g.AddRegion(east, geom.Bounds{MinX: 10, MinY: 0, MaxX: 11, MaxY: 10}, true))
	require.NoError(t, g.AddRegion(south, geom.Bounds{MinX: 0, MinY: 10, MaxX: 10, MaxY: 11}, true))
	require.NoError(t, g.AddRegion(west, geom.Bounds{MinX: -1, MinY: 0, MaxX: 0, MaxY: 10}, true))
	require.NoError(t, g.AddRegion(center, geom.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, true))

	require.NoError(t, g.AddPort(0, north, center, geom.Point{X: 5, Y: 0}))
	require.NoError(t, g.AddPort(1, east, center, geom.Point{X: 10, Y: 5}))
	require.NoError(t, g.AddPort(2, south, center, geom.Point{X: 5, Y: 10}))
	require.NoError(t, g.AddPort(3, west, center, geom.Point{X: 0, Y: 5}))

	return g
}

func TestAddRegionDuplicate(t *testing.T) {
	t.Parallel()

	g := hypergraph.NewGraph()
	require.NoError(t, g.AddRegion(1, geom.Bounds{}, true))
	err := g.AddRegion(1, geom.Bounds{}, true)
	assert.ErrorIs(t, err, hypergraph.ErrDuplicateRegion)
}

func TestAddPortValidation(t *testing.T) {
	t.Parallel()

	g := hypergraph.NewGraph()
	require.NoError(t, g.AddRegion(1, geom.Bounds{}, true))

	err := g.AddPort(0, 1, 1, geom.Point{})
	assert.ErrorIs(t, err, hypergraph.ErrPortSameRegion)

	err = g.AddPort(0, 1, 2, geom.Point{})
	assert.ErrorIs(t, err, hypergraph.ErrRegionNotFound)
}

func TestGraphConstructionOrderPreserved(t *testing.T) {
	t.Parallel()

	g := buildSquare(t)
	center, err := g.Region(4)
	require.NoError(t, err)
	assert.Equal(t, []hypergraph.PortID{0, 1, 2, 3}, center.Ports)
}

func TestInstallAndRemoveAssignment(t *testing.T) {
	t.Parallel()

	g := buildSquare(t)
	a := &hypergraph.Assignment{Region: 4, PortA: 0, PortB: 1, Connection: 7}
	require.NoError(t, g.InstallAssignment(a))

	p0, _ := g.Port(0)
	p1, _ := g.Port(1)
	assert.Same(t, a, p0.Assignment)
	assert.Same(t, a, p1.Assignment)

	region, _ := g.Region(4)
	require.Len(t, region.Assignments, 1)

	require.NoError(t, g.RemoveAssignment(a))
	p0, _ = g.Port(0)
	p1, _ = g.Port(1)
	assert.Nil(t, p0.Assignment)
	assert.Nil(t, p1.Assignment)
	assert.Equal(t, 1, p0.RipCount)
	assert.Equal(t, 1, p1.RipCount)

	region, _ = g.Region(4)
	assert.Empty(t, region.Assignments)
}

func TestClonePreservesStateAndIsIndependent(t *testing.T) {
	t.Parallel()

	g := buildSquare(t)
	a := &hypergraph.Assignment{Region: 4, PortA: 0, PortB: 1, Connection: 7}
	require.NoError(t, g.InstallAssignment(a))

	clone := g.Clone()
	require.NoError(t, g.RemoveAssignment(a))

	p0, _ := g.Port(0)
	assert.Nil(t, p0.Assignment)

	clonedP0, _ := clone.Port(0)
	require.NotNil(t, clonedP0.Assignment)
	assert.Equal(t, a.Connection, clonedP0.Assignment.Connection)
}

func TestOtherRegion(t *testing.T) {
	t.Parallel()

	g := buildSquare(t)
	p, err := g.Port(0)
	require.NoError(t, err)
	assert.Equal(t, hypergraph.RegionID(4), p.OtherRegion(0))
	assert.Equal(t, hypergraph.RegionID(0), p.OtherRegion(4))
}
