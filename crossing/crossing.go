package crossing

import (
	"errors"
	"fmt"

	"github.com/jumperroute/router/geom"
	"github.com/jumperroute/router/hypergraph"
)

// ErrPortNotInRegion indicates a port id passed to Check does not belong
// to the region being checked.
var ErrPortNotInRegion = errors.New("crossing: port does not belong to region")

// NetworkLookup resolves a connection id to its network id; the engine
// passes a closure over its connection set.
type NetworkLookup func(hypergraph.ConnectionID) hypergraph.NetworkID

// Check counts how many of region's current assignments belonging to a
// network other than newNetwork interleave with the candidate pair (p, q)
// on region's boundary parameterization, and returns those assignment
// records (candidates for rip-up).
//
// Same-net assignments never count: a single net may overlap itself
// without penalty.
//
// Complexity: O(k) where k is the region's current assignment count.
func Check(
	g *hypergraph.Graph,
	regionID hypergraph.RegionID,
	p, q hypergraph.PortID,
	newNetwork hypergraph.NetworkID,
	networkOf NetworkLookup,
) (count int, offending []*hypergraph.Assignment, err error) {
	region, err := g.Region(regionID)
	if err != nil {
		return 0, nil, err
	}

	tP, tQ, period, err := perimeterPositions(g, region, p, q)
	if err != nil {
		return 0, nil, err
	}

	for _, a := range region.Assignments {
		if networkOf(a.Connection) == newNetwork {
			continue
		}

		tA, tB, _, err := perimeterPositions(g, region, a.PortA, a.PortB)
		if err != nil {
			return 0, nil, err
		}

		if geom.ChordsCross(tP, tQ, tA, tB, period) {
			count++
			offending = append(offending, a)
		}
	}

	return count, offending, nil
}

// perimeterPositions maps p and q onto region's circular boundary
// coordinate and returns the coordinate period.
func perimeterPositions(g *hypergraph.Graph, region *hypergraph.Region, p, q hypergraph.PortID) (tP, tQ, period float64, err error) {
	if region.AxisAligned {
		posP, err := portPosition(g, p)
		if err != nil {
			return 0, 0, 0, err
		}
		posQ, err := portPosition(g, q)
		if err != nil {
			return 0, 0, 0, err
		}
		period = region.Bounds.Perimeter()

		return region.Bounds.PerimeterT(posP), region.Bounds.PerimeterT(posQ), period, nil
	}

	period = float64(len(region.Ports))
	idxP := indexOf(region.Ports, p)
	if idxP < 0 {
		return 0, 0, 0, fmt.Errorf("%w: port %d in region %d", ErrPortNotInRegion, p, region.ID)
	}
	idxQ := indexOf(region.Ports, q)
	if idxQ < 0 {
		return 0, 0, 0, fmt.Errorf("%w: port %d in region %d", ErrPortNotInRegion, q, region.ID)
	}

	return float64(idxP), float64(idxQ), period, nil
}

func indexOf(ports []hypergraph.PortID, id hypergraph.PortID) int {
	for i, pid := range ports {
		if pid == id {
			return i
		}
	}

	return -1
}

func portPosition(g *hypergraph.Graph, id hypergraph.PortID) (geom.Point, error) {
	p, err := g.Port(id)
	if err != nil {
		return geom.Point{}, err
	}

	return p.Position, nil
}
