package hypergraph

import (
	"errors"

	"github.com/jumperroute/router/geom"
)

// Sentinel errors for the hypergraph package.
var (
	// ErrNilGraph indicates a nil *Graph was passed where one was required.
	ErrNilGraph = errors.New("hypergraph: graph is nil")

	// ErrRegionNotFound indicates a reference to a region id absent from the graph.
	ErrRegionNotFound = errors.New("hypergraph: region not found")

	// ErrPortNotFound indicates a reference to a port id absent from the graph.
	ErrPortNotFound = errors.New("hypergraph: port not found")

	// ErrDuplicateRegion indicates an AddRegion call reused an existing region id.
	ErrDuplicateRegion = errors.New("hypergraph: duplicate region id")

	// ErrDuplicatePort indicates an AddPort call reused an existing port id.
	ErrDuplicatePort = errors.New("hypergraph: duplicate port id")

	// ErrPortSameRegion indicates a port's two regions were identical.
	ErrPortSameRegion = errors.New("hypergraph: port's two regions must be distinct")

	// ErrSameStartEnd indicates a connection's start and end regions were identical.
	ErrSameStartEnd = errors.New("hypergraph: connection start and end regions must differ")

	// ErrMalformedGraph indicates a serialized graph referenced an id that does not exist.
	ErrMalformedGraph = errors.New("hypergraph: malformed graph: dangling reference")
)

// RegionID uniquely identifies a Region within a Graph.
type RegionID int

// PortID uniquely identifies a Port within a Graph.
type PortID int

// ConnectionID uniquely identifies a Connection.
type ConnectionID int

// NetworkID groups connections into electrical-equivalence classes; two
// connections with equal NetworkID never conflict with one another.
type NetworkID int

// Region is a polygonal area of the footprint through which signals may
// pass; a node of the routing hypergraph.
//
// Ports is held in construction order: expansion during search must
// iterate a region's ports in this order to keep the engine deterministic
// (spec §5).
type Region struct {
	ID     RegionID
	Ports  []PortID
	Bounds geom.Bounds
	Center geom.Point
	// AxisAligned selects the perimeter-t crossing rule (geom.PerimeterT)
	// over the generic cyclic-order rule when computing region crossings.
	AxisAligned bool

	// Assignments holds the region's current region-port-pair records.
	// Never contains two entries for the same (portA, portB) pair.
	Assignments []*Assignment
}

// Port is a boundary point shared between exactly two regions; the edge
// unit of the hypergraph. A port's two regions are always distinct.
type Port struct {
	ID       PortID
	Region1  RegionID
	Region2  RegionID
	Position geom.Point

	// Assignment is the port's single live assignment, or nil.
	Assignment *Assignment

	// RipCount counts how many times a route through this port has been
	// ripped up; never decreases.
	RipCount int

	// HeuristicTable maps destination region id to the precomputed hop
	// distance from this port (the minimum over its two adjacent
	// regions' BFS distances to that destination). Populated by the
	// heuristic package; nil until precomputation runs.
	HeuristicTable map[RegionID]int
}

// OtherRegion returns the region on the far side of p from "from".
// Panics if "from" is neither of p's two regions — callers only ever
// invoke this with a region known to be one of the port's endpoints.
func (p *Port) OtherRegion(from RegionID) RegionID {
	switch from {
	case p.Region1:
		return p.Region2
	case p.Region2:
		return p.Region1
	default:
		panic("hypergraph: region is not adjacent to port")
	}
}

// Connection is a required electrical link between two regions with a
// network identity; connections sharing NetworkID are treated as the same
// net and never conflict with one another.
type Connection struct {
	ID          ConnectionID
	NetworkID   NetworkID
	StartRegion RegionID
	EndRegion   RegionID
}

// SameNet reports whether c and other belong to the same electrical net.
func (c Connection) SameNet(other Connection) bool {
	return c.NetworkID == other.NetworkID
}
