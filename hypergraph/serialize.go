// File: serialize.go
// Role: live ⇄ serialized conversion for Graph and Connection.
// Determinism: ToSerialized walks regions/ports in construction order, so
// serialize → deserialize → serialize reproduces byte-identical JSON.
package hypergraph

import (
	"fmt"

	"github.com/jumperroute/router/geom"
)

// PortDescriptor is the "d" field of a serialized port: its geometric
// position. Kept as a typed struct (not an untyped map) per the project's
// convention of expressing every tunable/extra as a named field.
type PortDescriptor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegionDescriptor is the "d" field of a serialized region: its bounds and
// the axis-aligned flag that selects the perimeter-t crossing rule.
type RegionDescriptor struct {
	MinX        float64 `json:"minX"`
	MinY        float64 `json:"minY"`
	MaxX        float64 `json:"maxX"`
	MaxY        float64 `json:"maxY"`
	AxisAligned bool    `json:"axisAligned"`
}

// SerializedPort is the id-keyed wire form of a Port.
type SerializedPort struct {
	PortID    PortID         `json:"portId"`
	Region1ID RegionID       `json:"region1Id"`
	Region2ID RegionID       `json:"region2Id"`
	D         PortDescriptor `json:"d"`
}

// SerializedRegion is the id-keyed wire form of a Region. PointIDs is the
// region's ports in construction order — the ordered cyclic sequence used
// by the crossing predicate for non-axis-aligned regions.
type SerializedRegion struct {
	RegionID RegionID         `json:"regionId"`
	PointIDs []PortID         `json:"pointIds"`
	D        RegionDescriptor `json:"d"`
}

// SerializedGraph is the total id-keyed wire form of a Graph.
type SerializedGraph struct {
	Ports   []SerializedPort   `json:"ports"`
	Regions []SerializedRegion `json:"regions"`
}

// SerializedConnection is the id-keyed wire form of a Connection.
type SerializedConnection struct {
	ConnectionID               ConnectionID `json:"connectionId"`
	StartRegionID              RegionID     `json:"startRegionId"`
	EndRegionID                RegionID     `json:"endRegionId"`
	MutuallyConnectedNetworkID *NetworkID   `json:"mutuallyConnectedNetworkId,omitempty"`
}

// ToSerialized converts g into its id-keyed wire form, in construction
// order, so that ToSerialized(FromSerialized(ToSerialized(g))) is
// structurally identical to ToSerialized(g).
//
// Complexity: O(|regions| + |ports|).
func ToSerialized(g *Graph) *SerializedGraph {
	out := &SerializedGraph{}

	for _, rid := range g.Regions() {
		r, _ := g.Region(rid)
		out.Regions = append(out.Regions, SerializedRegion{
			RegionID: r.ID,
			PointIDs: append([]PortID(nil), r.Ports...),
			D: RegionDescriptor{
				MinX:        r.Bounds.MinX,
				MinY:        r.Bounds.MinY,
				MaxX:        r.Bounds.MaxX,
				MaxY:        r.Bounds.MaxY,
				AxisAligned: r.AxisAligned,
			},
		})
	}

	for _, pid := range g.Ports() {
		p, _ := g.Port(pid)
		out.Ports = append(out.Ports, SerializedPort{
			PortID:    p.ID,
			Region1ID: p.Region1,
			Region2ID: p.Region2,
			D:         PortDescriptor{X: p.Position.X, Y: p.Position.Y},
		})
	}

	return out
}

// FromSerialized builds a live Graph from its wire form. Returns
// ErrMalformedGraph if any port references a region id absent from
// sg.Regions.
//
// Complexity: O(|regions| + |ports|).
func FromSerialized(sg *SerializedGraph) (*Graph, error) {
	g := NewGraph()

	for _, sr := range sg.Regions {
		bounds := geom.Bounds{MinX: sr.D.MinX, MinY: sr.D.MinY, MaxX: sr.D.MaxX, MaxY: sr.D.MaxY}
		if err := g.AddRegion(sr.RegionID, bounds, sr.D.AxisAligned); err != nil {
			return nil, fmt.Errorf("hypergraph: deserialize region %d: %w", sr.RegionID, err)
		}
	}

	for _, sp := range sg.Ports {
		if !g.HasRegion(sp.Region1ID) {
			return nil, fmt.Errorf("%w: port %d references region %d", ErrMalformedGraph, sp.PortID, sp.Region1ID)
		}
		if !g.HasRegion(sp.Region2ID) {
			return nil, fmt.Errorf("%w: port %d references region %d", ErrMalformedGraph, sp.PortID, sp.Region2ID)
		}
		pos := geom.Point{X: sp.D.X, Y: sp.D.Y}
		if err := g.AddPort(sp.PortID, sp.Region1ID, sp.Region2ID, pos); err != nil {
			return nil, fmt.Errorf("hypergraph: deserialize port %d: %w", sp.PortID, err)
		}
	}

	// Regions' Ports slices were rebuilt by AddPort in the order ports
	// were added, which is sg.Ports order, not necessarily sr.PointIDs
	// order. Re-impose the serialized cyclic order explicitly so that a
	// round trip is an identity on region topology.
	for _, sr := range sg.Regions {
		r, err := g.Region(sr.RegionID)
		if err != nil {
			return nil, fmt.Errorf("%w: region %d", ErrMalformedGraph, sr.RegionID)
		}
		r.Ports = append([]PortID(nil), sr.PointIDs...)
	}

	return g, nil
}

// ToSerializedConnection converts a Connection to its wire form.
// NetworkID 0 is treated as "no explicit network" and omitted.
func ToSerializedConnection(c Connection) SerializedConnection {
	sc := SerializedConnection{
		ConnectionID:  c.ID,
		StartRegionID: c.StartRegion,
		EndRegionID:   c.EndRegion,
	}
	if c.NetworkID != 0 {
		nid := c.NetworkID
		sc.MutuallyConnectedNetworkID = &nid
	}

	return sc
}

// FromSerializedConnection builds a Connection from its wire form,
// validating that both endpoint regions exist in g.
func FromSerializedConnection(g *Graph, sc SerializedConnection) (Connection, error) {
	if !g.HasRegion(sc.StartRegionID) {
		return Connection{}, fmt.Errorf("%w: connection %d references region %d", ErrMalformedGraph, sc.ConnectionID, sc.StartRegionID)
	}
	if !g.HasRegion(sc.EndRegionID) {
		return Connection{}, fmt.Errorf("%w: connection %d references region %d", ErrMalformedGraph, sc.ConnectionID, sc.EndRegionID)
	}
	if sc.StartRegionID == sc.EndRegionID {
		return Connection{}, fmt.Errorf("%w: connection %d", ErrSameStartEnd, sc.ConnectionID)
	}

	c := Connection{
		ID:          sc.ConnectionID,
		StartRegion: sc.StartRegionID,
		EndRegion:   sc.EndRegionID,
	}
	if sc.MutuallyConnectedNetworkID != nil {
		c.NetworkID = *sc.MutuallyConnectedNetworkID
	} else {
		c.NetworkID = NetworkID(sc.ConnectionID)
	}

	return c, nil
}
