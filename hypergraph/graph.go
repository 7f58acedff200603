// File: graph.go
// Role: the Graph arena — owns regions and ports, exposes the mutation
// surface the router uses to install and rip routes.
// Concurrency: muRegions/muPorts guard their respective maps and the
// order slices; mirrors core.Graph's muVert/muEdgeAdj split. The engine
// itself drives a single solve synchronously (no internal goroutines), but
// Clone lets a caller hand independent copies to concurrent solves.
package hypergraph

import (
	"fmt"
	"sync"

	"github.com/jumperroute/router/geom"
)

// Graph owns all Regions and Ports of a footprint. Regions and ports are
// created once at construction and never mutated structurally afterward;
// only Port.Assignment / Port.RipCount and Region.Assignments change
// during a solve.
type Graph struct {
	muRegions sync.RWMutex
	muPorts   sync.RWMutex

	regions     map[RegionID]*Region
	ports       map[PortID]*Port
	regionOrder []RegionID
	portOrder   []PortID
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		regions: make(map[RegionID]*Region),
		ports:   make(map[PortID]*Port),
	}
}

// AddRegion creates a region with the given id, bounds, and axis-aligned
// flag. Returns ErrDuplicateRegion if id is already present.
//
// Complexity: O(1).
func (g *Graph) AddRegion(id RegionID, bounds geom.Bounds, axisAligned bool) error {
	g.muRegions.Lock()
	defer g.muRegions.Unlock()

	if _, exists := g.regions[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateRegion, id)
	}

	g.regions[id] = &Region{
		ID:          id,
		Bounds:      bounds,
		Center:      bounds.Center(),
		AxisAligned: axisAligned,
	}
	g.regionOrder = append(g.regionOrder, id)

	return nil
}

// AddPort creates a port straddling r1 and r2 at the given position.
// Returns ErrPortSameRegion if r1 == r2, ErrRegionNotFound if either region
// is absent, or ErrDuplicatePort if id is already present. The port is
// appended to both regions' Ports lists in call order, which is the
// iteration order the search engine must use for deterministic expansion.
//
// Complexity: O(1).
func (g *Graph) AddPort(id PortID, r1, r2 RegionID, pos geom.Point) error {
	if r1 == r2 {
		return fmt.Errorf("%w: region %d", ErrPortSameRegion, r1)
	}

	g.muRegions.Lock()
	defer g.muRegions.Unlock()
	g.muPorts.Lock()
	defer g.muPorts.Unlock()

	if _, exists := g.ports[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicatePort, id)
	}
	reg1, ok := g.regions[r1]
	if !ok {
		return fmt.Errorf("%w: %d", ErrRegionNotFound, r1)
	}
	reg2, ok := g.regions[r2]
	if !ok {
		return fmt.Errorf("%w: %d", ErrRegionNotFound, r2)
	}

	g.ports[id] = &Port{ID: id, Region1: r1, Region2: r2, Position: pos}
	g.portOrder = append(g.portOrder, id)
	reg1.Ports = append(reg1.Ports, id)
	reg2.Ports = append(reg2.Ports, id)

	return nil
}

// Region returns the region with the given id.
func (g *Graph) Region(id RegionID) (*Region, error) {
	g.muRegions.RLock()
	defer g.muRegions.RUnlock()

	r, ok := g.regions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRegionNotFound, id)
	}

	return r, nil
}

// Port returns the port with the given id.
func (g *Graph) Port(id PortID) (*Port, error) {
	g.muPorts.RLock()
	defer g.muPorts.RUnlock()

	p, ok := g.ports[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPortNotFound, id)
	}

	return p, nil
}

// HasRegion reports whether id names a region in the graph.
func (g *Graph) HasRegion(id RegionID) bool {
	g.muRegions.RLock()
	defer g.muRegions.RUnlock()
	_, ok := g.regions[id]

	return ok
}

// HasPort reports whether id names a port in the graph.
func (g *Graph) HasPort(id PortID) bool {
	g.muPorts.RLock()
	defer g.muPorts.RUnlock()
	_, ok := g.ports[id]

	return ok
}

// Regions returns region ids in construction order.
func (g *Graph) Regions() []RegionID {
	g.muRegions.RLock()
	defer g.muRegions.RUnlock()
	out := make([]RegionID, len(g.regionOrder))
	copy(out, g.regionOrder)

	return out
}

// Ports returns port ids in construction order.
func (g *Graph) Ports() []PortID {
	g.muPorts.RLock()
	defer g.muPorts.RUnlock()
	out := make([]PortID, len(g.portOrder))
	copy(out, g.portOrder)

	return out
}

// InstallAssignment records a as the live assignment of both its ports and
// appends it to its region's assignment list. Any assignment either port
// already carries is overwritten, not checked: the engine's finalize step
// rips different-net conflicts first, and consecutive segments of one
// route share a port, which then points at the later segment.
//
// Complexity: O(1).
func (g *Graph) InstallAssignment(a *Assignment) error {
	g.muPorts.Lock()
	defer g.muPorts.Unlock()
	g.muRegions.Lock()
	defer g.muRegions.Unlock()

	pa, ok := g.ports[a.PortA]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPortNotFound, a.PortA)
	}
	pb, ok := g.ports[a.PortB]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPortNotFound, a.PortB)
	}
	region, ok := g.regions[a.Region]
	if !ok {
		return fmt.Errorf("%w: %d", ErrRegionNotFound, a.Region)
	}

	pa.Assignment = a
	pb.Assignment = a
	region.Assignments = append(region.Assignments, a)

	return nil
}

// RemoveAssignment clears a's ports' live assignment (if it still matches
// a), increments each port's rip counter, and drops a from its region's
// assignment list.
//
// Complexity: O(k) where k is the region's assignment count.
func (g *Graph) RemoveAssignment(a *Assignment) error {
	g.muPorts.Lock()
	defer g.muPorts.Unlock()
	g.muRegions.Lock()
	defer g.muRegions.Unlock()

	pa, ok := g.ports[a.PortA]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPortNotFound, a.PortA)
	}
	pb, ok := g.ports[a.PortB]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPortNotFound, a.PortB)
	}
	region, ok := g.regions[a.Region]
	if !ok {
		return fmt.Errorf("%w: %d", ErrRegionNotFound, a.Region)
	}

	if pa.Assignment == a {
		pa.Assignment = nil
	}
	pa.RipCount++
	if pb.Assignment == a {
		pb.Assignment = nil
	}
	pb.RipCount++

	filtered := region.Assignments[:0]
	for _, existing := range region.Assignments {
		if existing != a {
			filtered = append(filtered, existing)
		}
	}
	region.Assignments = filtered

	return nil
}

// Clone returns a deep copy of the graph: regions, ports, and all current
// assignment/rip-count state, with identical ids and construction order.
// Intended for the "independent deep copies for concurrent solves"
// requirement — the engine itself remains single-threaded per instance.
//
// Complexity: O(|regions| + |ports| + |assignments|).
func (g *Graph) Clone() *Graph {
	g.muRegions.RLock()
	defer g.muRegions.RUnlock()
	g.muPorts.RLock()
	defer g.muPorts.RUnlock()

	out := NewGraph()
	out.regionOrder = append([]RegionID(nil), g.regionOrder...)
	out.portOrder = append([]PortID(nil), g.portOrder...)

	for id, r := range g.regions {
		out.regions[id] = &Region{
			ID:          r.ID,
			Ports:       append([]PortID(nil), r.Ports...),
			Bounds:      r.Bounds,
			Center:      r.Center,
			AxisAligned: r.AxisAligned,
		}
	}

	// Clone ports first (without assignment pointers), then re-link
	// assignments so that cloned Assignment records, Port.Assignment, and
	// Region.Assignments all point at the same cloned instances.
	assignmentClones := make(map[*Assignment]*Assignment)
	for id, p := range g.ports {
		out.ports[id] = &Port{
			ID:             p.ID,
			Region1:        p.Region1,
			Region2:        p.Region2,
			Position:       p.Position,
			RipCount:       p.RipCount,
			HeuristicTable: cloneHopTable(p.HeuristicTable),
		}
	}
	for id, p := range g.ports {
		if p.Assignment == nil {
			continue
		}
		clone, ok := assignmentClones[p.Assignment]
		if !ok {
			clone = &Assignment{
				Region:     p.Assignment.Region,
				PortA:      p.Assignment.PortA,
				PortB:      p.Assignment.PortB,
				Connection: p.Assignment.Connection,
			}
			assignmentClones[p.Assignment] = clone
		}
		out.ports[id].Assignment = clone
	}
	for id, r := range g.regions {
		for _, a := range r.Assignments {
			out.regions[id].Assignments = append(out.regions[id].Assignments, assignmentClones[a])
		}
	}

	return out
}

func cloneHopTable(in map[RegionID]int) map[RegionID]int {
	if in == nil {
		return nil
	}
	out := make(map[RegionID]int, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
