package hypergraph

// Assignment is a region-port-pair record: a region and the two distinct
// ports of it that a single route visit traverses, owned weakly by both
// the region (in Region.Assignments) and the two ports (Port.Assignment).
type Assignment struct {
	Region     RegionID
	PortA      PortID
	PortB      PortID
	Connection ConnectionID
}

// Candidate is an A* search-frontier node: a port reached by the search,
// the region it still needs to cross to reach NextRegion, and the g/h/f
// bookkeeping used to order the priority queue.
//
// Root candidates (the start region's ports) have no Parent and
// g = h = f = 0.
type Candidate struct {
	Port       PortID
	Parent     *Candidate
	LastRegion RegionID
	LastPort   PortID
	NextRegion RegionID
	Hops       int

	G, H, F float64

	// RipRequired records whether entering Port required evicting an
	// existing assignment of a different network.
	RipRequired bool
}

// PriorityKey implements pqueue.Item: candidates dequeue in ascending F
// order.
func (c *Candidate) PriorityKey() float64 { return c.F }

// SolvedRoute is the installed path realizing a Connection: an ordered
// list of candidates, the region sequence between them alternating (every
// consecutive port pair shares exactly one region, the one traversed to
// reach the later port).
type SolvedRoute struct {
	Connection  ConnectionID
	Candidates  []*Candidate
	RequiredRip bool
}

// Ports returns the ordered port sequence of the route.
func (r *SolvedRoute) Ports() []PortID {
	out := make([]PortID, len(r.Candidates))
	for i, c := range r.Candidates {
		out[i] = c.Port
	}

	return out
}
