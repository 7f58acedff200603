package policy

import (
	"github.com/jumperroute/router/crossing"
	"github.com/jumperroute/router/geom"
	"github.com/jumperroute/router/heuristic"
	"github.com/jumperroute/router/hypergraph"
)

// JumperPolicy is the production SolverPolicy: its heuristic consults the
// precomputed hop table (or Euclidean distance, per Params.UnitOfCost),
// its region cost and rip set come from the crossing predicate, and its
// port-usage penalty scales with a port's accumulated rip count.
type JumperPolicy struct {
	Params SolverParameters
}

// NewJumperPolicy returns a JumperPolicy tuned by params.
func NewJumperPolicy(params SolverParameters) *JumperPolicy {
	return &JumperPolicy{Params: params}
}

// EstimateCostToEnd returns the precomputed BFS hop distance from port to
// end when Params.UnitOfCost is UnitHops, or the Euclidean distance from
// port's position to end's center when UnitDistance. Falls back to 0 if
// the hop table was never populated for end (heuristic.Precompute wasn't
// run for that destination), which keeps the search admissible but
// uninformed for that destination rather than erroring.
func (p *JumperPolicy) EstimateCostToEnd(g *hypergraph.Graph, port hypergraph.PortID, end hypergraph.RegionID) (float64, error) {
	switch p.Params.UnitOfCost {
	case UnitDistance:
		pt, err := g.Port(port)
		if err != nil {
			return 0, err
		}
		region, err := g.Region(end)
		if err != nil {
			return 0, err
		}

		return geom.Distance(pt.Position, region.Center), nil
	default:
		pt, err := g.Port(port)
		if err != nil {
			return 0, err
		}

		dist, ok := heuristic.Lookup(pt, end)
		if !ok {
			return 0, nil
		}

		return float64(dist), nil
	}
}

// PortUsagePenalty returns port's rip count scaled by
// Params.PortUsagePenalty.
func (p *JumperPolicy) PortUsagePenalty(g *hypergraph.Graph, port hypergraph.PortID) (float64, error) {
	pt, err := g.Port(port)
	if err != nil {
		return 0, err
	}

	return float64(pt.RipCount) * p.Params.PortUsagePenalty, nil
}

// IncreasedRegionCost returns the crossing count of (p1, p2) through
// region, scaled by Params.CrossingPenalty.
func (p *JumperPolicy) IncreasedRegionCost(
	g *hypergraph.Graph,
	region hypergraph.RegionID,
	p1, p2 hypergraph.PortID,
	newNetwork hypergraph.NetworkID,
	networkOf NetworkLookup,
) (float64, error) {
	count, _, err := crossing.Check(g, region, p1, p2, newNetwork, crossing.NetworkLookup(networkOf))
	if err != nil {
		return 0, err
	}

	return float64(count) * p.Params.CrossingPenalty, nil
}

// RipsRequiredFor returns the assignment records that interleave with
// (p1, p2) through region, per the crossing predicate.
func (p *JumperPolicy) RipsRequiredFor(
	g *hypergraph.Graph,
	region hypergraph.RegionID,
	p1, p2 hypergraph.PortID,
	newNetwork hypergraph.NetworkID,
	networkOf NetworkLookup,
) ([]*hypergraph.Assignment, error) {
	_, offending, err := crossing.Check(g, region, p1, p2, newNetwork, crossing.NetworkLookup(networkOf))
	if err != nil {
		return nil, err
	}

	return offending, nil
}
