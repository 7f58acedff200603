package policy

import "github.com/jumperroute/router/hypergraph"

// SolverPolicy is the cost-model capability set the engine calls into
// during expansion and finalization. It re-expresses the source's
// subclass-overridable solver as an injected interface: BasePolicy is the
// all-zero-cost default, JumperPolicy is the production implementation.
//
//go:generate mockgen -source=capability.go -destination=mock_policy_test.go -package=policy_test
type SolverPolicy interface {
	// EstimateCostToEnd returns the heuristic h for reaching end from
	// port. Must be admissible (never overestimate actual hop count) when
	// callers intend GreedyMultiplier == 1.
	EstimateCostToEnd(g *hypergraph.Graph, port hypergraph.PortID, end hypergraph.RegionID) (float64, error)

	// PortUsagePenalty returns the additive cost of entering port, based
	// on its current rip count.
	PortUsagePenalty(g *hypergraph.Graph, port hypergraph.PortID) (float64, error)

	// IncreasedRegionCost returns the additive cost of routing (p1, p2)
	// through region, given the connections' network ids via networkOf.
	IncreasedRegionCost(
		g *hypergraph.Graph,
		region hypergraph.RegionID,
		p1, p2 hypergraph.PortID,
		newNetwork hypergraph.NetworkID,
		networkOf NetworkLookup,
	) (float64, error)

	// RipsRequiredFor returns the assignment records that must be ripped
	// if (p1, p2) is installed through region, given the connections'
	// network ids via networkOf.
	RipsRequiredFor(
		g *hypergraph.Graph,
		region hypergraph.RegionID,
		p1, p2 hypergraph.PortID,
		newNetwork hypergraph.NetworkID,
		networkOf NetworkLookup,
	) ([]*hypergraph.Assignment, error)
}

// NetworkLookup resolves a connection id to its network id. Defined here
// (rather than imported from crossing) so SolverPolicy implementations
// outside this module don't need to depend on the crossing package's
// internals; crossing.NetworkLookup has an identical signature and the two
// are interchangeable.
type NetworkLookup func(hypergraph.ConnectionID) hypergraph.NetworkID
