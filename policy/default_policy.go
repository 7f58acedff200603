package policy

import "github.com/jumperroute/router/hypergraph"

// BasePolicy is the trivial SolverPolicy: zero heuristic, zero usage
// penalty, zero region cost, and no rips ever requested through
// RipsRequiredFor. Under it every candidate's f is 0 except for
// SolverParameters.RipCost paid on entering a port held by another net, so
// the engine searches breadth-first and accepts the first path found. The
// engine still enters and rips ports held by another net when
// RippingEnabled is set.
//
// Useful as a baseline for engine tests, mirroring the teacher's BFS/DFS
// split where the traversal shell is shared and only the visit decision
// differs. JumperPolicy does not embed it.
type BasePolicy struct{}

// NewBasePolicy returns a ready-to-use BasePolicy.
func NewBasePolicy() *BasePolicy { return &BasePolicy{} }

// EstimateCostToEnd always returns 0: BasePolicy runs an uninformed search.
func (BasePolicy) EstimateCostToEnd(_ *hypergraph.Graph, _ hypergraph.PortID, _ hypergraph.RegionID) (float64, error) {
	return 0, nil
}

// PortUsagePenalty always returns 0: BasePolicy never discourages reuse.
func (BasePolicy) PortUsagePenalty(_ *hypergraph.Graph, _ hypergraph.PortID) (float64, error) {
	return 0, nil
}

// IncreasedRegionCost always returns 0: BasePolicy is indifferent to
// crossings.
func (BasePolicy) IncreasedRegionCost(
	_ *hypergraph.Graph,
	_ hypergraph.RegionID,
	_, _ hypergraph.PortID,
	_ hypergraph.NetworkID,
	_ NetworkLookup,
) (float64, error) {
	return 0, nil
}

// RipsRequiredFor always returns nil: BasePolicy never rips.
func (BasePolicy) RipsRequiredFor(
	_ *hypergraph.Graph,
	_ hypergraph.RegionID,
	_, _ hypergraph.PortID,
	_ hypergraph.NetworkID,
	_ NetworkLookup,
) ([]*hypergraph.Assignment, error) {
	return nil, nil
}
