package heuristic

import (
	"fmt"
	"math"

	"github.com/jumperroute/router/hypergraph"
)

// Unreachable is the hop distance stored for a region/port that cannot
// reach a given destination at all.
const Unreachable = math.MaxInt32

// Precompute runs an unweighted BFS from each region in destinations over
// the port-adjacency graph and records, on every port of g, the minimum of
// its two adjacent regions' hop distance to that destination in
// Port.HeuristicTable.
//
// Complexity: O(|destinations| · (|regions| + |ports|)); each BFS visits
// every region at most once.
func Precompute(g *hypergraph.Graph, destinations []hypergraph.RegionID) error {
	for _, dest := range destinations {
		dist, err := bfsHopDistances(g, dest)
		if err != nil {
			return fmt.Errorf("heuristic: precompute for destination %d: %w", dest, err)
		}

		for _, pid := range g.Ports() {
			port, err := g.Port(pid)
			if err != nil {
				return err
			}

			best := minDist(distOrInf(dist, port.Region1), distOrInf(dist, port.Region2))
			if port.HeuristicTable == nil {
				port.HeuristicTable = make(map[hypergraph.RegionID]int)
			}
			port.HeuristicTable[dest] = best
		}
	}

	return nil
}

// bfsHopDistances returns the hop distance from dest to every region
// reachable from it, keyed by region id. Regions absent from the map are
// unreachable from dest.
func bfsHopDistances(g *hypergraph.Graph, dest hypergraph.RegionID) (map[hypergraph.RegionID]int, error) {
	if !g.HasRegion(dest) {
		return nil, fmt.Errorf("%w: %d", hypergraph.ErrRegionNotFound, dest)
	}

	dist := map[hypergraph.RegionID]int{dest: 0}
	queue := []hypergraph.RegionID{dest}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		region, err := g.Region(cur)
		if err != nil {
			return nil, err
		}

		for _, pid := range region.Ports {
			port, err := g.Port(pid)
			if err != nil {
				return nil, err
			}

			other := port.OtherRegion(cur)
			if _, seen := dist[other]; !seen {
				dist[other] = dist[cur] + 1
				queue = append(queue, other)
			}
		}
	}

	return dist, nil
}

func distOrInf(dist map[hypergraph.RegionID]int, id hypergraph.RegionID) int {
	if v, ok := dist[id]; ok {
		return v
	}

	return Unreachable
}

func minDist(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// Lookup returns the precomputed hop distance from port to dest and
// whether it has been computed at all (false if Precompute was never run
// for dest).
func Lookup(port *hypergraph.Port, dest hypergraph.RegionID) (int, bool) {
	if port.HeuristicTable == nil {
		return 0, false
	}
	v, ok := port.HeuristicTable[dest]

	return v, ok
}
