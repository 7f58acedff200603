package policy

import (
	"sort"

	"github.com/jumperroute/router/geom"
	"github.com/jumperroute/router/hypergraph"
)

// OrderConnections returns a copy of conns arranged per order. OrderInput
// returns conns unchanged (aside from the defensive copy). OrderNearFirst
// and OrderFarFirst sort by the Euclidean distance between each
// connection's start and end region centers, ascending and descending
// respectively; both sorts are stable, so connections of equal distance
// keep their relative input order.
func OrderConnections(g *hypergraph.Graph, conns []hypergraph.Connection, order ConnectionOrder) ([]hypergraph.Connection, error) {
	out := make([]hypergraph.Connection, len(conns))
	copy(out, conns)

	if order == OrderInput {
		return out, nil
	}

	dist := make([]float64, len(out))
	for i, c := range out {
		start, err := g.Region(c.StartRegion)
		if err != nil {
			return nil, err
		}
		end, err := g.Region(c.EndRegion)
		if err != nil {
			return nil, err
		}
		dist[i] = geom.Distance(start.Center, end.Center)
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}

	switch order {
	case OrderNearFirst:
		sort.SliceStable(idx, func(a, b int) bool { return dist[idx[a]] < dist[idx[b]] })
	case OrderFarFirst:
		sort.SliceStable(idx, func(a, b int) bool { return dist[idx[a]] > dist[idx[b]] })
	}

	sorted := make([]hypergraph.Connection, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}

	return sorted, nil
}
