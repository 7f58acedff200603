// Package generator is the footprint-to-graph and problem-generation
// collaborator: GenerateGrid produces a deterministic region hypergraph
// laid out as a cols×rows pad lattice ringed by an outer perimeter, and
// CreateProblem places connection endpoints on that perimeter to hit a
// target same-region crossing count, retrying under a seeded LCG until
// the target is met or the attempt budget is exhausted.
//
// Both are external collaborators in the spec's own terms (spec §1): the
// router engine only consumes their output (a *hypergraph.Graph and a
// []hypergraph.Connection), never the reverse.
package generator
