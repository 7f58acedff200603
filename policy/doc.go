// Package policy is the cost-model policy layer: SolverParameters (the
// tunable knob surface), the SolverPolicy capability interface the engine
// calls into, a trivial all-zero-cost BasePolicy, and JumperPolicy — the
// production cost model that consults the crossing predicate and the
// precomputed hop table.
//
// The base/jumper split follows the teacher's pattern of a capability set
// (a struct of functions or an interface) injected at construction,
// re-expressing the source's polymorphic-solver-with-method-overrides
// design (spec §9) as a Go interface rather than subclassing.
package policy
