// Package crossing implements the region crossing predicate: given a
// region, a candidate port pair, and the region's current assignments, it
// counts how many different-net assignments interleave with the candidate
// pair and returns those assignment records so the engine can rip them.
//
// Axis-aligned regions are parameterized with geom.Bounds.PerimeterT;
// other regions use the ordered cyclic sequence of their ports (their
// construction-order index) as the circular coordinate, per spec §4.4.
package crossing
