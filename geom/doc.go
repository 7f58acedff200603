// Package geom provides the geometric primitives the router builds on:
// Euclidean distance, axis-aligned bounds and their center, perimeter
// parameterization of a rectangle, the perimeter chord-crossing predicate,
// and small 2D affine transforms.
package geom
