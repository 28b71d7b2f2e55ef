// Package geo provides the 2D geometry primitives the railway inference
// pipeline is built on: an exact-equality coordinate type, vector arithmetic,
// and the planar/great-circle distance and angle tests the rest of the
// pipeline composes.
//
// Pos equality is bit-exact by design: the decode package reconstructs
// coordinates from fixed-precision decimal tokens, and junction injection and
// vertex interning both rely on two occurrences of the same source token
// producing identical float64 values. Do not introduce fuzzy (epsilon)
// equality here.
package geo
