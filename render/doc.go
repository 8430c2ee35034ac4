// Package render draws the geometric half of the nullity story: a 2×2 key
// applied to a lattice of points and to the unit square, side by side with
// the originals. An invertible key shears the square into a parallelogram
// of area |det|; a singular key flattens lattice and square onto a line.
//
// The geometry helpers (Lattice, UnitSquare, Apply) are pure and testable
// on their own; Figure composes them into a two-panel PNG via gonum/plot.
package render
