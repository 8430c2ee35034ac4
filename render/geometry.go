// Pure plane geometry: the objects the figure draws and the 2×2 map that
// transforms them. Nothing here touches gonum/plot or the filesystem.

package render

import "github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"

// Point is a position on the drawing plane.
type Point struct {
	X, Y float64
}

// Lattice returns steps×steps points evenly covering [−span, span]², row
// by row from the bottom. Fewer than two steps or a non-positive span make
// no grid at all and yield nil.
func Lattice(span float64, steps int) []Point {
	if steps < 2 || span <= 0 {
		return nil
	}

	pts := make([]Point, 0, steps*steps)
	step := 2 * span / float64(steps-1)
	for i := 0; i < steps; i++ {
		y := -span + float64(i)*step
		for j := 0; j < steps; j++ {
			pts = append(pts, Point{X: -span + float64(j)*step, Y: y})
		}
	}

	return pts
}

// UnitSquare returns the closed outline of the unit square, first corner
// repeated at the end so a line plot draws all four edges.
func UnitSquare() []Point {
	return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
}

// Apply maps pts through the 2×2 key: (x, y) ↦ (ax+by, cx+dy). The input
// slice is never mutated. Keys of any other order return ErrNot2x2.
func Apply(k *hill.KeyMatrix, pts []Point) ([]Point, error) {
	if k == nil || k.Order() != 2 {
		return nil, ErrNot2x2
	}

	rows := k.Rows()
	a, b := rows[0][0], rows[0][1]
	c, d := rows[1][0], rows[1][1]

	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: a*p.X + b*p.Y, Y: c*p.X + d*p.Y}
	}

	return out, nil
}
