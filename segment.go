// seehuhn.de/go/offset - offset curves for polylines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package offset

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// vector is implemented by vec.Vec2 and mgl64.Vec3.
type vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(float64) V
	Dot(V) float64
}

func norm[V vector[V]](v V) float64 {
	return math.Sqrt(v.Dot(v))
}

// edge is one edge of the source polyline together with its offset.
type edge[V vector[V]] struct {
	A, B V       // end points of the source edge
	T    V       // unit tangent (A→B direction)
	N    V       // unit offset direction
	Len  float64 // length of the source edge
	Dist float64 // offset distance
}

// start returns the offset of A.
func (e *edge[V]) start() V {
	return e.A.Add(e.N.Mul(e.Dist))
}

// end returns the offset of B.
func (e *edge[V]) end() V {
	return e.B.Add(e.N.Mul(e.Dist))
}

// edgeCount returns the number of edges of a polyline with n points.
func edgeCount(n int, loop bool) int {
	if loop {
		return n
	}
	return n - 1
}

// trimClosingPoint removes an explicit closing point from a closed
// polyline.
func trimClosingPoint[V vector[V]](pts []V, loop bool, tol float64) ([]V, bool) {
	n := len(pts)
	if loop && n > 1 && norm(pts[n-1].Sub(pts[0])) <= tol {
		return pts[:n-1], true
	}
	return pts, false
}

// measureEdges computes the tangent and length of the first m edges of
// the polyline.  The offset direction is left for the caller to fill in.
func measureEdges[V vector[V]](pts []V, m int, dist Distances, tol float64) ([]edge[V], error) {
	n := len(pts)
	edges := make([]edge[V], m)
	for i := range m {
		a := pts[i]
		b := pts[(i+1)%n]
		d := b.Sub(a)
		length := norm(d)
		if !(length >= tol) {
			return nil, errTooShort(i, length, tol)
		}
		edges[i] = edge[V]{
			A:    a,
			B:    b,
			T:    d.Mul(1 / length),
			Len:  length,
			Dist: dist.At(i),
		}
	}
	return edges, nil
}

// offsetEdges2D sets the offset direction of every edge to the unit
// normal, 90° counter-clockwise from the tangent.
func offsetEdges2D(edges []edge[vec.Vec2]) {
	for i := range edges {
		t := edges[i].T
		edges[i].N = vec.Vec2{X: -t.Y, Y: t.X}
	}
}
