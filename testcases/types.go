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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset"
)

// TestCase defines a single offset test.
type TestCase struct {
	Name      string     // lowercase a-z and _ only
	Points    []vec.Vec2 // the source polyline
	Distances []float64  // a single entry applies to every edge
	Closed    bool       // whether the polyline is closed

	// Parallel is the join for parallel edges with different distances.
	// If nil, the default from offset.NewOptions is used.
	Parallel *offset.VarDistParallelBehavior

	// Want is the expected offset polyline.  If Err is non-zero, the
	// offset must fail with an error of this kind instead.
	Want []vec.Vec2
	Err  offset.ErrorKind
}

// Options returns the offset options for the test case.
func (tc *TestCase) Options() *offset.Options {
	opt := offset.NewOptions()
	if tc.Parallel != nil {
		opt.Parallel = *tc.Parallel
	}
	return opt
}

// Dist returns the offset distances for the test case.
func (tc *TestCase) Dist() offset.Distances {
	if len(tc.Distances) == 1 {
		return offset.Uniform(tc.Distances[0])
	}
	return offset.PerEdge(tc.Distances...)
}

// Run offsets the polyline of the test case.
func (tc *TestCase) Run() ([]vec.Vec2, error) {
	return offset.Offset2D(tc.Points, tc.Dist(), tc.Closed, tc.Options())
}

// Bounds returns the smallest rectangle containing the source polyline
// and all the given point sets.
func (tc *TestCase) Bounds(extra ...[]vec.Vec2) rect.Rect {
	r := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	add := func(pts []vec.Vec2) {
		for _, p := range pts {
			r.LLx = min(r.LLx, p.X)
			r.LLy = min(r.LLy, p.Y)
			r.URx = max(r.URx, p.X)
			r.URy = max(r.URy, p.Y)
		}
	}
	add(tc.Points)
	for _, pts := range extra {
		add(pts)
	}
	if r.LLx > r.URx {
		return rect.Rect{}
	}
	return r
}

// join is a helper to set the Parallel field of a test case.
func join(b offset.VarDistParallelBehavior) *offset.VarDistParallelBehavior {
	return &b
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// poly is a helper to create a polyline from x, y coordinate pairs.
func poly(xy ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, pt(xy[i], xy[i+1]))
	}
	return res
}
