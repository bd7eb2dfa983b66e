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

// Package offset computes offset curves of 2D and 3D polylines.
//
// Every edge of the source polyline is moved sideways by its offset
// distance, and adjacent offset edges are joined at the corners.
// Ordinary corners are joined by a miter.  Corners where the miter would
// cross itself, and near-reversals, are chamfered.  Parallel edges with
// different distances are joined as selected by
// [Options.Parallel].
//
// Open polylines keep their end points: the first and last output points
// are the offsets of the first and last source points.
//
// The functions in this package are pure and may be called concurrently.
package offset

import (
	"seehuhn.de/go/geom/vec"
)

// Offset2D offsets a 2D polyline.  Positive distances offset to the left
// of the direction of travel, so that a counter-clockwise polygon shrinks.
//
// If loop is true, the polyline is closed and there is one edge per point.
// A last point which repeats the first point is recognised as an explicit
// closing point; in this case the result repeats its first point at the
// end, too.  If loop is false, there is one edge less than points.
//
// If opt is nil, the defaults from [NewOptions] are used.
//
// The result has one point per corner (and one per end point of an open
// polyline).  Chamfers and [ParallelStep] add a point, [ParallelSkip]
// removes one.  Errors are of type [*Error].
func Offset2D(points []vec.Vec2, dist Distances, loop bool, opt *Options) ([]vec.Vec2, error) {
	res, _, err := offset2D(points, dist, loop, opt)
	return res, err
}

func offset2D(points []vec.Vec2, dist Distances, loop bool, opt *Options) ([]vec.Vec2, []cornerKind, error) {
	if opt == nil {
		opt = NewOptions()
	}
	if err := opt.validate(); err != nil {
		return nil, nil, err
	}

	pts, closing := trimClosingPoint(points, loop, opt.LengthTolerance)
	if len(pts) < 2 {
		return nil, nil, &Error{Kind: TooFewPoints, Index: len(pts)}
	}
	numEdges := edgeCount(len(pts), loop)
	if err := dist.check(numEdges); err != nil {
		return nil, nil, err
	}

	edges, err := measureEdges(pts, numEdges, dist, opt.LengthTolerance)
	if err != nil {
		return nil, nil, err
	}
	offsetEdges2D(edges)

	res, kinds := joinEdges(edges, loop, opt, plane{opt: opt})
	if closing && len(res) > 0 {
		res = append(res, res[0])
	}
	return res, kinds, nil
}

// plane joins offset edges in 2D, where non-parallel lines always
// intersect.
type plane struct {
	opt *Options
}

func (p plane) meet(vertex int, in, out *edge[vec.Vec2]) (vec.Vec2, cornerKind) {
	a0 := in.start()
	b0 := out.start()
	hit := IntersectLines2D(a0, in.B.Sub(in.A), b0, out.B.Sub(out.A), p.opt)
	switch h := hit.(type) {
	case Crossing[vec.Vec2]:
		if !miterValid(h.S, h.U) {
			return vec.Vec2{}, cornerChamfer
		}
		return h.Point, cornerMiter
	case Parallel[vec.Vec2], TooShort[vec.Vec2], Skew[vec.Vec2], Apart[vec.Vec2]:
		Logger().Debug("offset: no miter point", "vertex", vertex, "hit", h)
	}
	return in.end(), cornerMiter
}
