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
	"fmt"
	"math"
)

// cornerKind records how a corner was joined.
type cornerKind int

const (
	cornerStraight cornerKind = iota
	cornerMiter
	cornerChamfer
	cornerParallelSkip
	cornerParallelProject
	cornerParallelProportional
	cornerParallelStep
)

func (k cornerKind) String() string {
	switch k {
	case cornerStraight:
		return "straight"
	case cornerMiter:
		return "miter"
	case cornerChamfer:
		return "chamfer"
	case cornerParallelSkip:
		return "parallel skip"
	case cornerParallelProject:
		return "parallel project"
	case cornerParallelProportional:
		return "parallel proportional"
	case cornerParallelStep:
		return "parallel step"
	default:
		return fmt.Sprintf("cornerKind(%d)", int(k))
	}
}

// meeter finds the point where two adjacent offset edges meet.
// The 2D and 3D versions differ in the intersection primitive used.
type meeter[V vector[V]] interface {
	// meet returns the miter point of the offset edges, or cornerChamfer
	// if the edges cannot be joined by a miter.
	meet(vertex int, in, out *edge[V]) (V, cornerKind)
}

// joiner builds the output polyline one corner at a time.
type joiner[V vector[V]] struct {
	opt *Options
	m   meeter[V]
	out []V

	// chord is the distance between two unit vectors at the angle
	// tolerance.
	chord float64
}

// corner appends the join between the offset edges in and out, which
// meet at the given vertex of the source polyline.
func (j *joiner[V]) corner(vertex int, in, out *edge[V]) cornerKind {
	cosTheta := in.T.Dot(out.T)
	parallel := cosTheta > float64(j.opt.AngleTolerance)

	if parallel && math.Abs(in.Dist-out.Dist) <= j.opt.LengthTolerance {
		// In 3D the offset directions of collinear edges may differ.
		gap := norm(out.start().Sub(in.end()))
		if gap <= j.opt.LengthTolerance+math.Abs(in.Dist)*j.chord {
			j.out = append(j.out, in.end())
			return cornerStraight
		}
		Logger().Debug("offset: collinear edges with different offset directions",
			"vertex", vertex, "gap", gap)
		return j.chamfer(in, out)
	}

	if parallel {
		var kind cornerKind
		j.out, kind = appendParallel(j.out, in, out, j.opt.Parallel)
		Logger().Debug("offset: parallel edges with different distances",
			"vertex", vertex, "join", kind,
			"distIn", in.Dist, "distOut", out.Dist)
		return kind
	}

	if cosTheta < float64(j.opt.UTurnAngle) {
		Logger().Debug("offset: U-turn", "vertex", vertex, "cos", cosTheta)
		// UTurnChamfer is the only U-turn behaviour accepted by validate.
		return j.chamfer(in, out)
	}

	p, kind := j.m.meet(vertex, in, out)
	if kind == cornerChamfer {
		Logger().Debug("offset: miter crosses itself", "vertex", vertex)
		return j.chamfer(in, out)
	}
	j.out = append(j.out, p)
	return kind
}

// chamfer joins the raw offset end points by a straight edge.
func (j *joiner[V]) chamfer(in, out *edge[V]) cornerKind {
	j.out = append(j.out, in.end(), out.start())
	return cornerChamfer
}

// miterValid reports whether the miter at parameters s (along the
// incoming offset edge) and u (along the outgoing one) keeps both offset
// edges pointing forward.
func miterValid(s, u float64) bool {
	return s >= 0 && u <= 1
}

// joinEdges runs the joiner over all corners and returns the offset
// polyline.  For open polylines the end points receive plain
// perpendicular caps.
func joinEdges[V vector[V]](edges []edge[V], loop bool, opt *Options, m meeter[V]) ([]V, []cornerKind) {
	numEdges := len(edges)
	j := &joiner[V]{
		opt:   opt,
		m:     m,
		out:   make([]V, 0, 2*numEdges),
		chord: math.Sqrt(max(0, 2-2*float64(opt.AngleTolerance))),
	}
	kinds := make([]cornerKind, 0, numEdges)

	if loop {
		// corner i joins edge i-1 and edge i
		for i := range numEdges {
			in := &edges[(i+numEdges-1)%numEdges]
			kinds = append(kinds, j.corner(i, in, &edges[i]))
		}
		return j.out, kinds
	}

	j.out = append(j.out, edges[0].start())
	for i := 1; i < numEdges; i++ {
		kinds = append(kinds, j.corner(i, &edges[i-1], &edges[i]))
	}
	j.out = append(j.out, edges[numEdges-1].end())
	return j.out, kinds
}
