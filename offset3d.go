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
	"github.com/go-gl/mathgl/mgl64"
)

// Normals selects the local normals used to offset a 3D polyline.
// The concrete type is one of [PlaneNormal], [VertexNormals] or
// [ExplicitNormals].
type Normals interface {
	isNormals()
}

// PlaneNormal uses the same normal at every vertex.  This is the right
// choice for planar polylines.
type PlaneNormal struct {
	N mgl64.Vec3
}

// VertexNormals computes the normal at every vertex from the cross product
// of the incoming and outgoing edge directions.  The normals are oriented
// consistently along the polyline.  Collinear vertices inherit the normal
// of the nearest vertex where the polyline turns.
//
// Fallback, if non-zero, is used at vertices where the polyline reverses
// and when the whole polyline is straight.  Otherwise these cases fail
// with DegenerateNormal.
type VertexNormals struct {
	Fallback mgl64.Vec3
}

// ExplicitNormals gives one normal per point of the polyline.
type ExplicitNormals struct {
	N []mgl64.Vec3
}

func (PlaneNormal) isNormals()     {}
func (VertexNormals) isNormals()   {}
func (ExplicitNormals) isNormals() {}

// Offset3D offsets a 3D polyline.  Every edge is moved in the direction
// cross(T, N), where T is the edge direction and N is the normal for
// the edge.  With [VertexNormals], the edge normal is formed from the
// normals of its two end points.
//
// Offset edges built from different normals may miss each other.  If they
// pass within [Options.SkewTolerance], the corner point is chosen by
// [Options.Skew]; otherwise the corner is chamfered.
//
// The treatment of loop, distances and closing points is the same as
// for [Offset2D].
func Offset3D(points []mgl64.Vec3, dist Distances, loop bool, normals Normals, opt *Options) ([]mgl64.Vec3, error) {
	res, _, err := offset3D(points, dist, loop, normals, opt)
	return res, err
}

func offset3D(points []mgl64.Vec3, dist Distances, loop bool, normals Normals, opt *Options) ([]mgl64.Vec3, []cornerKind, error) {
	if opt == nil {
		opt = NewOptions()
	}
	if err := opt.validate(); err != nil {
		return nil, nil, err
	}
	switch nm := normals.(type) {
	case PlaneNormal:
		if nm.N.Len() < opt.LengthTolerance {
			return nil, nil, errConfig("plane normal is zero")
		}
	case VertexNormals, ExplicitNormals:
	default:
		return nil, nil, errConfig("unsupported normals %T", normals)
	}

	pts, closing := trimClosingPoint(points, loop, opt.LengthTolerance)
	if len(pts) < 2 {
		return nil, nil, &Error{Kind: TooFewPoints, Index: len(pts)}
	}
	numEdges := edgeCount(len(pts), loop)
	if err := dist.check(numEdges); err != nil {
		return nil, nil, err
	}
	if nm, ok := normals.(ExplicitNormals); ok && len(nm.N) != len(pts) && len(nm.N) != len(points) {
		return nil, nil, errConfig("got %d normals for %d points", len(nm.N), len(pts))
	}

	edges, err := measureEdges(pts, numEdges, dist, opt.LengthTolerance)
	if err != nil {
		return nil, nil, err
	}

	s := space{opt: opt, sinTol: sine(opt.AngleTolerance)}
	switch nm := normals.(type) {
	case PlaneNormal:
		err = s.offsetPlane(edges, nm.N.Normalize())
	case VertexNormals:
		var vn []mgl64.Vec3
		vn, err = s.vertexNormals(edges, len(pts), loop, nm.Fallback)
		if err == nil {
			err = s.offsetVertexNormals(edges, vn)
		}
	case ExplicitNormals:
		vn := make([]mgl64.Vec3, len(pts))
		for i := range vn {
			l := nm.N[i].Len()
			if l < opt.LengthTolerance {
				return nil, nil, errDegenerateNormal(i)
			}
			vn[i] = nm.N[i].Mul(1 / l)
		}
		err = s.offsetVertexNormals(edges, vn)
	}
	if err != nil {
		return nil, nil, err
	}

	res, kinds := joinEdges(edges, loop, opt, s)
	if closing && len(res) > 0 {
		res = append(res, res[0])
	}
	return res, kinds, nil
}

// space joins offset edges in 3D, where offset edges may be skew.
type space struct {
	opt    *Options
	sinTol float64 // sine of the angle tolerance
}

// offsetPlane sets the offset direction of every edge from a single unit
// normal.  Edge i starts at vertex i, which is reported on failure.
func (s space) offsetPlane(edges []edge[mgl64.Vec3], n mgl64.Vec3) error {
	for i := range edges {
		perp := edges[i].T.Cross(n)
		l := perp.Len()
		if l <= s.sinTol {
			return errDegenerateNormal(i)
		}
		edges[i].N = perp.Mul(1 / l)
	}
	return nil
}

// offsetVertexNormals sets the offset direction of every edge from the
// unit normals at its two end points.  On failure, the first vertex of the
// edge is reported.
func (s space) offsetVertexNormals(edges []edge[mgl64.Vec3], vn []mgl64.Vec3) error {
	n := len(vn)
	for i := range edges {
		e := &edges[i]
		m, ok := s.perpendicular(vn[i].Add(vn[(i+1)%n]), e.T)
		if !ok {
			return errDegenerateNormal(i)
		}
		e.N = e.T.Cross(m)
	}
	return nil
}

// perpendicular returns the unit vector in direction of the component of
// v perpendicular to the unit vector t.
func (s space) perpendicular(v, t mgl64.Vec3) (mgl64.Vec3, bool) {
	p := v.Sub(t.Mul(v.Dot(t)))
	l := p.Len()
	if l <= s.sinTol*v.Len() || l < s.opt.LengthTolerance {
		return mgl64.Vec3{}, false
	}
	return p.Mul(1 / l), true
}

// vertexNormals computes one unit normal per point from the turning
// direction of the polyline.
func (s space) vertexNormals(edges []edge[mgl64.Vec3], n int, loop bool, fallback mgl64.Vec3) ([]mgl64.Vec3, error) {
	normals := make([]mgl64.Vec3, n)
	known := make([]bool, n)
	hasFallback := fallback.Len() >= s.opt.LengthTolerance

	first, last := 1, n-2
	if loop {
		first, last = 0, n-1
	}
	numEdges := len(edges)

	var seed mgl64.Vec3
	for i := first; i <= last; i++ {
		in := &edges[(i+numEdges-1)%numEdges]
		out := &edges[i%numEdges]
		c := in.T.Cross(out.T)
		l := c.Len()
		switch {
		case l > s.sinTol:
			normals[i] = c.Mul(1 / l)
			known[i] = true
			seed = seed.Add(c)
		case in.T.Dot(out.T) < 0:
			if !hasFallback {
				return nil, errDegenerateNormal(i)
			}
			nf, ok := s.perpendicular(fallback, in.T)
			if !ok {
				return nil, errDegenerateNormal(i)
			}
			normals[i] = nf
			known[i] = true
		}
	}

	// orient the computed normals consistently
	ref := seed
	if ref.Len() < s.opt.LengthTolerance {
		ref = mgl64.Vec3{}
	}
	resolved := -1
	for i := range n {
		if !known[i] {
			continue
		}
		if normals[i].Dot(ref) < 0 {
			normals[i] = normals[i].Mul(-1)
		}
		ref = normals[i]
		resolved = i
	}

	if resolved < 0 {
		// The polyline is straight.
		if !hasFallback {
			return nil, errDegenerateNormal(0)
		}
		nf, ok := s.perpendicular(fallback, edges[0].T)
		if !ok {
			return nil, errDegenerateNormal(0)
		}
		for i := range normals {
			normals[i] = nf
		}
		return normals, nil
	}

	// Fill in the gaps from the preceding resolved vertex.  For open
	// polylines, leading gaps are filled from the first resolved vertex.
	var prev mgl64.Vec3
	hasPrev := false
	if loop {
		prev, hasPrev = normals[resolved], true
	}
	for i := range n {
		if known[i] {
			prev, hasPrev = normals[i], true
		} else if hasPrev {
			normals[i] = prev
			known[i] = true
		}
	}
	for i := n - 1; i >= 0; i-- {
		if known[i] {
			prev = normals[i]
		} else {
			normals[i] = prev
		}
	}
	return normals, nil
}

func (s space) meet(vertex int, in, out *edge[mgl64.Vec3]) (mgl64.Vec3, cornerKind) {
	a0 := in.start()
	b0 := out.start()
	hit := IntersectLines3D(a0, in.B.Sub(in.A), b0, out.B.Sub(out.A), s.opt)
	switch h := hit.(type) {
	case Crossing[mgl64.Vec3]:
		if !miterValid(h.S, h.U) {
			return mgl64.Vec3{}, cornerChamfer
		}
		return h.Point, cornerMiter
	case Skew[mgl64.Vec3]:
		if h.Distance > s.opt.SkewTolerance {
			Logger().Debug("offset: skew corner", "vertex", vertex,
				"distance", h.Distance, "tolerance", s.opt.SkewTolerance)
			return mgl64.Vec3{}, cornerChamfer
		}
		if !miterValid(h.S, h.U) {
			return mgl64.Vec3{}, cornerChamfer
		}
		switch s.opt.Skew {
		case SkewIncoming:
			return h.OnA, cornerMiter
		case SkewOutgoing:
			return h.OnB, cornerMiter
		default: // SkewMidpoint
			return h.OnA.Add(h.OnB).Mul(0.5), cornerMiter
		}
	case Parallel[mgl64.Vec3], TooShort[mgl64.Vec3], Apart[mgl64.Vec3]:
		Logger().Debug("offset: no miter point", "vertex", vertex, "hit", h)
	}
	return in.end(), cornerMiter
}
