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

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"
)

// Hit is the result of intersecting two lines or segments.  The concrete
// type is one of [Crossing], [Parallel], [Skew], [Apart] or [TooShort].
//
// Lines are given as a start point and a direction vector.  The parameters
// S and U in the results are measured in units of the two direction
// vectors, so that a parameter in [0, 1] lies on the segment.
type Hit[V any] interface {
	isHit()
}

// Crossing is an exact intersection.
type Crossing[V any] struct {
	Point V
	S, U  float64 // parameters along the first and second line
}

// Parallel means that the two lines have the same or opposite direction.
type Parallel[V any] struct{}

// Skew means that two 3D lines pass each other without intersecting.
// OnA and OnB are the closest points.
type Skew[V any] struct {
	OnA, OnB V
	S, U     float64
	Distance float64
}

// Apart means that the lines through two segments intersect, but outside
// of at least one of the segments.
type Apart[V any] struct {
	S, U float64
}

// TooShort means that a direction vector is shorter than the length
// tolerance.  Which is 0 for the first line and 1 for the second.
type TooShort[V any] struct {
	Which int
}

func (Crossing[V]) isHit() {}
func (Parallel[V]) isHit() {}
func (Skew[V]) isHit()     {}
func (Apart[V]) isHit()    {}
func (TooShort[V]) isHit() {}

// IntersectLines2D intersects the line through a0 with direction da and
// the line through b0 with direction db.  The result is a [Crossing],
// [Parallel] or [TooShort].  If opt is nil, the default options are used.
func IntersectLines2D(a0, da, b0, db vec.Vec2, opt *Options) Hit[vec.Vec2] {
	if opt == nil {
		opt = NewOptions()
	}
	la, lb := da.Length(), db.Length()
	if la < opt.LengthTolerance {
		return TooShort[vec.Vec2]{Which: 0}
	}
	if lb < opt.LengthTolerance {
		return TooShort[vec.Vec2]{Which: 1}
	}

	den := cross2(da, db)
	if math.Abs(den) <= sine(opt.AngleTolerance)*la*lb {
		return Parallel[vec.Vec2]{}
	}

	w := b0.Sub(a0)
	s := cross2(w, db) / den
	u := cross2(w, da) / den
	return Crossing[vec.Vec2]{Point: a0.Add(da.Mul(s)), S: s, U: u}
}

// IntersectSegments2D intersects the segments a0–a1 and b0–b1.
// In addition to the results of [IntersectLines2D], this can return
// [Apart] if the lines meet outside the segments.
func IntersectSegments2D(a0, a1, b0, b1 vec.Vec2, opt *Options) Hit[vec.Vec2] {
	hit := IntersectLines2D(a0, a1.Sub(a0), b0, b1.Sub(b0), opt)
	if c, ok := hit.(Crossing[vec.Vec2]); ok {
		if c.S < 0 || c.S > 1 || c.U < 0 || c.U > 1 {
			return Apart[vec.Vec2]{S: c.S, U: c.U}
		}
	}
	return hit
}

// IntersectLines3D finds the closest approach of the line through a0 with
// direction da and the line through b0 with direction db.  If the lines
// come closer than the length tolerance, the result is a [Crossing] at
// the midpoint of the closest points.  Otherwise the result is a [Skew].
// [Parallel] and [TooShort] are returned as for [IntersectLines2D].
func IntersectLines3D(a0, da, b0, db mgl64.Vec3, opt *Options) Hit[mgl64.Vec3] {
	if opt == nil {
		opt = NewOptions()
	}
	la, lb := da.Len(), db.Len()
	if la < opt.LengthTolerance {
		return TooShort[mgl64.Vec3]{Which: 0}
	}
	if lb < opt.LengthTolerance {
		return TooShort[mgl64.Vec3]{Which: 1}
	}
	if da.Cross(db).Len() <= sine(opt.AngleTolerance)*la*lb {
		return Parallel[mgl64.Vec3]{}
	}

	// minimise |w0 + s*da - u*db|
	w0 := a0.Sub(b0)
	a := da.Dot(da)
	b := da.Dot(db)
	c := db.Dot(db)
	d := da.Dot(w0)
	e := db.Dot(w0)
	den := a*c - b*b
	s := (b*e - c*d) / den
	u := (a*e - b*d) / den

	pa := a0.Add(da.Mul(s))
	pb := b0.Add(db.Mul(u))
	dist := pa.Sub(pb).Len()
	if dist <= opt.LengthTolerance {
		return Crossing[mgl64.Vec3]{Point: pa.Add(pb).Mul(0.5), S: s, U: u}
	}
	return Skew[mgl64.Vec3]{OnA: pa, OnB: pb, S: s, U: u, Distance: dist}
}

// cross2 returns the z-component of the cross product of a and b.
func cross2(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// sine returns the sine of an angle in [0, π] given by its cosine.
func sine(c Cosine) float64 {
	return math.Sqrt(max(0, 1-float64(c)*float64(c)))
}
