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
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestParallelJoins(t *testing.T) {
	line := []vec.Vec2{v2(0, 0), v2(10, 0), v2(20, 0)}
	uneven := []vec.Vec2{v2(0, 0), v2(30, 0), v2(40, 0)}

	cases := []struct {
		behavior VarDistParallelBehavior
		pts      []vec.Vec2
		dist     Distances
		want     []vec.Vec2
		kind     cornerKind
	}{
		{ParallelSkip, line, PerEdge(1, 3), []vec.Vec2{v2(0, 1), v2(20, 3)}, cornerParallelSkip},
		{ParallelProject, line, PerEdge(1, 3), []vec.Vec2{v2(0, 1), v2(10, 1), v2(20, 3)}, cornerParallelProject},
		{ParallelProject, line, PerEdge(3, -1), []vec.Vec2{v2(0, 3), v2(10, -1), v2(20, -1)}, cornerParallelProject},
		{ParallelProportional, line, PerEdge(1, 3), []vec.Vec2{v2(0, 1), v2(10, 2), v2(20, 3)}, cornerParallelProportional},
		{ParallelProportional, uneven, PerEdge(2, 4), []vec.Vec2{v2(0, 2), v2(30, 3.5), v2(40, 4)}, cornerParallelProportional},
		{ParallelStep, line, PerEdge(1, 3), []vec.Vec2{v2(0, 1), v2(10, 1), v2(10, 3), v2(20, 3)}, cornerParallelStep},
	}
	for _, c := range cases {
		t.Run(c.behavior.String(), func(t *testing.T) {
			opt := NewOptions()
			opt.Parallel = c.behavior
			got, kinds, err := offset2D(c.pts, c.dist, false, opt)
			if err != nil {
				t.Fatal(err)
			}
			if !nearAll(got, c.want, 1e-12) {
				t.Errorf("got %v, want %v", got, c.want)
			}
			if !slices.Equal(kinds, []cornerKind{c.kind}) {
				t.Errorf("got corners %v, want %s", kinds, c.kind)
			}
		})
	}
}

// Parallel edges with equal distances are never treated as a step.
func TestParallelEqualDistances(t *testing.T) {
	line := []vec.Vec2{v2(0, 0), v2(10, 0), v2(20, 0)}
	for _, b := range []VarDistParallelBehavior{ParallelSkip, ParallelProject, ParallelProportional, ParallelStep} {
		opt := NewOptions()
		opt.Parallel = b
		got, kinds, err := offset2D(line, PerEdge(2, 2), false, opt)
		if err != nil {
			t.Fatal(err)
		}
		want := []vec.Vec2{v2(0, 2), v2(10, 2), v2(20, 2)}
		if !nearAll(got, want, 0) {
			t.Errorf("%s: got %v, want %v", b, got, want)
		}
		if kinds[0] != cornerStraight {
			t.Errorf("%s: got corner %s", b, kinds[0])
		}
	}
}

// A slight bend within the angle tolerance counts as parallel.
func TestParallelTolerance(t *testing.T) {
	pts := []vec.Vec2{v2(0, 0), v2(10, 0), v2(20, 1e-6)}

	opt := NewOptions()
	opt.Parallel = ParallelSkip
	got, kinds, err := offset2D(pts, PerEdge(1, 2), false, opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || kinds[0] != cornerParallelSkip {
		t.Errorf("got %v %v", got, kinds)
	}

	opt.AngleTolerance = Degrees(1e-9)
	_, kinds, err = offset2D(pts, PerEdge(1, 2), false, opt)
	if err != nil {
		t.Fatal(err)
	}
	if kinds[0] == cornerParallelSkip {
		t.Errorf("bend treated as parallel with tight tolerance")
	}
}

func TestClosedStep(t *testing.T) {
	// a rectangle with a vertex in the middle of the bottom edge
	pts := []vec.Vec2{v2(0, 0), v2(5, 0), v2(10, 0), v2(10, 10), v2(0, 10)}
	got, kinds, err := offset2D(pts, PerEdge(1, 2, 1, 1, 1), true, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []vec.Vec2{
		v2(1, 1), v2(5, 1), v2(5, 2), v2(9, 2), v2(9, 9), v2(1, 9),
	}
	if !nearAll(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}
	wantKinds := []cornerKind{cornerMiter, cornerParallelStep, cornerMiter, cornerMiter, cornerMiter}
	if !slices.Equal(kinds, wantKinds) {
		t.Errorf("got corners %v, want %v", kinds, wantKinds)
	}
}
