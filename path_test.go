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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestToPath(t *testing.T) {
	square := []vec.Vec2{v2(0, 0), v2(1, 0), v2(1, 1), v2(0, 1)}
	cases := []struct {
		name   string
		pts    []vec.Vec2
		closed bool
		cmds   []path.Command
		npts   int
	}{
		{"open", square, false,
			[]path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo}, 4},
		{"closed", square, true,
			[]path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, 4},
		{"explicit close", append(slices.Clone(square), square[0]), true,
			[]path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, 4},
		{"single point", square[:1], false, []path.Command{path.CmdMoveTo}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var cmds []path.Command
			var pts []vec.Vec2
			for cmd, p := range ToPath(c.pts, c.closed).Iter() {
				cmds = append(cmds, cmd)
				pts = append(pts, p...)
			}
			if !slices.Equal(cmds, c.cmds) {
				t.Errorf("got commands %v, want %v", cmds, c.cmds)
			}
			if len(pts) != c.npts || pts[0] != c.pts[0] {
				t.Errorf("got points %v", pts)
			}
		})
	}

	if p := ToPath(nil, true); p != nil {
		t.Errorf("got %v for empty input", p)
	}
}

// The offset of a closed polyline converts to a closed path.
func TestOffsetToPath(t *testing.T) {
	pts := regular(6, 2)
	res, err := Offset2D(append(pts, pts[0]), Uniform(0.5), true, nil)
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	var last path.Command
	for cmd := range ToPath(res, true).Iter() {
		n++
		last = cmd
	}
	if n != 7 || last != path.CmdClose {
		t.Errorf("got %d commands ending in %v", n, last)
	}
}
