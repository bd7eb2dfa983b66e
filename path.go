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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ToPath converts a polyline into a path with a single subpath.
// If closed is true, the subpath is closed.  An explicit closing point
// is not repeated.  The result is nil if points is empty.
func ToPath(points []vec.Vec2, closed bool) *path.Data {
	if len(points) == 0 {
		return nil
	}
	if closed && len(points) > 1 && points[len(points)-1] == points[0] {
		points = points[:len(points)-1]
	}

	p := (&path.Data{}).MoveTo(points[0])
	for _, pt := range points[1:] {
		p = p.LineTo(pt)
	}
	if closed {
		p = p.Close()
	}
	return p
}
