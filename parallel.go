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

import "math"

// appendParallel appends the join points between two parallel edges with
// different offset distances to dst.  The edges meet at in.B == out.A.
func appendParallel[V vector[V]](dst []V, in, out *edge[V], behavior VarDistParallelBehavior) ([]V, cornerKind) {
	switch behavior {
	case ParallelSkip:
		return dst, cornerParallelSkip

	case ParallelProject:
		// The projection of the vertex onto an offset line is the offset
		// end point, since N is perpendicular to T.
		if math.Abs(in.Dist) <= math.Abs(out.Dist) {
			return append(dst, in.end()), cornerParallelProject
		}
		return append(dst, out.start()), cornerParallelProject

	case ParallelProportional:
		// Ramp from the midpoint of the incoming edge to the midpoint of
		// the outgoing edge.
		t := in.Len / (in.Len + out.Len)
		shift := in.N.Mul(in.Dist * (1 - t)).Add(out.N.Mul(out.Dist * t))
		return append(dst, in.B.Add(shift)), cornerParallelProportional

	default: // ParallelStep
		return append(dst, in.end(), out.start()), cornerParallelStep
	}
}
