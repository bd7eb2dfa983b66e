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

// Distances gives the offset distance for every edge of a polyline.
// Use [Uniform] for a single distance and [PerEdge] for one distance
// per edge.
//
// In 2D, positive distances offset to the left of the edge direction.
type Distances struct {
	values  []float64
	uniform bool
}

// Uniform returns Distances which use d for every edge.
func Uniform(d float64) Distances {
	return Distances{values: []float64{d}, uniform: true}
}

// PerEdge returns Distances with one entry per edge.  Edge i runs from
// point i to point i+1 (wrapping around for closed polylines).
// The slice is copied.
func PerEdge(d ...float64) Distances {
	return Distances{values: append([]float64(nil), d...)}
}

// Len returns the number of explicit distances, or -1 for uniform
// distances.
func (d Distances) Len() int {
	if d.uniform {
		return -1
	}
	return len(d.values)
}

// At returns the distance for edge i.
func (d Distances) At(i int) float64 {
	if d.uniform {
		return d.values[0]
	}
	return d.values[i]
}

// check verifies that d can be used for a polyline with the given
// number of edges.
func (d Distances) check(edges int) error {
	if !d.uniform && len(d.values) != edges {
		return &Error{
			Kind:  InvalidDistanceCount,
			Index: edges,
			Value: float64(len(d.values)),
		}
	}
	for i, v := range d.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &Error{
				Kind:  InvalidConfiguration,
				Index: i,
				Value: v,
				Msg:   "distance must be finite",
			}
		}
	}
	return nil
}
