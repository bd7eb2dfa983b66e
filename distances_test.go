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
	"errors"
	"math"
	"testing"
)

func TestDistances(t *testing.T) {
	u := Uniform(2.5)
	if u.Len() != -1 {
		t.Errorf("uniform Len() = %d", u.Len())
	}
	for _, i := range []int{0, 1, 1000} {
		if got := u.At(i); got != 2.5 {
			t.Errorf("uniform At(%d) = %g", i, got)
		}
	}
	for _, edges := range []int{1, 2, 50} {
		if err := u.check(edges); err != nil {
			t.Errorf("uniform check(%d): %v", edges, err)
		}
	}

	src := []float64{1, -2, 3}
	p := PerEdge(src...)
	src[1] = 100
	if p.Len() != 3 || p.At(1) != -2 {
		t.Errorf("PerEdge did not copy its input: %v", p.values)
	}
	if err := p.check(3); err != nil {
		t.Error(err)
	}
}

func TestDistancesCheck(t *testing.T) {
	cases := []struct {
		name  string
		d     Distances
		edges int
		kind  ErrorKind
		index int
	}{
		{"short", PerEdge(1, 2), 3, InvalidDistanceCount, 3},
		{"long", PerEdge(1, 2, 3, 4), 3, InvalidDistanceCount, 3},
		{"empty", PerEdge(), 1, InvalidDistanceCount, 1},
		{"nan", PerEdge(1, math.NaN()), 2, InvalidConfiguration, 1},
		{"uniform inf", Uniform(math.Inf(-1)), 4, InvalidConfiguration, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.d.check(c.edges)
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("got %v, want *Error", err)
			}
			if e.Kind != c.kind || e.Index != c.index {
				t.Errorf("got %s at %d, want %s at %d", e.Kind, e.Index, c.kind, c.index)
			}
		})
	}
}
