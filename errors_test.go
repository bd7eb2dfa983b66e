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
	"fmt"
	"strings"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("outline: %w", errTooShort(3, 1e-12, 1e-9))
	if !errors.Is(err, TooShortSegment) {
		t.Error("wrapped error does not match its kind")
	}
	if errors.Is(err, DegenerateNormal) {
		t.Error("wrapped error matches the wrong kind")
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("errors.As failed")
	}
	if e.Index != 3 || e.Value != 1e-12 || e.Tolerance != 1e-9 {
		t.Errorf("got %+v", e)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{errTooShort(3, 0, 1e-9), "edge 3"},
		{errDegenerateNormal(5), "vertex 5"},
		{&Error{Kind: InvalidDistanceCount, Index: 4, Value: 2}, "got 2 distances for 4 edges"},
		{&Error{Kind: TooFewPoints, Index: 1}, "got 1"},
		{errConfig("bad value %d", 7), "invalid configuration: bad value 7"},
		{&Error{Kind: InvalidConfiguration}, "offset: invalid configuration"},
		{TooShortSegment, "offset: too short segment"},
		{ErrorKind(42), "ErrorKind(42)"},
	}
	for _, c := range cases {
		if got := c.err.Error(); !strings.Contains(got, c.want) {
			t.Errorf("got %q, want it to contain %q", got, c.want)
		}
	}
}
