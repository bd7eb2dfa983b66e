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
)

// ErrorKind classifies the errors returned by [Offset2D] and [Offset3D].
// An ErrorKind is itself an error, so that callers can test for a kind
// using [errors.Is]:
//
//	if errors.Is(err, offset.TooShortSegment) { ... }
type ErrorKind int

const (
	// TooShortSegment indicates an edge shorter than the length tolerance.
	// Index is the edge index.
	TooShortSegment ErrorKind = iota + 1

	// DegenerateNormal indicates that no local frame could be built for a
	// vertex in 3D.  Index is the vertex index.  If the normal of an edge
	// cannot be formed, Index is the first vertex of that edge.
	DegenerateNormal

	// InvalidDistanceCount indicates that the number of distances does not
	// match the number of edges.  Index is the number of edges expected.
	InvalidDistanceCount

	// InvalidConfiguration indicates an unsupported or contradictory
	// option value.
	InvalidConfiguration

	// TooFewPoints indicates a polyline with fewer than two distinct points.
	TooFewPoints
)

func (k ErrorKind) String() string {
	switch k {
	case TooShortSegment:
		return "too short segment"
	case DegenerateNormal:
		return "degenerate normal"
	case InvalidDistanceCount:
		return "invalid distance count"
	case InvalidConfiguration:
		return "invalid configuration"
	case TooFewPoints:
		return "too few points"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	return "offset: " + k.String()
}

// Error describes a failed offset operation.
type Error struct {
	Kind ErrorKind

	// Index is the edge or vertex index the error refers to.
	// The meaning depends on Kind, see the ErrorKind constants.
	Index int

	// Value and Tolerance carry the offending quantity and the limit it
	// was checked against, where this makes sense.
	Value     float64
	Tolerance float64

	// Msg optionally describes the problem in more detail.
	Msg string
}

func (e *Error) Error() string {
	switch e.Kind {
	case TooShortSegment:
		return fmt.Sprintf("offset: edge %d has length %g (tolerance %g)",
			e.Index, e.Value, e.Tolerance)
	case DegenerateNormal:
		return fmt.Sprintf("offset: cannot build normal at vertex %d", e.Index)
	case InvalidDistanceCount:
		return fmt.Sprintf("offset: got %d distances for %d edges",
			int(e.Value), e.Index)
	case TooFewPoints:
		return fmt.Sprintf("offset: need at least 2 points, got %d", e.Index)
	}
	if e.Msg != "" {
		return "offset: " + e.Kind.String() + ": " + e.Msg
	}
	return e.Kind.Error()
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

func errTooShort(edge int, length, tol float64) error {
	return &Error{Kind: TooShortSegment, Index: edge, Value: length, Tolerance: tol}
}

func errDegenerateNormal(vertex int) error {
	return &Error{Kind: DegenerateNormal, Index: vertex}
}

func errConfig(format string, args ...any) error {
	return &Error{Kind: InvalidConfiguration, Msg: fmt.Sprintf(format, args...)}
}
