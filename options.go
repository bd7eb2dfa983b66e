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
	"math"
)

// Cosine is an angle, stored as its cosine.  Comparing the dot product of
// two unit vectors against a Cosine avoids trigonometric calls in the
// inner loop.
type Cosine float64

// Degrees returns the Cosine of an angle given in degrees.
func Degrees(deg float64) Cosine {
	return Cosine(math.Cos(deg * math.Pi / 180))
}

// Radians returns the Cosine of an angle given in radians.
func Radians(rad float64) Cosine {
	return Cosine(math.Cos(rad))
}

// Degrees returns the angle in degrees.
func (c Cosine) Degrees() float64 {
	return math.Acos(max(-1, min(1, float64(c)))) * 180 / math.Pi
}

// UTurnBehavior selects how a near-reversal between two edges is joined.
type UTurnBehavior int

const (
	// UTurnChamfer emits the two raw offset endpoints, connected by a
	// straight chamfer edge.
	UTurnChamfer UTurnBehavior = iota
)

func (b UTurnBehavior) String() string {
	switch b {
	case UTurnChamfer:
		return "chamfer"
	default:
		return fmt.Sprintf("UTurnBehavior(%d)", int(b))
	}
}

// VarDistParallelBehavior selects how two parallel adjacent edges with
// different offset distances are joined.
type VarDistParallelBehavior int

const (
	// ParallelSkip drops the shared vertex.  The neighbouring output points
	// are joined directly.
	ParallelSkip VarDistParallelBehavior = iota

	// ParallelProject projects the shared vertex onto the nearer of the two
	// offset lines.
	ParallelProject

	// ParallelProportional interpolates the offset distance linearly
	// between the midpoints of the two edges.
	ParallelProportional

	// ParallelStep emits both offset endpoints, joined by a perpendicular
	// step.
	ParallelStep
)

func (b VarDistParallelBehavior) String() string {
	switch b {
	case ParallelSkip:
		return "skip"
	case ParallelProject:
		return "project"
	case ParallelProportional:
		return "proportional"
	case ParallelStep:
		return "step"
	default:
		return fmt.Sprintf("VarDistParallelBehavior(%d)", int(b))
	}
}

// SkewChoice selects the corner point when two 3D offset edges pass each
// other at a distance below the skew tolerance.
type SkewChoice int

const (
	// SkewMidpoint uses the midpoint of the two closest points.
	SkewMidpoint SkewChoice = iota

	// SkewIncoming uses the closest point on the incoming offset edge.
	SkewIncoming

	// SkewOutgoing uses the closest point on the outgoing offset edge.
	SkewOutgoing
)

func (c SkewChoice) String() string {
	switch c {
	case SkewMidpoint:
		return "midpoint"
	case SkewIncoming:
		return "incoming"
	case SkewOutgoing:
		return "outgoing"
	default:
		return fmt.Sprintf("SkewChoice(%d)", int(c))
	}
}

// Options controls how corners are joined.  The zero value is not useful;
// use [NewOptions] to obtain the defaults.
//
// Options are only read during an offset call, so one value can be shared
// between concurrent calls.
type Options struct {
	// UTurn selects the join for turns sharper than UTurnAngle.
	UTurn UTurnBehavior

	// Parallel selects the join between parallel edges whose distances
	// differ.
	Parallel VarDistParallelBehavior

	// AngleTolerance is the largest angle between two edge directions
	// for which the edges count as parallel.
	AngleTolerance Cosine

	// UTurnAngle is the turning angle beyond which a corner is treated
	// as a U-turn.  Must be larger than AngleTolerance.
	UTurnAngle Cosine

	// LengthTolerance is the minimal edge length.  Shorter edges are
	// rejected with TooShortSegment.  Must be positive.
	LengthTolerance float64

	// SkewTolerance is the largest distance between two skew offset edges
	// in 3D for which a corner point is still formed.  Beyond this the
	// corner is chamfered.
	SkewTolerance float64

	// Skew selects the corner point for skew offset edges in 3D.
	Skew SkewChoice
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		UTurn:           UTurnChamfer,
		Parallel:        ParallelStep,
		AngleTolerance:  Degrees(defaultAngleTolerance),
		UTurnAngle:      Degrees(defaultUTurnAngle),
		LengthTolerance: defaultLengthTolerance,
		SkewTolerance:   defaultSkewTolerance,
		Skew:            SkewMidpoint,
	}
}

// Default values for the options.
const (
	// defaultAngleTolerance is the parallel threshold in degrees.
	defaultAngleTolerance = 1e-3

	// defaultUTurnAngle is the U-turn threshold in degrees.
	defaultUTurnAngle = 175.0

	// defaultLengthTolerance is the minimal edge length.
	defaultLengthTolerance = 1e-9

	// defaultSkewTolerance is the largest accepted separation of two 3D
	// offset edges at a corner.
	defaultSkewTolerance = 1e-6
)

func (o *Options) validate() error {
	switch o.UTurn {
	case UTurnChamfer:
	default:
		return errConfig("unsupported U-turn behaviour %s", o.UTurn)
	}
	switch o.Parallel {
	case ParallelSkip, ParallelProject, ParallelProportional, ParallelStep:
	default:
		return errConfig("unsupported parallel behaviour %s", o.Parallel)
	}
	switch o.Skew {
	case SkewMidpoint, SkewIncoming, SkewOutgoing:
	default:
		return errConfig("unsupported skew choice %s", o.Skew)
	}

	if !(o.LengthTolerance > 0) || math.IsInf(o.LengthTolerance, 0) {
		return errConfig("length tolerance %g must be positive", o.LengthTolerance)
	}
	if !(o.SkewTolerance >= 0) {
		return errConfig("skew tolerance %g must not be negative", o.SkewTolerance)
	}
	if !(o.AngleTolerance > -1 && o.AngleTolerance <= 1) {
		return errConfig("angle tolerance cosine %g out of range", float64(o.AngleTolerance))
	}
	if !(o.UTurnAngle >= -1 && o.UTurnAngle < o.AngleTolerance) {
		return errConfig("U-turn angle %g° must exceed angle tolerance %g°",
			o.UTurnAngle.Degrees(), o.AngleTolerance.Degrees())
	}
	return nil
}
