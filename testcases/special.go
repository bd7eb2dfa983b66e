package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset"
)

// hairpinLen is the length of the return edge of the near_reversal case.
var hairpinLen = math.Hypot(10, 0.5)

var uTurnCases = []TestCase{
	{
		Name:      "reversal",
		Points:    poly(0, 0, 10, 0, 0, 0),
		Distances: []float64{1},
		Want:      poly(0, 1, 10, 1, 10, -1, 0, -1),
	},
	{
		Name:      "near_reversal",
		Points:    poly(0, 0, 10, 0, 0, 0.5),
		Distances: []float64{1},
		Want: []vec.Vec2{
			pt(0, 1),
			pt(10, 1),
			pt(10-0.5/hairpinLen, -10/hairpinLen),
			pt(-0.5/hairpinLen, 0.5-10/hairpinLen),
		},
	},
}

var chamferCases = []TestCase{
	{
		// The inner offset of the short middle edge would be reversed by
		// a miter at the first corner.
		Name:      "short_inner_edge",
		Points:    poly(0, 0, 10, 0, 10, 1, 20, 1),
		Distances: []float64{2},
		Want:      poly(0, 2, 10, 2, 8, 0, 8, 3, 20, 3),
	},
}

var closingCases = []TestCase{
	{
		Name:      "square_explicit_close",
		Points:    poly(0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		Distances: []float64{1},
		Closed:    true,
		Want:      poly(1, 1, 9, 1, 9, 9, 1, 9, 1, 1),
	},
	{
		Name:      "square_explicit_close_per_edge",
		Points:    poly(0, 0, 10, 0, 10, 10, 0, 10, 0, 0),
		Distances: []float64{1, 2, 3, 4},
		Closed:    true,
		Want:      poly(4, 1, 8, 1, 8, 7, 4, 7, 4, 1),
	},
}

var invalidCases = []TestCase{
	{
		Name:      "zero_length_edge",
		Points:    poly(0, 0, 10, 0, 10, 0, 10, 10),
		Distances: []float64{1},
		Err:       offset.TooShortSegment,
	},
	{
		Name:      "wrong_distance_count",
		Points:    poly(0, 0, 10, 0, 10, 10, 0, 10),
		Distances: []float64{1, 2, 3},
		Closed:    true,
		Err:       offset.InvalidDistanceCount,
	},
	{
		Name:      "open_distance_count",
		Points:    poly(0, 0, 10, 0, 10, 10),
		Distances: []float64{1, 2, 3},
		Err:       offset.InvalidDistanceCount,
	},
	{
		Name:      "single_point",
		Points:    poly(5, 5),
		Distances: []float64{1},
		Err:       offset.TooFewPoints,
	},
}
