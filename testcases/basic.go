package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

var basicCases = []TestCase{
	{
		Name:      "square_inward",
		Points:    poly(0, 0, 10, 0, 10, 10, 0, 10),
		Distances: []float64{1},
		Closed:    true,
		Want:      poly(1, 1, 9, 1, 9, 9, 1, 9),
	},
	{
		Name:      "square_outward",
		Points:    poly(0, 0, 10, 0, 10, 10, 0, 10),
		Distances: []float64{-1},
		Closed:    true,
		Want:      poly(-1, -1, 11, -1, 11, 11, -1, 11),
	},
	{
		Name:      "square_clockwise",
		Points:    poly(0, 0, 0, 10, 10, 10, 10, 0),
		Distances: []float64{1},
		Closed:    true,
		Want:      poly(-1, -1, -1, 11, 11, 11, 11, -1),
	},
	{
		Name:      "triangle_inward",
		Points:    poly(0, 0, 6, 0, 0, 6),
		Distances: []float64{1},
		Closed:    true,
		Want: []vec.Vec2{
			pt(1, 1),
			pt(5-math.Sqrt2, 1),
			pt(1, 5-math.Sqrt2),
		},
	},
	{
		Name:      "square_per_edge",
		Points:    poly(0, 0, 10, 0, 10, 10, 0, 10),
		Distances: []float64{1, 2, 3, 4},
		Closed:    true,
		Want:      poly(4, 1, 8, 1, 8, 7, 4, 7),
	},
}
