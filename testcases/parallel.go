package testcases

import "seehuhn.de/go/offset"

// parallelCases offset a straight polyline with a different distance on
// each side of the middle vertex.
var parallelCases = []TestCase{
	{
		Name:      "step",
		Points:    poly(0, 0, 10, 0, 20, 0),
		Distances: []float64{1, 3},
		Parallel:  join(offset.ParallelStep),
		Want:      poly(0, 1, 10, 1, 10, 3, 20, 3),
	},
	{
		// without an explicit policy, the library default applies
		Name:      "default",
		Points:    poly(0, 0, 10, 0, 20, 0),
		Distances: []float64{1, 3},
		Want:      poly(0, 1, 10, 1, 10, 3, 20, 3),
	},
	{
		Name:      "skip",
		Points:    poly(0, 0, 10, 0, 20, 0),
		Distances: []float64{1, 3},
		Parallel:  join(offset.ParallelSkip),
		Want:      poly(0, 1, 20, 3),
	},
	{
		Name:      "project",
		Points:    poly(0, 0, 10, 0, 20, 0),
		Distances: []float64{1, 3},
		Parallel:  join(offset.ParallelProject),
		Want:      poly(0, 1, 10, 1, 20, 3),
	},
	{
		Name:      "project_far_side",
		Points:    poly(0, 0, 10, 0, 20, 0),
		Distances: []float64{-3, 2},
		Parallel:  join(offset.ParallelProject),
		Want:      poly(0, -3, 10, 2, 20, 2),
	},
	{
		Name:      "proportional",
		Points:    poly(0, 0, 10, 0, 20, 0),
		Distances: []float64{1, 3},
		Parallel:  join(offset.ParallelProportional),
		Want:      poly(0, 1, 10, 2, 20, 3),
	},
	{
		Name:      "proportional_uneven",
		Points:    poly(0, 0, 30, 0, 40, 0),
		Distances: []float64{1, 3},
		Parallel:  join(offset.ParallelProportional),
		Want:      poly(0, 1, 30, 2.5, 40, 3),
	},
	{
		Name:      "closed_step",
		Points:    poly(0, 0, 10, 0, 20, 0, 20, 10, 0, 10),
		Distances: []float64{1, 2, 1, 1, 1},
		Closed:    true,
		Parallel:  join(offset.ParallelStep),
		Want:      poly(1, 1, 10, 1, 10, 2, 19, 2, 19, 9, 1, 9),
	},
}
