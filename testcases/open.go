package testcases

var openCases = []TestCase{
	{
		Name:      "segment",
		Points:    poly(0, 0, 10, 0),
		Distances: []float64{2},
		Want:      poly(0, 2, 10, 2),
	},
	{
		Name:      "l_shape_inner",
		Points:    poly(0, 0, 10, 0, 10, 10),
		Distances: []float64{1},
		Want:      poly(0, 1, 9, 1, 9, 10),
	},
	{
		Name:      "l_shape_outer",
		Points:    poly(0, 0, 10, 0, 10, 10),
		Distances: []float64{-1},
		Want:      poly(0, -1, 11, -1, 11, 10),
	},
	{
		Name:      "zigzag",
		Points:    poly(0, 0, 10, 0, 10, 10, 20, 10),
		Distances: []float64{1},
		Want:      poly(0, 1, 9, 1, 9, 11, 20, 11),
	},
	{
		Name:      "straight_through",
		Points:    poly(0, 0, 10, 0, 20, 0),
		Distances: []float64{2, 2},
		Want:      poly(0, 2, 10, 2, 20, 2),
	},
}
