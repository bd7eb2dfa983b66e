// Command export writes the test cases, together with the computed offset
// polylines, to JSON.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string      `json:"name"`
	Points    [][]float64 `json:"points"`
	Distances []float64   `json:"distances"`
	Closed    bool        `json:"closed,omitempty"`
	Parallel  string      `json:"parallel"`
	Result    [][]float64 `json:"result,omitempty"`
	Error     string      `json:"error,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Points:    pointsToJSON(tc.Points),
		Distances: tc.Distances,
		Closed:    tc.Closed,
		Parallel:  tc.Options().Parallel.String(),
	}

	res, err := tc.Run()
	if err != nil {
		jtc.Error = err.Error()
	} else {
		jtc.Result = pointsToJSON(res)
	}
	return jtc
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, pt := range pts {
		res[i] = []float64{pt.X, pt.Y}
	}
	return res
}
