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

// Command genpng rasterises every test case to a PNG file.  The band
// between the source polyline and its offset is painted black.  Run from
// the module root directory.
package main

import (
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/offset/testcases"
)

const (
	outDir = "testdata/png"

	size   = 200 // pixels
	margin = 10  // pixels
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	r := vector.NewRasterizer(size, size)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Err != 0 {
				continue
			}
			name := category + "_" + tc.Name
			pngPath := filepath.Join(outDir, name+".png")
			if err := generatePNG(r, tc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePNG(r *vector.Rasterizer, tc testcases.TestCase, pngPath string) error {
	res, err := tc.Run()
	if err != nil {
		return err
	}

	bbox := tc.Bounds(res)
	w := max(bbox.URx-bbox.LLx, bbox.URy-bbox.LLy, 1)
	scale := float64(size-2*margin) / w
	toPixel := func(p vec.Vec2) (float32, float32) {
		x := margin + scale*(p.X-bbox.LLx)
		y := size - margin - scale*(p.Y-bbox.LLy)
		return float32(x), float32(y)
	}

	back := slices.Clone(res)
	slices.Reverse(back)

	r.Reset(size, size)
	if tc.Closed {
		// Source and offset run in the same direction.  Tracing the
		// offset backwards leaves only the band between them covered.
		addLoop(r, toPixel, tc.Points)
		addLoop(r, toPixel, back)
	} else {
		addLoop(r, toPixel, slices.Concat(tc.Points, back))
	}

	dst := image.NewGray(image.Rect(0, 0, size, size))
	for i := range dst.Pix {
		dst.Pix[i] = 0xFF
	}
	r.Draw(dst, dst.Bounds(), image.Black, image.Point{})

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// addLoop adds the closed polygon through pts to r.
func addLoop(r *vector.Rasterizer, toPixel func(vec.Vec2) (float32, float32), pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	r.MoveTo(toPixel(pts[0]))
	for _, p := range pts[1:] {
		r.LineTo(toPixel(p))
	}
	r.ClosePath()
}
