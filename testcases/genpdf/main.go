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

// Command genpdf draws every test case to a PDF file, with the source
// polyline in grey and the offset polyline in black.  Run from the module
// root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/offset"
	"seehuhn.de/go/offset/testcases"
)

const (
	outDir = "testdata/pdf"

	pageSize = 200.0 // points
	margin   = 10.0  // points
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Err != 0 {
				continue
			}
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	res, err := tc.Run()
	if err != nil {
		return err
	}

	bbox := tc.Bounds(res)
	w := max(bbox.URx-bbox.LLx, bbox.URy-bbox.LLy, 1)
	scale := (pageSize - 2*margin) / w

	paper := &pdf.Rectangle{URx: pageSize, URy: pageSize}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// map the bounding box into the page, keeping the y axis pointing up
	page.Transform(matrix.Matrix{
		scale, 0, 0, scale,
		margin - scale*bbox.LLx, margin - scale*bbox.LLy,
	})
	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetLineCap(graphics.LineCapRound)
	page.SetMiterLimit(10)

	page.SetLineWidth(2 / scale)
	page.SetStrokeColor(color.DeviceGray(0.7))
	drawPath(page, offset.ToPath(tc.Points, tc.Closed))
	page.Stroke()

	page.SetLineWidth(1 / scale)
	page.SetStrokeColor(color.DeviceGray(0))
	drawPath(page, offset.ToPath(res, tc.Closed))
	page.Stroke()

	return page.Close()
}

// pathBuilder is the part of the page API used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func drawPath(page pathBuilder, p *path.Data) {
	if p == nil {
		return
	}
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
