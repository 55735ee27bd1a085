// seehuhn.de/go/sketch - cleanup of hand-drawn vector sketches
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

package sketch

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// bezierCircle approximates quarter circles by cubic Bézier curves;
// control points sit at distance bezierCircle*r from the endpoints.
const bezierCircle = 0.5522847498

// WritePDF writes the cleaned drawing as a single-page PDF file.
// Shapes are stroked in black on a page matching the canvas size.
func (res *Result) WritePDF(filename string) error {
	paper := &pdf.Rectangle{
		URx: float64(res.Width),
		URy: float64(res.Height),
	}
	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// flip to the image convention with y growing downwards
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(res.Height)})
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)

	for _, shape := range res.Shapes {
		switch s := shape.(type) {
		case Circle:
			cx, cy, r := s.Center.X, s.Center.Y, s.Radius
			k := bezierCircle * r
			page.MoveTo(cx+r, cy)
			page.CurveTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
			page.CurveTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
			page.CurveTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
			page.CurveTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
			page.ClosePath()
			page.Stroke()
		case Polygon:
			if len(s.Vertices) < 2 {
				continue
			}
			page.MoveTo(s.Vertices[0].X, s.Vertices[0].Y)
			for _, v := range s.Vertices[1:] {
				page.LineTo(v.X, v.Y)
			}
			page.ClosePath()
			page.Stroke()
		}
	}

	return page.Close()
}
