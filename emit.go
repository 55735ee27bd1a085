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
	"bytes"
	"fmt"
	"io"
	"strings"
)

const (
	svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`
	svgFooter = "</svg>\n"

	svgCircle  = `  <circle cx="%d" cy="%d" r="%d" stroke="black" fill="none"/>` + "\n"
	svgPolygon = `  <polygon points="%s" stroke="black" fill="none"/>` + "\n"
)

// WriteSVG writes the cleaned drawing as an SVG document.  The output
// is assembled in memory first, so nothing is written if any shape
// fails to format.
func (res *Result) WriteSVG(w io.Writer) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, svgHeader, res.Width, res.Height, res.Width, res.Height)
	for _, shape := range res.Shapes {
		switch s := shape.(type) {
		case Circle:
			fmt.Fprintf(&buf, svgCircle,
				pixel(s.Center.X), pixel(s.Center.Y), pixel(s.Radius))
		case Polygon:
			var pts strings.Builder
			for i, v := range s.Vertices {
				if i > 0 {
					pts.WriteByte(' ')
				}
				fmt.Fprintf(&pts, "%g,%g", v.X, v.Y)
			}
			fmt.Fprintf(&buf, svgPolygon, pts.String())
		}
	}
	buf.WriteString(svgFooter)

	_, err := w.Write(buf.Bytes())
	return err
}
