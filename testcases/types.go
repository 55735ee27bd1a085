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

// Package testcases provides shared input documents for testing the
// sketch cleanup pipeline.
package testcases

import (
	"fmt"
	"strings"
)

// TestCase defines a single cleanup test.
type TestCase struct {
	Name         string // lowercase a-z and _ only
	SVG          string // the input document
	WantCircles  int    // number of circles in the output
	WantPolygons int    // number of polygons in the output
}

// document wraps path data elements in a complete SVG document.
func document(width, height int, paths ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		width, height)
	for _, d := range paths {
		fmt.Fprintf(&b, `<path d="%s"/>`, d)
	}
	b.WriteString(`</svg>`)
	return b.String()
}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// circlePath approximates a circle by four cubic Bezier curves.
func circlePath(cx, cy, r float64) string {
	k := kappa * r
	return fmt.Sprintf("M %g %g C %g %g %g %g %g %g C %g %g %g %g %g %g "+
		"C %g %g %g %g %g %g C %g %g %g %g %g %g Z",
		cx+r, cy,
		cx+r, cy+k, cx+k, cy+r, cx, cy+r,
		cx-k, cy+r, cx-r, cy+k, cx-r, cy,
		cx-r, cy-k, cx-k, cy-r, cx, cy-r,
		cx+k, cy-r, cx+r, cy-k, cx+r, cy)
}

// squarePath draws an axis-aligned square with the given corner and
// side length.
func squarePath(x, y, side float64) string {
	return fmt.Sprintf("M %g %g L %g %g L %g %g L %g %g Z",
		x, y, x+side, y, x+side, y+side, x, y+side)
}

// trianglePath draws a triangle through the three given points.
func trianglePath(x1, y1, x2, y2, x3, y3 float64) string {
	return fmt.Sprintf("M %g %g L %g %g L %g %g Z", x1, y1, x2, y2, x3, y3)
}
