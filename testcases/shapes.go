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

package testcases

var circleCases = []TestCase{
	{
		Name:        "bezier_circle",
		SVG:         document(200, 200, circlePath(100, 100, 60)),
		WantCircles: 1,
	},
	{
		Name:        "small_circle",
		SVG:         document(100, 100, circlePath(50, 50, 20)),
		WantCircles: 1,
	},
	{
		Name:        "arc_circle",
		SVG:         document(200, 200, "M 40 100 A 60 60 0 1 1 160 100 A 60 60 0 1 1 40 100 Z"),
		WantCircles: 1,
	},
	{
		Name:        "two_circles",
		SVG:         document(300, 160, circlePath(80, 80, 50), circlePath(220, 80, 50)),
		WantCircles: 2,
	},
}

var polygonCases = []TestCase{
	{
		Name:         "square",
		SVG:          document(200, 200, squarePath(50, 50, 100)),
		WantPolygons: 1,
	},
	{
		Name:         "triangle",
		SVG:          document(200, 200, trianglePath(100, 40, 170, 160, 30, 160)),
		WantPolygons: 1,
	},
	{
		Name:         "tall_rectangle",
		SVG:          document(200, 300, "M 60 40 L 140 40 L 140 260 L 60 260 Z"),
		WantPolygons: 1,
	},
	{
		Name:         "open_corner_square",
		SVG:          document(200, 200, "M 50 50 L 150 50 L 150 150 L 50 150 L 50 52"),
		WantPolygons: 1,
	},
}

var mixedCases = []TestCase{
	{
		Name:         "circle_and_square",
		SVG:          document(360, 200, circlePath(90, 100, 60), squarePath(220, 50, 100)),
		WantCircles:  1,
		WantPolygons: 1,
	},
	{
		Name: "empty",
		SVG:  document(100, 100),
	},
	{
		Name: "degenerate_point",
		SVG:  document(100, 100, "M 5 5 L 5 5"),
		// a single pixel carries no shape information
		WantPolygons: 0,
	},
}
