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
	"seehuhn.de/go/geom/vec"
)

// Shape is a cleaned output primitive, either a [Circle] or a
// [Polygon].
type Shape interface {
	isShape()
}

// Circle is a circle fitted to a traced contour.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// Polygon is a closed polygon fitted to a traced contour.  The closing
// edge from the last vertex back to the first is implied.
type Polygon struct {
	Vertices []vec.Vec2
}

func (Circle) isShape()  {}
func (Polygon) isShape() {}
