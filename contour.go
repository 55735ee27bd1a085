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
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Contour is the external boundary of one connected ink region, as an
// ordered, closed sequence of pixel coordinates (the closing edge from
// the last point back to the first is implied).  Contours are immutable
// once returned by FindContours.
type Contour []image.Point

// Perimeter returns the closed arc length of the contour.
func (ct Contour) Perimeter() float64 {
	n := len(ct)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := range n {
		p := ct[i]
		q := ct[(i+1)%n]
		dx := float64(q.X - p.X)
		dy := float64(q.Y - p.Y)
		sum += math.Hypot(dx, dy)
	}
	return sum
}

// Area returns the area enclosed by the contour, computed with the
// shoelace formula.
func (ct Contour) Area() float64 {
	n := len(ct)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		p := ct[i]
		q := ct[(i+1)%n]
		sum += float64(p.X)*float64(q.Y) - float64(q.X)*float64(p.Y)
	}
	return math.Abs(sum) / 2
}

// BoundingBox returns the axis-aligned bounding rectangle of the
// contour, with the usual exclusive Max convention.
func (ct Contour) BoundingBox() image.Rectangle {
	if len(ct) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: ct[0], Max: ct[0]}
	for _, p := range ct[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	r.Max.X++
	r.Max.Y++
	return r
}

// vertices returns the contour points as floating point coordinates.
func (ct Contour) vertices() []vec.Vec2 {
	pts := make([]vec.Vec2, len(ct))
	for i, p := range ct {
		pts[i] = vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
	}
	return pts
}

// The eight neighbour directions in clockwise order (y grows
// downwards), starting east.  Consecutive entries are adjacent pixels,
// which the boundary tracer relies on.
var neighbours = [8]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// neighbourIndex maps a neighbour offset back to its position in the
// clockwise order; indexed by [dy+1][dx+1].
var neighbourIndex = [3][3]int{
	{5, 6, 7},
	{4, -1, 0},
	{3, 2, 1},
}

// FindContours traces the external boundary of every maximal
// 8-connected foreground region of the canvas.  Contours are returned
// in scan order of their topmost-leftmost pixel, which makes the output
// deterministic for a fixed input.  Holes inside a region are not
// reported.  An empty canvas yields no contours.
func FindContours(c *Canvas) []Contour {
	visited := make([]bool, c.Width*c.Height)

	var contours []Contour
	for y := range c.Height {
		for x := range c.Width {
			if visited[y*c.Width+x] || !c.IsInk(x, y) {
				continue
			}
			start := image.Point{X: x, Y: y}
			contours = append(contours, traceBoundary(c, start))
			markRegion(c, start, visited)
		}
	}
	return contours
}

// traceBoundary follows the external boundary of the region containing
// start, using Moore neighbour tracing with Jacob's stopping criterion.
// start must be the first pixel of its region in scan order, so that
// its western neighbour is background.
func traceBoundary(c *Canvas, start image.Point) Contour {
	contour := Contour{start}

	startBacktrack := image.Point{X: start.X - 1, Y: start.Y}
	cur := start
	backtrack := startBacktrack

	// The boundary cannot be longer than the number of pixel edges;
	// the bound guards against the rare failure modes of the stopping
	// criterion.
	maxSteps := 4 * c.Width * c.Height

	for range maxSteps {
		next, newBacktrack, ok := nextBoundaryPixel(c, cur, backtrack)
		if !ok {
			break // isolated pixel
		}
		if next == start && newBacktrack == startBacktrack {
			break
		}
		cur, backtrack = next, newBacktrack
		contour = append(contour, cur)
	}
	return contour
}

// nextBoundaryPixel rotates clockwise around cur, starting just after
// the backtrack pixel, and returns the first ink pixel together with
// the background pixel checked immediately before it.
func nextBoundaryPixel(c *Canvas, cur, backtrack image.Point) (next, newBacktrack image.Point, ok bool) {
	prev := backtrack
	d := neighbourIndex[prev.Y-cur.Y+1][prev.X-cur.X+1]
	for range 8 {
		d = (d + 1) % 8
		n := cur.Add(neighbours[d])
		if c.IsInk(n.X, n.Y) {
			return n, prev, true
		}
		prev = n
	}
	return image.Point{}, image.Point{}, false
}

// markRegion flood-fills the 8-connected region containing start in the
// visited map, so that the scan does not start a second trace for the
// same region.
func markRegion(c *Canvas, start image.Point, visited []bool) {
	stack := []image.Point{start}
	visited[start.Y*c.Width+start.X] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbours {
			n := p.Add(d)
			if n.X < 0 || n.X >= c.Width || n.Y < 0 || n.Y >= c.Height {
				continue
			}
			idx := n.Y*c.Width + n.X
			if visited[idx] || !c.IsInk(n.X, n.Y) {
				continue
			}
			visited[idx] = true
			stack = append(stack, n)
		}
	}
}
