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
	"math"

	"seehuhn.de/go/geom/vec"
)

// DefaultPolygonEpsilonFactor gives the simplification tolerance for
// polygon output, as a fraction of the contour perimeter.
const DefaultPolygonEpsilonFactor = 0.02

// Fitter turns traced contours into output shapes.
type Fitter struct {
	// Classifier decides between circle and polygon output.
	Classifier *Classifier

	// PolygonEpsilonFactor scales the contour perimeter to the
	// simplification tolerance of polygon output.
	PolygonEpsilonFactor float64
}

// NewFitter returns a fitter with the default classifier and tolerance.
func NewFitter() *Fitter {
	return &Fitter{
		Classifier:           NewClassifier(),
		PolygonEpsilonFactor: DefaultPolygonEpsilonFactor,
	}
}

// Fit converts a contour into a cleaned shape.  Contours with fewer
// than three points carry no usable shape information; for these, ok is
// false and no shape is returned.
func (f *Fitter) Fit(ct Contour) (Shape, bool) {
	if len(ct) < 3 {
		return nil, false
	}

	pts := ct.vertices()
	if f.Classifier.IsCircle(ct) {
		center, radius := minEnclosingCircle(pts)
		return Circle{Center: center, Radius: radius}, true
	}

	eps := f.PolygonEpsilonFactor * ct.Perimeter()
	return Polygon{Vertices: simplifyClosed(pts, eps)}, true
}

// containsEps absorbs rounding errors in the circle inclusion tests.
const containsEps = 1e-9

func circleContains(center vec.Vec2, radius float64, p vec.Vec2) bool {
	return p.Sub(center).Length() <= radius+containsEps
}

// minEnclosingCircle computes the smallest circle containing all the
// given points, using the incremental construction: whenever a point
// falls outside the current circle it must lie on the boundary of the
// final one, and the circle is rebuilt with that constraint.  The
// construction is deterministic; no randomized shuffling is used, so
// repeated runs on the same contour give identical results.
func minEnclosingCircle(pts []vec.Vec2) (center vec.Vec2, radius float64) {
	if len(pts) == 0 {
		return vec.Vec2{}, 0
	}

	center, radius = pts[0], 0
	for i := 1; i < len(pts); i++ {
		if circleContains(center, radius, pts[i]) {
			continue
		}
		center, radius = circleWithPoint(pts[:i], pts[i])
	}
	return center, radius
}

// circleWithPoint returns the smallest circle containing pts with q on
// its boundary.
func circleWithPoint(pts []vec.Vec2, q vec.Vec2) (center vec.Vec2, radius float64) {
	center, radius = q, 0
	for i := 0; i < len(pts); i++ {
		if circleContains(center, radius, pts[i]) {
			continue
		}
		center, radius = circleWithTwoPoints(pts[:i], pts[i], q)
	}
	return center, radius
}

// circleWithTwoPoints returns the smallest circle containing pts with
// both p and q on its boundary.
func circleWithTwoPoints(pts []vec.Vec2, p, q vec.Vec2) (center vec.Vec2, radius float64) {
	center, radius = circleFromDiameter(p, q)
	for _, r := range pts {
		if circleContains(center, radius, r) {
			continue
		}
		center, radius = circumcircle(p, q, r)
	}
	return center, radius
}

// circleFromDiameter returns the circle with the segment pq as its
// diameter.
func circleFromDiameter(p, q vec.Vec2) (center vec.Vec2, radius float64) {
	center = p.Add(q).Mul(0.5)
	return center, q.Sub(p).Length() / 2
}

// circumcircle returns the circle through the three given points.  For
// (nearly) collinear points it falls back to the smallest circle
// containing them, which is determined by the two outermost points.
func circumcircle(a, b, c vec.Vec2) (center vec.Vec2, radius float64) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * (ab.X*ac.Y - ab.Y*ac.X)
	if math.Abs(d) < 1e-12 {
		// collinear; the widest pair spans the circle
		center, radius = circleFromDiameter(a, b)
		if r2 := c.Sub(b).Length() / 2; r2 > radius {
			center, radius = circleFromDiameter(b, c)
		}
		if r3 := c.Sub(a).Length() / 2; r3 > radius {
			center, radius = circleFromDiameter(a, c)
		}
		return center, radius
	}

	abLen2 := ab.X*ab.X + ab.Y*ab.Y
	acLen2 := ac.X*ac.X + ac.Y*ac.Y
	ux := (ac.Y*abLen2 - ab.Y*acLen2) / d
	uy := (ab.X*acLen2 - ac.X*abLen2) / d
	center = vec.Vec2{X: a.X + ux, Y: a.Y + uy}
	return center, center.Sub(a).Length()
}

// simplifyClosed reduces a closed point sequence using the
// Ramer-Douglas-Peucker algorithm.  The ring is split at the first
// point and at the point farthest from it; each half is simplified as
// an open chain and the halves are rejoined.  Splitting at fixed,
// geometry-determined points keeps the result stable: simplifying an
// already simplified ring with the same tolerance changes nothing.
func simplifyClosed(pts []vec.Vec2, eps float64) []vec.Vec2 {
	n := len(pts)
	if n < 3 {
		out := make([]vec.Vec2, n)
		copy(out, pts)
		return out
	}

	// find the point farthest from pts[0]
	k := 0
	var maxDist float64
	for i := 1; i < n; i++ {
		if d := pts[i].Sub(pts[0]).Length(); d > maxDist {
			maxDist = d
			k = i
		}
	}
	if k == 0 {
		// all points coincide
		return []vec.Vec2{pts[0]}
	}

	first := rdp(pts[:k+1], eps)
	secondPts := make([]vec.Vec2, 0, n-k+1)
	secondPts = append(secondPts, pts[k:]...)
	secondPts = append(secondPts, pts[0])
	second := rdp(secondPts, eps)

	out := make([]vec.Vec2, 0, len(first)+len(second)-2)
	out = append(out, first...)
	out = append(out, second[1:len(second)-1]...)
	return out
}

// rdp simplifies an open polyline, keeping both endpoints.
func rdp(pts []vec.Vec2, eps float64) []vec.Vec2 {
	if len(pts) < 3 {
		out := make([]vec.Vec2, len(pts))
		copy(out, pts)
		return out
	}

	k := 0
	var maxDist float64
	for i := 1; i < len(pts)-1; i++ {
		if d := perpDistance(pts[i], pts[0], pts[len(pts)-1]); d > maxDist {
			maxDist = d
			k = i
		}
	}
	if maxDist <= eps {
		return []vec.Vec2{pts[0], pts[len(pts)-1]}
	}

	left := rdp(pts[:k+1], eps)
	right := rdp(pts[k:], eps)
	return append(left, right[1:]...)
}

// perpDistance returns the distance from p to the line segment's chord
// from a to b.  If a and b coincide, the distance from p to a is used.
func perpDistance(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	length := d.Length()
	if length < 1e-12 {
		return p.Sub(a).Length()
	}
	return math.Abs(d.X*(a.Y-p.Y)-d.Y*(a.X-p.X)) / length
}
