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
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
)

// SegmentKind identifies the parametric form of a Segment.
type SegmentKind uint8

const (
	SegLine SegmentKind = iota
	SegQuad
	SegCubic
	SegArc
)

// Segment is one piece of a drawn path.  A Segment is immutable once
// constructed; use the constructor functions rather than building the
// struct directly, since arcs are stored in center parametrization.
type Segment struct {
	Kind SegmentKind

	// Start and End are the segment endpoints, shared by all kinds.
	Start vec.Vec2
	End   vec.Vec2

	// C1 is the control point of quadratic segments and the first
	// control point of cubic segments.  C2 is the second control
	// point of cubic segments.
	C1 vec.Vec2
	C2 vec.Vec2

	// Arc state (SegArc only), in center parametrization.
	Center     vec.Vec2
	Radii      vec.Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// LineSegment returns the straight segment from p0 to p1.
func LineSegment(p0, p1 vec.Vec2) Segment {
	return Segment{Kind: SegLine, Start: p0, End: p1}
}

// QuadSegment returns the quadratic Bézier segment with control point c.
func QuadSegment(p0, c, p1 vec.Vec2) Segment {
	return Segment{Kind: SegQuad, Start: p0, C1: c, End: p1}
}

// CubicSegment returns the cubic Bézier segment with control points c1, c2.
func CubicSegment(p0, c1, c2, p1 vec.Vec2) Segment {
	return Segment{Kind: SegCubic, Start: p0, C1: c1, C2: c2, End: p1}
}

// ArcSegment returns the elliptical arc from p0 to p1 in SVG endpoint
// parametrization: radii, rotation of the ellipse axes in radians, and
// the large-arc/sweep flags.  Degenerate arcs (coincident endpoints or
// a vanishing radius) collapse to a line segment, following the SVG
// specification.
func ArcSegment(p0, p1 vec.Vec2, radii vec.Vec2, xRotation float64, largeArc, sweep bool) Segment {
	center, radii, theta1, dTheta, ok := arcCenter(p0, p1, radii, xRotation, largeArc, sweep)
	if !ok {
		return LineSegment(p0, p1)
	}
	return Segment{
		Kind:       SegArc,
		Start:      p0,
		End:        p1,
		Center:     center,
		Radii:      radii,
		StartAngle: theta1,
		SweepAngle: dTheta,
		XRotation:  xRotation,
	}
}

// PointAt evaluates the segment at parameter t in [0, 1] using the
// exact parametric formula for its kind.
func (s Segment) PointAt(t float64) vec.Vec2 {
	switch s.Kind {
	case SegQuad:
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		return s.Start.Mul(omt * omt).Add(s.C1.Mul(2 * omt * t)).Add(s.End.Mul(t * t))
	case SegCubic:
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		return s.Start.Mul(omt3).
			Add(s.C1.Mul(3 * omt2 * t)).
			Add(s.C2.Mul(3 * omt * t2)).
			Add(s.End.Mul(t3))
	case SegArc:
		// the center parametrization does not reproduce the endpoints
		// exactly, but adjacent segments must join without gaps
		if t <= 0 {
			return s.Start
		} else if t >= 1 {
			return s.End
		}
		return s.Center.Add(ellipsePoint(s.Radii, s.XRotation, s.StartAngle+t*s.SweepAngle))
	default: // SegLine
		return s.Start.Mul(1 - t).Add(s.End.Mul(t))
	}
}

// Points returns a lazy, restartable sequence of n points covering
// t = 0..1 inclusive.  Values of n below 2 are treated as 2.  For a
// zero-length segment every yielded point coincides with the start.
func (s Segment) Points(n int) iter.Seq[vec.Vec2] {
	if n < 2 {
		n = 2
	}
	return func(yield func(vec.Vec2) bool) {
		for i := range n {
			t := float64(i) / float64(n-1)
			if !yield(s.PointAt(t)) {
				return
			}
		}
	}
}

// ellipsePoint returns the point on an origin-centered ellipse with the
// given radii and axis rotation, at ellipse angle theta.
func ellipsePoint(radii vec.Vec2, xRotation, theta float64) vec.Vec2 {
	sin, cos := math.Sincos(theta)
	u := radii.X * cos
	v := radii.Y * sin
	sinR, cosR := math.Sincos(xRotation)
	return vec.Vec2{
		X: u*cosR - v*sinR,
		Y: u*sinR + v*cosR,
	}
}

// arcCenter converts an arc from SVG endpoint parametrization to center
// parametrization, following section B.2.4 of the SVG specification.
// Out-of-range radii are scaled up as required there.  ok is false for
// degenerate arcs which must be treated as lines.
func arcCenter(p0, p1, radii vec.Vec2, xRotation float64, largeArc, sweep bool) (center, radiiOut vec.Vec2, theta1, dTheta float64, ok bool) {
	rx := math.Abs(radii.X)
	ry := math.Abs(radii.Y)
	if rx == 0 || ry == 0 || p0 == p1 {
		return vec.Vec2{}, vec.Vec2{}, 0, 0, false
	}

	sinR, cosR := math.Sincos(xRotation)

	// Step 1: half the vector between the endpoints, in the rotated frame.
	hx := (p0.X - p1.X) / 2
	hy := (p0.Y - p1.Y) / 2
	x1p := cosR*hx + sinR*hy
	y1p := -sinR*hx + cosR*hy

	// Step 2: scale radii up if the endpoints are too far apart.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Step 3: center in the rotated frame.
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		co = -co
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx

	// Step 4: back to the original frame.
	center = vec.Vec2{
		X: cosR*cxp - sinR*cyp + (p0.X+p1.X)/2,
		Y: sinR*cxp + cosR*cyp + (p0.Y+p1.Y)/2,
	}

	theta1 = vecAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dTheta = vecAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	} else if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	}

	return center, vec.Vec2{X: rx, Y: ry}, theta1, dTheta, true
}

// vecAngle returns the signed angle from vector (ux, uy) to (vx, vy).
func vecAngle(ux, uy, vx, vy float64) float64 {
	dot := ux*vx + uy*vy
	norm := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	a := math.Acos(math.Min(1, math.Max(-1, dot/norm)))
	if ux*vy-uy*vx < 0 {
		return -a
	}
	return a
}
