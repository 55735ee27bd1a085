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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

func TestMinEnclosingCircle(t *testing.T) {
	cases := []struct {
		name       string
		pts        []vec.Vec2
		wantCenter vec.Vec2
		wantRadius float64
	}{
		{
			name:       "single",
			pts:        []vec.Vec2{pt(3, 4)},
			wantCenter: pt(3, 4),
			wantRadius: 0,
		},
		{
			name:       "pair",
			pts:        []vec.Vec2{pt(0, 0), pt(10, 0)},
			wantCenter: pt(5, 0),
			wantRadius: 5,
		},
		{
			name:       "collinear",
			pts:        []vec.Vec2{pt(0, 0), pt(4, 0), pt(10, 0)},
			wantCenter: pt(5, 0),
			wantRadius: 5,
		},
		{
			name:       "right_triangle",
			pts:        []vec.Vec2{pt(0, 0), pt(8, 0), pt(0, 6)},
			wantCenter: pt(4, 3),
			wantRadius: 5,
		},
		{
			name:       "square_corners",
			pts:        []vec.Vec2{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)},
			wantCenter: pt(5, 5),
			wantRadius: 5 * math.Sqrt2,
		},
		{
			name: "interior_points_ignored",
			pts: []vec.Vec2{
				pt(5, 5), pt(4, 6), pt(0, 0), pt(10, 0), pt(10, 10),
				pt(0, 10), pt(2, 3),
			},
			wantCenter: pt(5, 5),
			wantRadius: 5 * math.Sqrt2,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			center, radius := minEnclosingCircle(c.pts)
			if !near(center, c.wantCenter, 1e-9) {
				t.Errorf("center = %v, want %v", center, c.wantCenter)
			}
			if math.Abs(radius-c.wantRadius) > 1e-9 {
				t.Errorf("radius = %g, want %g", radius, c.wantRadius)
			}
		})
	}
}

func TestMinEnclosingCircleCovers(t *testing.T) {
	// every input point must lie inside the result, and at least two
	// points must sit on the boundary
	pts := circleChain(50, 50, 30, 17)
	pts = append(pts, pt(50, 50), pt(55, 40), pt(30, 60))

	center, radius := minEnclosingCircle(pts)
	onBoundary := 0
	for _, p := range pts {
		d := p.Sub(center).Length()
		if d > radius+1e-9 {
			t.Errorf("point %v outside circle (d=%g, r=%g)", p, d, radius)
		}
		if math.Abs(d-radius) < 1e-6 {
			onBoundary++
		}
	}
	if onBoundary < 2 {
		t.Errorf("only %d points on the boundary, want at least 2", onBoundary)
	}
}

func TestMinEnclosingCircleDeterministic(t *testing.T) {
	pts := circleChain(64, 64, 40, 33)
	c1, r1 := minEnclosingCircle(pts)
	c2, r2 := minEnclosingCircle(pts)
	if c1 != c2 || r1 != r2 {
		t.Error("repeated runs give different circles")
	}
}

func TestSimplifyClosedSquare(t *testing.T) {
	// a densely sampled square ring must simplify to its four corners
	var pts []vec.Vec2
	for i := range 50 {
		pts = append(pts, pt(float64(10+i), 10))
	}
	for i := range 50 {
		pts = append(pts, pt(60, float64(10+i)))
	}
	for i := range 50 {
		pts = append(pts, pt(float64(60-i), 60))
	}
	for i := range 50 {
		pts = append(pts, pt(10, float64(60-i)))
	}

	got := simplifyClosed(pts, 2)
	want := []vec.Vec2{pt(10, 10), pt(60, 10), pt(60, 60), pt(10, 60)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("simplified square mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplifyClosedIdempotent(t *testing.T) {
	pts := circleChain(64, 64, 50, 64)
	eps := 3.0

	once := simplifyClosed(pts, eps)
	twice := simplifyClosed(once, eps)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("simplification is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestSimplifyClosedMonotonic(t *testing.T) {
	// larger tolerances never keep more vertices
	pts := circleChain(64, 64, 50, 128)
	prev := len(pts)
	for _, eps := range []float64{0.1, 0.5, 1, 2, 5, 10, 50} {
		n := len(simplifyClosed(pts, eps))
		if n > prev {
			t.Errorf("eps=%g keeps %d vertices, more than %d at smaller eps",
				eps, n, prev)
		}
		prev = n
	}
}

func TestSimplifyClosedDegenerate(t *testing.T) {
	if got := simplifyClosed(nil, 1); len(got) != 0 {
		t.Errorf("nil input gives %d points", len(got))
	}

	two := []vec.Vec2{pt(0, 0), pt(5, 5)}
	if got := simplifyClosed(two, 1); len(got) != 2 {
		t.Errorf("two-point input gives %d points, want 2", len(got))
	}

	same := []vec.Vec2{pt(3, 3), pt(3, 3), pt(3, 3)}
	if got := simplifyClosed(same, 1); len(got) != 1 {
		t.Errorf("coincident input gives %d points, want 1", len(got))
	}
}

func TestFitCircle(t *testing.T) {
	ct := traceShape(t, 128, 128, circleChain(64, 64, 50, 64))
	shape, ok := NewFitter().Fit(ct)
	if !ok {
		t.Fatal("no shape fitted")
	}
	circle, ok := shape.(Circle)
	if !ok {
		t.Fatalf("fitted %T, want Circle", shape)
	}

	// the contour is the outer boundary of a 1-pixel stroke, so the
	// fitted circle is slightly larger than the ideal one
	if !near(circle.Center, pt(64, 64), 2) {
		t.Errorf("center = %v, want near (64,64)", circle.Center)
	}
	if math.Abs(circle.Radius-50) > 2.5 {
		t.Errorf("radius = %g, want near 50", circle.Radius)
	}
}

func TestFitSquare(t *testing.T) {
	ct := traceShape(t, 80, 80, []vec.Vec2{
		pt(10, 10), pt(60, 10), pt(60, 60), pt(10, 60),
	})
	shape, ok := NewFitter().Fit(ct)
	if !ok {
		t.Fatal("no shape fitted")
	}
	poly, ok := shape.(Polygon)
	if !ok {
		t.Fatalf("fitted %T, want Polygon", shape)
	}
	if len(poly.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(poly.Vertices))
	}
	corners := []vec.Vec2{pt(10, 10), pt(60, 10), pt(60, 60), pt(10, 60)}
	for _, want := range corners {
		found := false
		for _, v := range poly.Vertices {
			if near(v, want, 1.5) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no vertex near corner %v", want)
		}
	}
}

func TestFitDegenerate(t *testing.T) {
	f := NewFitter()
	if _, ok := f.Fit(nil); ok {
		t.Error("nil contour fitted")
	}
	if _, ok := f.Fit(Contour{image.Point{X: 1, Y: 1}}); ok {
		t.Error("single-point contour fitted")
	}
	ct := Contour{image.Point{X: 1, Y: 1}, image.Point{X: 2, Y: 2}}
	if _, ok := f.Fit(ct); ok {
		t.Error("two-point contour fitted")
	}
}
