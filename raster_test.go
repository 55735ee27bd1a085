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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestPixelRounding(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{0.6, 1},
		{1.49, 1},
		{2.5, 3},
		{-0.4, 0},
		{-0.5, 0},
		{-0.6, -1},
		{-1.5, -1},
	}
	for _, c := range cases {
		if got := pixel(c.in); got != c.want {
			t.Errorf("pixel(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCanvasPolarity(t *testing.T) {
	hf := NewCanvas(4, 4, ModeHighFidelity)
	if hf.Background != 255 || hf.Ink != 0 {
		t.Errorf("high-fidelity polarity: ink %d on %d, want 0 on 255",
			hf.Ink, hf.Background)
	}
	if hf.At(1, 1) != 255 {
		t.Errorf("fresh high-fidelity canvas not white")
	}

	fast := NewCanvas(4, 4, ModeFast)
	if fast.Background != 0 || fast.Ink != 255 {
		t.Errorf("fast polarity: ink %d on %d, want 255 on 0",
			fast.Ink, fast.Background)
	}
	if fast.At(1, 1) != 0 {
		t.Errorf("fresh fast canvas not black")
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4, ModeHighFidelity)
	if c.At(-1, 0) != c.Background || c.At(0, 4) != c.Background {
		t.Error("out-of-bounds read is not background")
	}
	if c.IsInk(-1, -1) {
		t.Error("out-of-bounds pixel reported as ink")
	}
}

func TestDrawChainLine(t *testing.T) {
	c := NewCanvas(10, 10, ModeHighFidelity)
	c.DrawChain([]vec.Vec2{pt(2, 5), pt(7, 5)}, false)

	for x := range 10 {
		want := x >= 2 && x <= 7
		if got := c.IsInk(x, 5); got != want {
			t.Errorf("IsInk(%d, 5) = %t, want %t", x, got, want)
		}
	}
	for y := range 10 {
		if y != 5 && c.IsInk(4, y) {
			t.Errorf("stray ink at (4, %d)", y)
		}
	}
}

func TestDrawChainDiagonal(t *testing.T) {
	c := NewCanvas(10, 10, ModeHighFidelity)
	c.DrawChain([]vec.Vec2{pt(0, 0), pt(9, 9)}, false)

	count := 0
	for y := range 10 {
		for x := range 10 {
			if c.IsInk(x, y) {
				count++
			}
		}
	}
	if count != 10 {
		t.Errorf("diagonal has %d pixels, want 10", count)
	}
	if !c.IsInk(0, 0) || !c.IsInk(9, 9) {
		t.Error("diagonal endpoints not drawn")
	}
}

func TestDrawChainSinglePoint(t *testing.T) {
	c := NewCanvas(10, 10, ModeHighFidelity)
	c.DrawChain([]vec.Vec2{pt(3, 3), pt(3.2, 3.1)}, false)

	count := 0
	for y := range 10 {
		for x := range 10 {
			if c.IsInk(x, y) {
				count++
			}
		}
	}
	if count != 1 || !c.IsInk(3, 3) {
		t.Errorf("collapsed chain drew %d pixels, want pixel (3,3) only", count)
	}
}

func TestDrawChainClipped(t *testing.T) {
	c := NewCanvas(8, 8, ModeHighFidelity)
	// a chain reaching far outside the canvas must not panic and must
	// still draw the visible part
	c.DrawChain([]vec.Vec2{pt(-20, 4), pt(30, 4)}, false)
	for x := range 8 {
		if !c.IsInk(x, 4) {
			t.Errorf("clipped line missing pixel (%d, 4)", x)
		}
	}
}

func TestFastModeCloses(t *testing.T) {
	// an open polyline is treated as closed in fast mode
	doc := []Subpath{{
		Start: pt(2, 2),
		Segments: []Segment{
			LineSegment(pt(2, 2), pt(12, 2)),
			LineSegment(pt(12, 2), pt(12, 12)),
		},
		Closed: false,
	}}
	r := &Rasterizer{Mode: ModeFast}
	c := r.Draw(16, 16, doc)

	// the implied closing edge runs from (12,12) back to (2,2)
	if !c.IsInk(7, 7) {
		t.Error("closing edge not drawn in fast mode")
	}
}

func TestFastModeEndpointsOnly(t *testing.T) {
	// in fast mode a curve contributes only its endpoints; the arch of
	// the curve stays blank
	doc := []Subpath{{
		Start: pt(2, 12),
		Segments: []Segment{
			QuadSegment(pt(2, 12), pt(10, -8), pt(18, 12)),
		},
		Closed: true,
	}}
	r := &Rasterizer{Mode: ModeFast}
	c := r.Draw(20, 16, doc)

	if !c.IsInk(10, 12) {
		t.Error("chord between endpoints not drawn")
	}
	if c.IsInk(10, 2) {
		t.Error("curve interior drawn in fast mode")
	}
}

func TestHighFidelitySamplesCurve(t *testing.T) {
	doc := []Subpath{{
		Start: pt(2, 12),
		Segments: []Segment{
			QuadSegment(pt(2, 12), pt(10, -8), pt(18, 12)),
		},
	}}
	r := &Rasterizer{Mode: ModeHighFidelity}
	c := r.Draw(20, 16, doc)

	// apex of the curve at t=0.5: (10, 2)
	if !c.IsInk(10, 2) {
		t.Error("curve apex not drawn in high-fidelity mode")
	}
}

func TestSmoothKeepsStrokes(t *testing.T) {
	c := NewCanvas(32, 32, ModeHighFidelity)
	c.DrawChain([]vec.Vec2{pt(4, 16), pt(28, 16)}, false)
	c.Smooth()

	if !c.IsInk(16, 16) {
		t.Error("stroke lost after smoothing")
	}
	if c.IsInk(16, 4) {
		t.Error("background counted as ink after smoothing")
	}
}
