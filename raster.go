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

// Mode selects the drawing mode of the Rasterizer.
type Mode int

const (
	// ModeHighFidelity draws black ink on a white background, sampling
	// curved segments at the full sample count.  Gaussian smoothing may
	// be applied before contour extraction.
	ModeHighFidelity Mode = iota

	// ModeFast draws white ink on a black background, connecting only
	// the segment endpoints.  All subpaths are treated as closed and no
	// smoothing is applied.
	ModeFast
)

// Canvas is a grayscale pixel grid.  It is mutable only while a
// Rasterizer draws into it and is read-only afterwards.
type Canvas struct {
	Pix        []byte // row-major, Pix[y*Width+x]
	Width      int
	Height     int
	Ink        byte // pixel level of drawn strokes
	Background byte // pixel level of the empty canvas
}

// inkThreshold is the minimum deviation from the background level for a
// pixel to count as foreground during contour extraction.  Gaussian
// smoothing dims a one-pixel stroke to roughly a quarter of the full
// ink level, so the threshold must stay well below that.
const inkThreshold = 32

// NewCanvas returns a canvas of the given size, filled with the
// background level of the given mode.
func NewCanvas(width, height int, mode Mode) *Canvas {
	c := &Canvas{
		Pix:    make([]byte, width*height),
		Width:  width,
		Height: height,
	}
	if mode == ModeFast {
		c.Ink = 255
		c.Background = 0
	} else {
		c.Ink = 0
		c.Background = 255
	}
	if c.Background != 0 {
		for i := range c.Pix {
			c.Pix[i] = c.Background
		}
	}
	return c
}

// pixel converts a coordinate from user space to a pixel index.  This
// is the single rounding policy of the package (round half up); all
// other geometry stays in floating point.
func pixel(v float64) int {
	return int(math.Floor(v + 0.5))
}

// At returns the pixel level at (x, y).  Out-of-bounds coordinates
// read as background.
func (c *Canvas) At(x, y int) byte {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return c.Background
	}
	return c.Pix[y*c.Width+x]
}

// IsInk reports whether the pixel at (x, y) belongs to a drawn stroke.
func (c *Canvas) IsInk(x, y int) bool {
	d := int(c.At(x, y)) - int(c.Background)
	if d < 0 {
		d = -d
	}
	return d >= inkThreshold
}

// setPixel paints a single pixel, silently clipping out-of-bounds
// coordinates.
func (c *Canvas) setPixel(x, y int) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.Pix[y*c.Width+x] = c.Ink
}

// Gray returns a copy of the canvas as an image.
func (c *Canvas) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, c.Width, c.Height))
	copy(img.Pix, c.Pix)
	return img
}

// drawLine draws a 1-pixel line from p0 to p1 (both inclusive) using
// Bresenham's algorithm.
func (c *Canvas) drawLine(p0, p1 image.Point) {
	dx := p1.X - p0.X
	if dx < 0 {
		dx = -dx
	}
	dy := p1.Y - p0.Y
	if dy > 0 {
		dy = -dy
	}
	sx := 1
	if p0.X > p1.X {
		sx = -1
	}
	sy := 1
	if p0.Y > p1.Y {
		sy = -1
	}
	e := dx + dy

	x, y := p0.X, p0.Y
	for {
		c.setPixel(x, y)
		if x == p1.X && y == p1.Y {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// DrawChain draws an open or closed polyline through the given points.
// Coordinates are rounded to pixels at this boundary only; consecutive
// points landing on the same pixel are merged.  A chain collapsing to a
// single pixel paints that pixel.
func (c *Canvas) DrawChain(pts []vec.Vec2, closed bool) {
	if len(pts) == 0 {
		return
	}

	px := make([]image.Point, 0, len(pts))
	for _, p := range pts {
		q := image.Point{X: pixel(p.X), Y: pixel(p.Y)}
		if len(px) > 0 && q == px[len(px)-1] {
			continue
		}
		px = append(px, q)
	}

	if len(px) == 1 {
		c.setPixel(px[0].X, px[0].Y)
		return
	}
	for i := 1; i < len(px); i++ {
		c.drawLine(px[i-1], px[i])
	}
	if closed && px[0] != px[len(px)-1] {
		c.drawLine(px[len(px)-1], px[0])
	}
}

// DefaultSampleCount is the number of points sampled from each curved
// segment in high-fidelity mode.  Lines always use their two endpoints
// only.
const DefaultSampleCount = 100

// Rasterizer draws parsed subpaths onto a fresh canvas.  The zero value
// uses high-fidelity mode with the default sample count and no
// smoothing.  Both drawing modes share the same machinery; the mode
// only changes polarity, sampling density and the closing rule.
type Rasterizer struct {
	// Mode selects stroke/background polarity and sampling density.
	Mode Mode

	// SampleCount is the number of points per curved segment.
	// Values below 2 select DefaultSampleCount.
	SampleCount int

	// Smoothing applies a Gaussian pass after drawing.  It is only
	// honoured in high-fidelity mode.
	Smoothing bool
}

// Draw renders the subpaths onto a new canvas of the given dimensions.
func (r *Rasterizer) Draw(width, height int, subpaths []Subpath) *Canvas {
	canvas := NewCanvas(width, height, r.Mode)

	samples := r.SampleCount
	if samples < 2 {
		samples = DefaultSampleCount
	}

	for _, sp := range subpaths {
		var chain []vec.Vec2
		closed := sp.Closed

		if r.Mode == ModeFast {
			closed = true
			chain = append(chain, sp.Start)
			for _, seg := range sp.Segments {
				chain = append(chain, seg.End)
			}
		} else {
			chain = append(chain, sp.Start)
			for _, seg := range sp.Segments {
				n := samples
				if seg.Kind == SegLine {
					n = 2
				}
				first := true
				for p := range seg.Points(n) {
					if first {
						// joins the previous segment's endpoint
						first = false
						continue
					}
					chain = append(chain, p)
				}
			}
		}

		canvas.DrawChain(chain, closed)
	}

	if r.Mode == ModeHighFidelity && r.Smoothing {
		canvas.Smooth()
	}
	return canvas
}
