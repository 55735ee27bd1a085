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
	"github.com/anthonynsimon/bild/blur"
)

// smoothingRadius is the Gaussian radius of the smoothing pass,
// equivalent to a 5×5 convolution kernel.
const smoothingRadius = 2.0

// Smooth applies a Gaussian blur to the canvas, reducing pixel-level
// jaggedness of the rasterized strokes before contour extraction.
func (c *Canvas) Smooth() {
	blurred := blur.Gaussian(c.Gray(), smoothingRadius)
	for y := range c.Height {
		row := blurred.Pix[y*blurred.Stride:]
		for x := range c.Width {
			// the blurred image is RGBA; all channels carry the
			// same gray level
			c.Pix[y*c.Width+x] = row[x*4]
		}
	}
}
