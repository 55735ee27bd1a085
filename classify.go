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
)

// Default thresholds for the circle/polygon decision.
const (
	// DefaultCircularityLow and DefaultCircularityHigh bound the
	// circularity 4*pi*A/P^2 of contours accepted as circles.
	DefaultCircularityLow  = 0.8
	DefaultCircularityHigh = 1.2

	// DefaultAspectLow and DefaultAspectHigh bound the width/height
	// ratio of the bounding box of contours accepted as circles.
	DefaultAspectLow  = 0.9
	DefaultAspectHigh = 1.1

	// DefaultClassifyEpsilonFactor gives the simplification tolerance
	// used by the vertex-count check, as a fraction of the perimeter.
	DefaultClassifyEpsilonFactor = 0.01

	// DefaultMinCircleVertices is the smallest number of simplified
	// vertices a contour must retain to count as a circle.  Shapes
	// with few corners, such as rectangles and triangles, simplify to
	// fewer vertices and are emitted as polygons.
	DefaultMinCircleVertices = 8
)

// Classifier decides whether a traced contour looks like a circle.
// The zero value is not usable; call NewClassifier for the default
// thresholds.
type Classifier struct {
	// CircularityLow and CircularityHigh bound the accepted
	// circularity (exclusive on both sides).
	CircularityLow  float64
	CircularityHigh float64

	// AspectLow and AspectHigh bound the accepted bounding box aspect
	// ratio (exclusive on both sides).
	AspectLow  float64
	AspectHigh float64

	// EpsilonFactor scales the contour perimeter to the simplification
	// tolerance of the vertex-count check.
	EpsilonFactor float64

	// MinVertices is the vertex count a simplified contour must exceed.
	MinVertices int
}

// NewClassifier returns a classifier with the default thresholds.
func NewClassifier() *Classifier {
	return &Classifier{
		CircularityLow:  DefaultCircularityLow,
		CircularityHigh: DefaultCircularityHigh,
		AspectLow:       DefaultAspectLow,
		AspectHigh:      DefaultAspectHigh,
		EpsilonFactor:   DefaultClassifyEpsilonFactor,
		MinVertices:     DefaultMinCircleVertices,
	}
}

// IsCircle reports whether the contour should be fitted as a circle.
// Four checks are applied in order, each cheap test gating the next:
// circularity, bounding box aspect ratio, and the number of vertices
// surviving a coarse simplification.  Failing any one check classifies
// the contour as a polygon.
func (cl *Classifier) IsCircle(ct Contour) bool {
	perimeter := ct.Perimeter()
	area := ct.Area()
	if perimeter <= 0 || area <= 0 {
		return false
	}

	circularity := 4 * math.Pi * area / (perimeter * perimeter)
	if circularity <= cl.CircularityLow || circularity >= cl.CircularityHigh {
		return false
	}

	bbox := ct.BoundingBox()
	w := float64(bbox.Dx())
	h := float64(bbox.Dy())
	if h <= 0 {
		return false
	}
	aspect := w / h
	if aspect <= cl.AspectLow || aspect >= cl.AspectHigh {
		return false
	}

	simplified := simplifyClosed(ct.vertices(), cl.EpsilonFactor*perimeter)
	return len(simplified) > cl.MinVertices
}
