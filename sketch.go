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
	"io"
)

// Options control the cleanup pipeline.  The zero value is not usable;
// use DefaultOptions as a starting point.
type Options struct {
	// Mode selects the drawing mode of the rasterization step.
	Mode Mode

	// SampleCount is the number of points sampled per curved segment
	// in high-fidelity mode.
	SampleCount int

	// Smoothing applies a Gaussian pass to the canvas before contour
	// extraction (high-fidelity mode only).
	Smoothing bool

	// CircularityLow and CircularityHigh bound the circularity of
	// contours accepted as circles.
	CircularityLow  float64
	CircularityHigh float64

	// AspectLow and AspectHigh bound the bounding box aspect ratio of
	// contours accepted as circles.
	AspectLow  float64
	AspectHigh float64

	// CircleEpsilonFactor scales the perimeter to the simplification
	// tolerance of the classifier's vertex-count check.
	CircleEpsilonFactor float64

	// PolygonEpsilonFactor scales the perimeter to the simplification
	// tolerance of polygon output.
	PolygonEpsilonFactor float64

	// MinCircleVertices is the simplified vertex count a contour must
	// exceed to be fitted as a circle.
	MinCircleVertices int

	// KeepRaster retains the intermediate canvas in the result, for
	// debugging and for PNG export.
	KeepRaster bool
}

// DefaultOptions returns the standard pipeline configuration:
// high-fidelity rasterization without smoothing, and the default
// classifier thresholds.
func DefaultOptions() *Options {
	return &Options{
		Mode:                 ModeHighFidelity,
		SampleCount:          DefaultSampleCount,
		Smoothing:            false,
		CircularityLow:       DefaultCircularityLow,
		CircularityHigh:      DefaultCircularityHigh,
		AspectLow:            DefaultAspectLow,
		AspectHigh:           DefaultAspectHigh,
		CircleEpsilonFactor:  DefaultClassifyEpsilonFactor,
		PolygonEpsilonFactor: DefaultPolygonEpsilonFactor,
		MinCircleVertices:    DefaultMinCircleVertices,
		KeepRaster:           false,
	}
}

// Result holds the cleaned drawing.
type Result struct {
	Width  int
	Height int
	Shapes []Shape

	// Raster is the intermediate canvas; nil unless Options.KeepRaster
	// was set.
	Raster *image.Gray
}

// Run reads an SVG sketch and converts it into cleaned shapes.  The
// pipeline parses the document, rasterizes all strokes onto a canvas,
// traces the boundary of each connected ink region, and fits either a
// circle or a simplified polygon to every contour.
//
// Errors are only reported for input which cannot be parsed; a valid
// document without recognizable shapes yields an empty result.
func Run(opt *Options, r io.Reader) (*Result, error) {
	if opt == nil {
		opt = DefaultOptions()
	}

	doc, err := ReadDocument(r)
	if err != nil {
		return nil, err
	}

	rast := &Rasterizer{
		Mode:        opt.Mode,
		SampleCount: opt.SampleCount,
		Smoothing:   opt.Smoothing,
	}
	canvas := rast.Draw(doc.Width, doc.Height, doc.Subpaths)

	fitter := &Fitter{
		Classifier: &Classifier{
			CircularityLow:  opt.CircularityLow,
			CircularityHigh: opt.CircularityHigh,
			AspectLow:       opt.AspectLow,
			AspectHigh:      opt.AspectHigh,
			EpsilonFactor:   opt.CircleEpsilonFactor,
			MinVertices:     opt.MinCircleVertices,
		},
		PolygonEpsilonFactor: opt.PolygonEpsilonFactor,
	}

	res := &Result{
		Width:  doc.Width,
		Height: doc.Height,
	}
	for _, ct := range FindContours(canvas) {
		if shape, ok := fitter.Fit(ct); ok {
			res.Shapes = append(res.Shapes, shape)
		}
	}
	if opt.KeepRaster {
		res.Raster = canvas.Gray()
	}
	return res, nil
}
