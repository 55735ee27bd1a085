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

// Sketchclean converts hand-drawn SVG sketches into cleaned vector
// drawings.
//
// Usage:
//
//	sketchclean [options] input.svg
//
// The cleaned drawing is written as SVG to standard output, or to the
// file given with -o.  The -pdf and -png options write additional
// output formats.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/sketch"
)

// config mirrors the pipeline options in the TOML configuration file.
// All fields are optional; zero values keep the defaults.
type config struct {
	CanvasPolarity    string     `toml:"canvas_polarity"` // "high-fidelity" or "fast"
	SampleCount       int        `toml:"sample_count"`
	Smoothing         bool       `toml:"smoothing_enabled"`
	CircularityRange  [2]float64 `toml:"circularity_range"`
	AspectRange       [2]float64 `toml:"aspect_ratio_range"`
	CircleEpsilon     float64    `toml:"circle_epsilon_factor"`
	PolygonEpsilon    float64    `toml:"polygon_epsilon_factor"`
	MinCircleVertices int        `toml:"min_circle_vertices"`
}

func (c *config) apply(opt *sketch.Options) error {
	switch c.CanvasPolarity {
	case "", "high-fidelity":
		// default
	case "fast":
		opt.Mode = sketch.ModeFast
	default:
		return fmt.Errorf("unknown canvas_polarity %q", c.CanvasPolarity)
	}
	if c.SampleCount != 0 {
		opt.SampleCount = c.SampleCount
	}
	if c.Smoothing {
		opt.Smoothing = true
	}
	if c.CircularityRange != [2]float64{} {
		opt.CircularityLow = c.CircularityRange[0]
		opt.CircularityHigh = c.CircularityRange[1]
	}
	if c.AspectRange != [2]float64{} {
		opt.AspectLow = c.AspectRange[0]
		opt.AspectHigh = c.AspectRange[1]
	}
	if c.CircleEpsilon != 0 {
		opt.CircleEpsilonFactor = c.CircleEpsilon
	}
	if c.PolygonEpsilon != 0 {
		opt.PolygonEpsilonFactor = c.PolygonEpsilon
	}
	if c.MinCircleVertices != 0 {
		opt.MinCircleVertices = c.MinCircleVertices
	}
	return nil
}

func main() {
	outName := flag.String("o", "", "output SVG file (default: stdout)")
	pdfName := flag.String("pdf", "", "also write the drawing as a PDF file")
	pngName := flag.String("png", "", "also write the intermediate raster as a PNG file")
	configName := flag.String("config", "", "TOML configuration file")
	fast := flag.Bool("fast", false, "use the fast drawing mode")
	smooth := flag.Bool("smooth", false, "smooth the raster before tracing")
	samples := flag.Int("samples", 0, "samples per curved segment (0: default)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sketchclean [options] input.svg")
		flag.PrintDefaults()
		os.Exit(2)
	}

	err := run(flag.Arg(0), *outName, *pdfName, *pngName, *configName,
		*fast, *smooth, *samples)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sketchclean:", err)
		os.Exit(1)
	}
}

func run(inName, outName, pdfName, pngName, configName string, fast, smooth bool, samples int) error {
	opt := sketch.DefaultOptions()

	if configName != "" {
		data, err := os.ReadFile(configName)
		if err != nil {
			return err
		}
		var c config
		if err := toml.Unmarshal(data, &c); err != nil {
			return fmt.Errorf("%s: %w", configName, err)
		}
		if err := c.apply(opt); err != nil {
			return fmt.Errorf("%s: %w", configName, err)
		}
	}

	// command line flags override the configuration file
	if fast {
		opt.Mode = sketch.ModeFast
	}
	if smooth {
		opt.Smoothing = true
	}
	if samples > 0 {
		opt.SampleCount = samples
	}
	opt.KeepRaster = pngName != ""

	in, err := os.Open(inName)
	if err != nil {
		return err
	}
	res, err := sketch.Run(opt, in)
	in.Close()
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	var outFile *os.File
	if outName != "" {
		outFile, err = os.Create(outName)
		if err != nil {
			return err
		}
		out = outFile
	}
	if err := res.WriteSVG(out); err != nil {
		return err
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return err
		}
	}

	if pdfName != "" {
		if err := res.WritePDF(pdfName); err != nil {
			return err
		}
	}
	if pngName != "" {
		var buf bytes.Buffer
		if err := png.Encode(&buf, res.Raster); err != nil {
			return err
		}
		if err := os.WriteFile(pngName, buf.Bytes(), 0o644); err != nil {
			return err
		}
	}
	return nil
}
