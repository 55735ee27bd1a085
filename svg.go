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
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedInput is wrapped by all errors reported for input
// documents which cannot be processed.  No output is written in this
// case.
var ErrMalformedInput = errors.New("malformed input document")

// DefaultCanvasSize is the canvas width and height used when the input
// document declares neither width/height attributes nor a viewBox.
const DefaultCanvasSize = 1024

// Document is the parsed form of an input sketch.
type Document struct {
	Width    int // canvas width in pixels (>0)
	Height   int // canvas height in pixels (>0)
	Subpaths []Subpath
}

// ReadDocument parses an SVG document, extracting the canvas dimensions
// and the path data of every path element.  Elements other than svg and
// path are ignored.
func ReadDocument(r io.Reader) (*Document, error) {
	doc := &Document{}

	dec := xml.NewDecoder(r)
	seenSVG := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "svg":
			if seenSVG {
				continue // nested svg elements keep the outer dimensions
			}
			seenSVG = true
			if err := doc.readDimensions(start); err != nil {
				return nil, err
			}

		case "path":
			for _, attr := range start.Attr {
				if attr.Name.Local != "d" {
					continue
				}
				subpaths, err := parsePathData(attr.Value)
				if err != nil {
					return nil, err
				}
				doc.Subpaths = append(doc.Subpaths, subpaths...)
			}
		}
	}

	if !seenSVG {
		return nil, fmt.Errorf("%w: no svg element", ErrMalformedInput)
	}
	return doc, nil
}

// readDimensions determines the canvas size from the width/height
// attributes, falling back to the viewBox and then to DefaultCanvasSize.
func (doc *Document) readDimensions(start xml.StartElement) error {
	var widthAttr, heightAttr, viewBox string
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			widthAttr = attr.Value
		case "height":
			heightAttr = attr.Value
		case "viewBox":
			viewBox = attr.Value
		}
	}

	if widthAttr != "" && heightAttr != "" {
		w, err := parseLength(widthAttr)
		if err != nil {
			return err
		}
		h, err := parseLength(heightAttr)
		if err != nil {
			return err
		}
		doc.Width, doc.Height = w, h
		return nil
	}

	if viewBox != "" {
		fields := strings.Fields(strings.ReplaceAll(viewBox, ",", " "))
		if len(fields) != 4 {
			return fmt.Errorf("%w: invalid viewBox %q", ErrMalformedInput, viewBox)
		}
		// the min-x/min-y entries are ignored; sketches are assumed to
		// start at the origin
		w, err := parseLength(fields[2])
		if err != nil {
			return err
		}
		h, err := parseLength(fields[3])
		if err != nil {
			return err
		}
		doc.Width, doc.Height = w, h
		return nil
	}

	doc.Width, doc.Height = DefaultCanvasSize, DefaultCanvasSize
	return nil
}

// parseLength converts a width/height value to a positive pixel count.
// A trailing unit suffix such as "px" is dropped.
func parseLength(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		end--
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: invalid dimension %q", ErrMalformedInput, s)
	}
	n := pixel(v)
	if n < 1 {
		n = 1
	}
	return n, nil
}
