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

// Package sketch converts hand-drawn SVG sketches into cleaned vector
// drawings made of canonical primitives: circles and simplified polygons.
//
// The pipeline is a single batch transform per input document: the path
// data is sampled into point chains, drawn onto a raster canvas, the
// external boundary of every connected ink region is traced, and each
// boundary is either fitted with its minimum enclosing circle or reduced
// to a polygon with few vertices.  The result is written out as a new
// SVG document, optionally also as a PDF page.
//
// Use [Run] to process one document.  Each call owns its canvas and all
// intermediate buffers; independent calls may run concurrently.
package sketch
