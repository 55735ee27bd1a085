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
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Subpath is one connected run of path segments.  Closed subpaths have
// an implied edge from the end of the last segment back to Start.
type Subpath struct {
	Start    vec.Vec2
	Segments []Segment
	Closed   bool
}

// pathScanner tokenizes the SVG path data mini-language.
type pathScanner struct {
	data string
	pos  int
}

// parsePathData parses the value of an SVG "d" attribute.  All standard
// commands are recognized (including the H/V/S/T shorthands, which are
// rewritten into lines and curves); unknown command letters are skipped
// with a warning, together with their parameters.  Syntax errors in
// numbers are fatal.
func parsePathData(d string) ([]Subpath, error) {
	sc := &pathScanner{data: d}

	var subpaths []Subpath
	var cur *Subpath

	var pos vec.Vec2      // current point
	var start vec.Vec2    // start of the current subpath
	var prevCtrl vec.Vec2 // control point eligible for S/T reflection
	var prevCmd byte

	flush := func() {
		if cur != nil && (len(cur.Segments) > 0 || prevCmd == 'M') {
			subpaths = append(subpaths, *cur)
		}
		cur = nil
	}

	add := func(s Segment) {
		if cur == nil {
			cur = &Subpath{Start: s.Start}
		}
		cur.Segments = append(cur.Segments, s)
	}

	for {
		cmd, ok := sc.nextCommand()
		if !ok {
			break
		}

		rel := cmd >= 'a' && cmd <= 'z'
		upper := cmd
		if rel {
			upper = cmd - 'a' + 'A'
		}

		// resolve turns a coordinate pair into an absolute point
		resolve := func(x, y float64) vec.Vec2 {
			if rel {
				return vec.Vec2{X: pos.X + x, Y: pos.Y + y}
			}
			return vec.Vec2{X: x, Y: y}
		}

		switch upper {
		case 'M':
			first := true
			for first || sc.hasNumber() {
				x, y, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				p := resolve(x, y)
				if first {
					flush()
					pos = p
					start = p
					cur = &Subpath{Start: p}
					first = false
				} else {
					// additional pairs are implicit line-tos
					add(LineSegment(pos, p))
					pos = p
				}
			}

		case 'L':
			for {
				x, y, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				p := resolve(x, y)
				add(LineSegment(pos, p))
				pos = p
				if !sc.hasNumber() {
					break
				}
			}

		case 'H':
			for {
				x, err := sc.number()
				if err != nil {
					return nil, err
				}
				p := vec.Vec2{X: x, Y: pos.Y}
				if rel {
					p.X = pos.X + x
				}
				add(LineSegment(pos, p))
				pos = p
				if !sc.hasNumber() {
					break
				}
			}

		case 'V':
			for {
				y, err := sc.number()
				if err != nil {
					return nil, err
				}
				p := vec.Vec2{X: pos.X, Y: y}
				if rel {
					p.Y = pos.Y + y
				}
				add(LineSegment(pos, p))
				pos = p
				if !sc.hasNumber() {
					break
				}
			}

		case 'C':
			for {
				x1, y1, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				x2, y2, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				x, y, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				c1, c2, p := resolve(x1, y1), resolve(x2, y2), resolve(x, y)
				add(CubicSegment(pos, c1, c2, p))
				pos = p
				prevCtrl = c2
				if !sc.hasNumber() {
					break
				}
			}

		case 'S':
			for {
				x2, y2, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				x, y, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				c1 := pos
				if prevCmd == 'C' || prevCmd == 'S' {
					c1 = reflect(prevCtrl, pos)
				}
				c2, p := resolve(x2, y2), resolve(x, y)
				add(CubicSegment(pos, c1, c2, p))
				pos = p
				prevCtrl = c2
				if !sc.hasNumber() {
					break
				}
			}

		case 'Q':
			for {
				x1, y1, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				x, y, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				c, p := resolve(x1, y1), resolve(x, y)
				add(QuadSegment(pos, c, p))
				pos = p
				prevCtrl = c
				if !sc.hasNumber() {
					break
				}
			}

		case 'T':
			for {
				x, y, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				c := pos
				if prevCmd == 'Q' || prevCmd == 'T' {
					c = reflect(prevCtrl, pos)
				}
				p := resolve(x, y)
				add(QuadSegment(pos, c, p))
				pos = p
				prevCtrl = c
				if !sc.hasNumber() {
					break
				}
			}

		case 'A':
			for {
				rx, err := sc.number()
				if err != nil {
					return nil, err
				}
				ry, err := sc.number()
				if err != nil {
					return nil, err
				}
				rot, err := sc.number()
				if err != nil {
					return nil, err
				}
				largeArc, err := sc.flag()
				if err != nil {
					return nil, err
				}
				sweep, err := sc.flag()
				if err != nil {
					return nil, err
				}
				x, y, err := sc.numberPair()
				if err != nil {
					return nil, err
				}
				p := resolve(x, y)
				add(ArcSegment(pos, p, vec.Vec2{X: rx, Y: ry}, rot*degree, largeArc, sweep))
				pos = p
				if !sc.hasNumber() {
					break
				}
			}

		case 'Z':
			if cur != nil {
				cur.Closed = true
			}
			flush()
			pos = start

		default:
			slog.Warn("ignoring unsupported path command",
				"command", string(cmd))
			sc.skipNumbers()
		}

		prevCmd = upper
	}
	flush()

	return subpaths, nil
}

// degree converts the rotation angle of arc commands to radians.
const degree = math.Pi / 180

// reflect mirrors the control point c about the point p.
func reflect(c, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: 2*p.X - c.X, Y: 2*p.Y - c.Y}
}

func isPathSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'
}

// skipSeparators advances past whitespace and at most one comma.
func (sc *pathScanner) skipSeparators() {
	seenComma := false
	for sc.pos < len(sc.data) {
		c := sc.data[sc.pos]
		if isPathSpace(c) {
			sc.pos++
		} else if c == ',' && !seenComma {
			seenComma = true
			sc.pos++
		} else {
			break
		}
	}
}

// nextCommand returns the next command letter, or false at the end of
// the data.  Implicit commands (numbers following a completed command)
// are handled by the per-command loops in parsePathData, so anything
// other than a letter here is a syntax error reported by number().
func (sc *pathScanner) nextCommand() (byte, bool) {
	sc.skipSeparators()
	if sc.pos >= len(sc.data) {
		return 0, false
	}
	c := sc.data[sc.pos]
	if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
		sc.pos++
		return c, true
	}
	// stray number without a command; treat as an implicit line-to
	// after move-to per the grammar would already have consumed it,
	// so this is malformed input
	return 0, false
}

// hasNumber reports whether the next token is a number, i.e. whether
// the previous command repeats implicitly.
func (sc *pathScanner) hasNumber() bool {
	sc.skipSeparators()
	return sc.pos < len(sc.data) && isNumberStart(sc.data[sc.pos])
}

// number scans one floating point number.
func (sc *pathScanner) number() (float64, error) {
	sc.skipSeparators()
	start := sc.pos
	n := len(sc.data)

	if sc.pos < n && (sc.data[sc.pos] == '+' || sc.data[sc.pos] == '-') {
		sc.pos++
	}
	for sc.pos < n && sc.data[sc.pos] >= '0' && sc.data[sc.pos] <= '9' {
		sc.pos++
	}
	if sc.pos < n && sc.data[sc.pos] == '.' {
		sc.pos++
		for sc.pos < n && sc.data[sc.pos] >= '0' && sc.data[sc.pos] <= '9' {
			sc.pos++
		}
	}
	if sc.pos < n && (sc.data[sc.pos] == 'e' || sc.data[sc.pos] == 'E') {
		mark := sc.pos
		sc.pos++
		if sc.pos < n && (sc.data[sc.pos] == '+' || sc.data[sc.pos] == '-') {
			sc.pos++
		}
		digits := false
		for sc.pos < n && sc.data[sc.pos] >= '0' && sc.data[sc.pos] <= '9' {
			sc.pos++
			digits = true
		}
		if !digits {
			sc.pos = mark
		}
	}

	tok := sc.data[start:sc.pos]
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		rest := sc.data[start:min(len(sc.data), start+8)]
		return 0, fmt.Errorf("%w: invalid number at %q", ErrMalformedInput, rest)
	}
	return v, nil
}

// numberPair scans an x,y coordinate pair.
func (sc *pathScanner) numberPair() (x, y float64, err error) {
	x, err = sc.number()
	if err != nil {
		return 0, 0, err
	}
	y, err = sc.number()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// flag scans a single arc flag, which the grammar allows to be written
// without a separator before the following number.
func (sc *pathScanner) flag() (bool, error) {
	sc.skipSeparators()
	if sc.pos >= len(sc.data) {
		return false, fmt.Errorf("%w: missing arc flag", ErrMalformedInput)
	}
	c := sc.data[sc.pos]
	if c != '0' && c != '1' {
		return false, fmt.Errorf("%w: invalid arc flag %q", ErrMalformedInput, string(c))
	}
	sc.pos++
	return c == '1', nil
}

// skipNumbers consumes the parameters of an unsupported command.
func (sc *pathScanner) skipNumbers() {
	for sc.hasNumber() {
		if _, err := sc.number(); err != nil {
			return
		}
	}
}
