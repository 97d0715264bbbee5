// seehuhn.de/go/dergefont - build variant Tibetan fonts from SVG glyph outlines
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

package svgpath

import (
	"strconv"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ParseError is returned when path data cannot be interpreted.
type ParseError struct {
	Pos    int // byte offset into the path data
	Reason string
}

func (err *ParseError) Error() string {
	return "svgpath: invalid path data at offset " + strconv.Itoa(err.Pos) + ": " + err.Reason
}

// Parse interprets the SVG path data d.
//
// The result is normalized: relative coordinates are resolved, the
// shorthand forms H, V and S are expanded, and every subpath is explicitly
// closed.  The returned bounding box covers all end points and control
// points.  If d contains no drawing commands, the path is empty and the
// bounding box is nil.
func Parse(d string) (Path, *rect.Rect, error) {
	p := &parser{data: d}
	err := p.run()
	if err != nil {
		return nil, nil, err
	}
	return p.res, p.res.BBox(), nil
}

type parser struct {
	data string
	pos  int

	res Path

	cur   vec.Vec2
	start vec.Vec2
	ctrl  vec.Vec2 // second control point of the previous curve

	started   bool // a moveto has been seen
	open      bool // the current subpath has not been closed yet
	prevCurve bool // the previous command was C, c, S or s
}

func (p *parser) run() error {
	var cmd byte
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			break
		}

		c := p.data[p.pos]
		cmdPos := p.pos
		if isLetter(c) {
			cmd = c
			p.pos++
		} else if cmd == 0 {
			return p.errorf(cmdPos, "path data must start with a command")
		} else if cmd == 'Z' || cmd == 'z' {
			return p.errorf(cmdPos, "unexpected number after closepath")
		}

		switch cmd {
		case 'M', 'm':
			pt, err := p.readPoint(cmd == 'm')
			if err != nil {
				return err
			}
			p.moveTo(pt)
			// further coordinate pairs are implicit lineto commands
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
			p.prevCurve = false

		case 'Z', 'z':
			p.closePath()
			p.prevCurve = false

		case 'L', 'l':
			if err := p.beginDrawing(cmdPos); err != nil {
				return err
			}
			pt, err := p.readPoint(cmd == 'l')
			if err != nil {
				return err
			}
			p.lineTo(pt)
			p.prevCurve = false

		case 'H', 'h':
			if err := p.beginDrawing(cmdPos); err != nil {
				return err
			}
			x, err := p.readNumber()
			if err != nil {
				return err
			}
			if cmd == 'h' {
				x += p.cur.X
			}
			p.lineTo(vec.Vec2{X: x, Y: p.cur.Y})
			p.prevCurve = false

		case 'V', 'v':
			if err := p.beginDrawing(cmdPos); err != nil {
				return err
			}
			y, err := p.readNumber()
			if err != nil {
				return err
			}
			if cmd == 'v' {
				y += p.cur.Y
			}
			p.lineTo(vec.Vec2{X: p.cur.X, Y: y})
			p.prevCurve = false

		case 'C', 'c':
			if err := p.beginDrawing(cmdPos); err != nil {
				return err
			}
			rel := cmd == 'c'
			c1, err := p.readPoint(rel)
			if err != nil {
				return err
			}
			c2, err := p.readPoint(rel)
			if err != nil {
				return err
			}
			end, err := p.readPoint(rel)
			if err != nil {
				return err
			}
			p.curveTo(c1, c2, end)

		case 'S', 's':
			if err := p.beginDrawing(cmdPos); err != nil {
				return err
			}
			rel := cmd == 's'
			c1 := p.cur
			if p.prevCurve {
				// reflect the previous control point about the current point
				c1 = vec.Vec2{X: 2*p.cur.X - p.ctrl.X, Y: 2*p.cur.Y - p.ctrl.Y}
			}
			c2, err := p.readPoint(rel)
			if err != nil {
				return err
			}
			end, err := p.readPoint(rel)
			if err != nil {
				return err
			}
			p.curveTo(c1, c2, end)

		default:
			return p.errorf(cmdPos, "unsupported command "+strconv.QuoteRune(rune(cmd)))
		}
	}

	if p.open {
		p.res = append(p.res, ClosePath())
		p.open = false
	}
	return nil
}

// beginDrawing makes sure that a subpath is open before a drawing
// command is appended.  After a closepath, a new subpath starts at the
// initial point of the previous one.
func (p *parser) beginDrawing(pos int) error {
	if !p.started {
		return p.errorf(pos, "path data must start with a moveto")
	}
	if !p.open {
		p.res = append(p.res, MoveTo(p.start))
		p.cur = p.start
		p.open = true
	}
	return nil
}

func (p *parser) moveTo(pt vec.Vec2) {
	if p.open {
		p.res = append(p.res, ClosePath())
	}
	p.res = append(p.res, MoveTo(pt))
	p.cur = pt
	p.start = pt
	p.started = true
	p.open = true
}

func (p *parser) lineTo(pt vec.Vec2) {
	p.res = append(p.res, LineTo(pt))
	p.cur = pt
}

func (p *parser) curveTo(c1, c2, end vec.Vec2) {
	p.res = append(p.res, CurveTo(c1, c2, end))
	p.cur = end
	p.ctrl = c2
	p.prevCurve = true
}

func (p *parser) closePath() {
	if !p.open {
		return
	}
	p.res = append(p.res, ClosePath())
	p.cur = p.start
	p.open = false
}

// readPoint reads a coordinate pair.  If rel is true, the pair is
// interpreted relative to the current point.
func (p *parser) readPoint(rel bool) (vec.Vec2, error) {
	x, err := p.readNumber()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := p.readNumber()
	if err != nil {
		return vec.Vec2{}, err
	}
	if rel && p.started {
		x += p.cur.X
		y += p.cur.Y
	}
	return vec.Vec2{X: x, Y: y}, nil
}

func (p *parser) readNumber() (float64, error) {
	p.skipSpace()
	if p.pos < len(p.data) && p.data[p.pos] == ',' {
		p.pos++
		p.skipSpace()
	}

	start := p.pos
	i := p.pos
	if i < len(p.data) && (p.data[i] == '+' || p.data[i] == '-') {
		i++
	}
	digits := 0
	for i < len(p.data) && isDigit(p.data[i]) {
		i++
		digits++
	}
	if i < len(p.data) && p.data[i] == '.' {
		i++
		for i < len(p.data) && isDigit(p.data[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, p.errorf(start, "expected a number")
	}
	if i < len(p.data) && (p.data[i] == 'e' || p.data[i] == 'E') {
		j := i + 1
		if j < len(p.data) && (p.data[j] == '+' || p.data[j] == '-') {
			j++
		}
		if j < len(p.data) && isDigit(p.data[j]) {
			for j < len(p.data) && isDigit(p.data[j]) {
				j++
			}
			i = j
		}
	}

	x, err := strconv.ParseFloat(p.data[start:i], 64)
	if err != nil {
		return 0, p.errorf(start, "malformed number "+strconv.Quote(p.data[start:i]))
	}
	p.pos = i
	return x, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', '\f':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(pos int, reason string) error {
	return &ParseError{Pos: pos, Reason: reason}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
