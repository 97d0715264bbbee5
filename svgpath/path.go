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

// Package svgpath interprets SVG path data.
//
// Only the commands needed for glyph outlines are supported: moveto,
// lineto (including the horizontal and vertical forms), cubic Bézier
// curves (including the smooth shorthand), and closepath.
// https://www.w3.org/TR/SVG11/paths.html#PathData
package svgpath

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Op identifies the kind of a path command.
type Op uint8

// These are the supported path operations.
const (
	OpMoveTo Op = iota
	OpLineTo
	OpCurveTo
	OpClosePath
)

func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpCurveTo:
		return "CurveTo"
	case OpClosePath:
		return "ClosePath"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Command is a single drawing command.
//
// MoveTo and LineTo use Pts[0].  CurveTo uses Pts[0] and Pts[1] as the
// control points and Pts[2] as the end point.  ClosePath has no points.
type Command struct {
	Op  Op
	Pts [3]vec.Vec2
}

// MoveTo returns a command which starts a new subpath at p.
func MoveTo(p vec.Vec2) Command {
	return Command{Op: OpMoveTo, Pts: [3]vec.Vec2{p}}
}

// LineTo returns a command which draws a straight line to p.
func LineTo(p vec.Vec2) Command {
	return Command{Op: OpLineTo, Pts: [3]vec.Vec2{p}}
}

// CurveTo returns a cubic Bézier command.
func CurveTo(c1, c2, p vec.Vec2) Command {
	return Command{Op: OpCurveTo, Pts: [3]vec.Vec2{c1, c2, p}}
}

// ClosePath returns a command which closes the current subpath.
func ClosePath() Command {
	return Command{Op: OpClosePath}
}

// Points returns the points used by the command.
func (c Command) Points() []vec.Vec2 {
	switch c.Op {
	case OpMoveTo, OpLineTo:
		return c.Pts[:1]
	case OpCurveTo:
		return c.Pts[:]
	default:
		return nil
	}
}

// Path is a sequence of drawing commands.
//
// Paths returned by [Parse] are normalized: every subpath begins with a
// MoveTo and ends with a ClosePath.
type Path []Command

// BBox returns the bounding box of all points in the path, including
// Bézier control points.  The result is a conservative bound, the
// control points of a curve may lie outside the curve itself.
// If the path has no points, nil is returned.
func (p Path) BBox() *rect.Rect {
	var bbox *rect.Rect
	for _, c := range p {
		for _, pt := range c.Points() {
			if bbox == nil {
				bbox = &rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
				continue
			}
			bbox.Add(pt.X, pt.Y)
		}
	}
	return bbox
}

// NumSubpaths returns the number of subpaths in the path.
func (p Path) NumSubpaths() int {
	n := 0
	for _, c := range p {
		if c.Op == OpMoveTo {
			n++
		}
	}
	return n
}

// Iter returns the path as a [path.Path] iterator.
func (p Path) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, c := range p {
			var cmd path.Command
			switch c.Op {
			case OpMoveTo:
				cmd = path.CmdMoveTo
			case OpLineTo:
				cmd = path.CmdLineTo
			case OpCurveTo:
				cmd = path.CmdCubeTo
			case OpClosePath:
				cmd = path.CmdClose
			}
			if !yield(cmd, c.Points()) {
				return
			}
		}
	}
}

// Union returns the smallest rectangle containing both a and b.
// A nil argument stands for an empty box.
func Union(a, b *rect.Rect) *rect.Rect {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		res := *b
		return &res
	case b == nil:
		res := *a
		return &res
	}
	return &rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
