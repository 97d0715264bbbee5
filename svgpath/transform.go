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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform maps every point of p through the affine transformation M.
// The structure of the path is preserved, ClosePath commands are copied
// unchanged.
//
// M uses the PDF convention: a point (x, y) is mapped to
// (M[0]*x + M[2]*y + M[4], M[1]*x + M[3]*y + M[5]).
func Transform(p Path, M matrix.Matrix) Path {
	if p == nil {
		return nil
	}
	res := make(Path, len(p))
	for i, c := range p {
		res[i] = c
		for j := range c.Points() {
			res[i].Pts[j] = apply(M, c.Pts[j])
		}
	}
	return res
}

func apply(M matrix.Matrix, v vec.Vec2) vec.Vec2 {
	x, y := M.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}

// Pen receives drawing commands.
type Pen interface {
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	CurveTo(c1, c2, p vec.Vec2)
	ClosePath()
}

// Draw replays the commands of p on pen.
func (p Path) Draw(pen Pen) {
	for _, c := range p {
		switch c.Op {
		case OpMoveTo:
			pen.MoveTo(c.Pts[0])
		case OpLineTo:
			pen.LineTo(c.Pts[0])
		case OpCurveTo:
			pen.CurveTo(c.Pts[0], c.Pts[1], c.Pts[2])
		case OpClosePath:
			pen.ClosePath()
		}
	}
}
