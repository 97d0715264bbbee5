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

// Package ttglyph builds TrueType glyph outlines.
//
// A [Pen] collects drawing commands and turns them into TrueType contours.
// Since TrueType outlines only support quadratic Bézier curves, cubic
// curves are approximated by sequences of quadratic segments.
package ttglyph

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
)

// DefaultTolerance is the maximal distance, in font design units, between
// a cubic curve and its quadratic approximation.
const DefaultTolerance = 1.0

// maxQuadSegments limits the number of quadratic segments used to
// approximate a single cubic curve.
const maxQuadSegments = 16

// Pen converts drawing commands into TrueType contours.
// Coordinates are rounded to integer design units when a contour
// is closed.
type Pen struct {
	Tolerance float64

	contours []glyf.Contour
	cur      []point
	last     vec.Vec2
}

type point struct {
	vec.Vec2
	onCurve bool
}

// NewPen allocates a new Pen with the default tolerance.
func NewPen() *Pen {
	return &Pen{Tolerance: DefaultTolerance}
}

// MoveTo starts a new contour.  An open contour is closed first.
func (p *Pen) MoveTo(pt vec.Vec2) {
	p.ClosePath()
	p.cur = append(p.cur[:0], point{pt, true})
	p.last = pt
}

// LineTo adds a straight line to the current contour.
func (p *Pen) LineTo(pt vec.Vec2) {
	if len(p.cur) == 0 {
		p.MoveTo(pt)
		return
	}
	p.cur = append(p.cur, point{pt, true})
	p.last = pt
}

// CurveTo adds a cubic Bézier curve to the current contour.
func (p *Pen) CurveTo(c1, c2, pt vec.Vec2) {
	if len(p.cur) == 0 {
		p.MoveTo(p.last)
	}
	p0 := p.last
	for _, q := range cubicToQuads(p0, c1, c2, pt, p.tolerance()) {
		p.cur = append(p.cur, point{q[0], false}, point{q[1], true})
	}
	p.last = pt
}

// ClosePath finishes the current contour.
// Contours with fewer than two distinct points are dropped.
func (p *Pen) ClosePath() {
	if len(p.cur) == 0 {
		return
	}

	var contour glyf.Contour
	for _, q := range p.cur {
		gp := glyf.Point{X: toFUnit(q.X), Y: toFUnit(q.Y), OnCurve: q.onCurve}
		if n := len(contour); n > 0 && contour[n-1] == gp {
			continue
		}
		contour = append(contour, gp)
	}
	// the closing segment is implicit in TrueType
	if n := len(contour); n > 1 && contour[n-1] == contour[0] {
		contour = contour[:n-1]
	}
	p.cur = p.cur[:0]

	if len(contour) < 2 {
		return
	}
	p.contours = append(p.contours, contour)
}

// Outline closes any open contour and returns the collected outline.
func (p *Pen) Outline() *Outline {
	p.ClosePath()
	return &Outline{Contours: p.contours}
}

func (p *Pen) tolerance() float64 {
	if p.Tolerance > 0 {
		return p.Tolerance
	}
	return DefaultTolerance
}

// cubicToQuads approximates the cubic Bézier curve (p0, c1, c2, p3) by
// quadratic segments.  Each element of the result contains the control
// point and the end point of one quadratic segment.
//
// The curve is split into n pieces of equal parameter length.  Each piece
// is replaced by the quadratic with control point (3(c1+c2) - p0 - p3)/4,
// whose distance from the cubic is bounded by sqrt(3)/36 times the length
// of the third difference of the control polygon.
func cubicToQuads(p0, c1, c2, p3 vec.Vec2, tol float64) [][2]vec.Vec2 {
	d3x := p3.X - 3*c2.X + 3*c1.X - p0.X
	d3y := p3.Y - 3*c2.Y + 3*c1.Y - p0.Y
	d3 := math.Hypot(d3x, d3y)

	n := 1
	for n < maxQuadSegments {
		// subdividing into n pieces scales the third difference by 1/n^3
		if math.Sqrt(3)/36*d3/float64(n*n*n) <= tol {
			break
		}
		n++
	}

	res := make([][2]vec.Vec2, 0, n)
	start := p0
	for i := range n {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		a, b, c, d := cubicPiece(p0, c1, c2, p3, t0, t1)
		if i == 0 {
			a = start
		}
		if i == n-1 {
			d = p3
		}
		ctrl := vec.Vec2{
			X: (3*(b.X+c.X) - a.X - d.X) / 4,
			Y: (3*(b.Y+c.Y) - a.Y - d.Y) / 4,
		}
		res = append(res, [2]vec.Vec2{ctrl, d})
	}
	return res
}

// cubicPiece returns the control points of the part of the cubic curve
// between parameters t0 and t1.
func cubicPiece(p0, p1, p2, p3 vec.Vec2, t0, t1 float64) (vec.Vec2, vec.Vec2, vec.Vec2, vec.Vec2) {
	a := bezier(p0, p1, p2, p3, t0)
	d := bezier(p0, p1, p2, p3, t1)
	h := (t1 - t0) / 3
	da := derivative(p0, p1, p2, p3, t0)
	dd := derivative(p0, p1, p2, p3, t1)
	b := vec.Vec2{X: a.X + h*da.X, Y: a.Y + h*da.Y}
	c := vec.Vec2{X: d.X - h*dd.X, Y: d.Y - h*dd.Y}
	return a, b, c, d
}

func bezier(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	w0 := s * s * s
	w1 := 3 * s * s * t
	w2 := 3 * s * t * t
	w3 := t * t * t
	return vec.Vec2{
		X: w0*p0.X + w1*p1.X + w2*p2.X + w3*p3.X,
		Y: w0*p0.Y + w1*p1.Y + w2*p2.Y + w3*p3.Y,
	}
}

func derivative(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	w0 := 3 * s * s
	w1 := 6 * s * t
	w2 := 3 * t * t
	return vec.Vec2{
		X: w0*(p1.X-p0.X) + w1*(p2.X-p1.X) + w2*(p3.X-p2.X),
		Y: w0*(p1.Y-p0.Y) + w1*(p2.Y-p1.Y) + w2*(p3.Y-p2.Y),
	}
}

func toFUnit(x float64) funit.Int16 {
	x = math.Round(x)
	if x > math.MaxInt16 {
		x = math.MaxInt16
	} else if x < math.MinInt16 {
		x = math.MinInt16
	}
	return funit.Int16(x)
}
