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

package ttglyph

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
)

func v(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestPenLines(t *testing.T) {
	pen := NewPen()
	pen.MoveTo(v(0, 0))
	pen.LineTo(v(100.4, 0))
	pen.LineTo(v(100, 200.6))
	pen.LineTo(v(0, 0)) // duplicates the start point
	pen.ClosePath()

	pen.MoveTo(v(5, 5)) // degenerate contour
	pen.ClosePath()

	got := pen.Outline()
	want := &Outline{
		Contours: []glyf.Contour{
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 100, Y: 0, OnCurve: true},
				{X: 100, Y: 201, OnCurve: true},
			},
		},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestPenImplicitClose(t *testing.T) {
	pen := NewPen()
	pen.MoveTo(v(0, 0))
	pen.LineTo(v(10, 0))
	pen.LineTo(v(10, 10))
	pen.MoveTo(v(20, 20))
	pen.LineTo(v(30, 20))
	pen.LineTo(v(30, 30))

	out := pen.Outline()
	if len(out.Contours) != 2 {
		t.Fatalf("expected 2 contours, got %d", len(out.Contours))
	}
}

func TestCubicToQuads(t *testing.T) {
	p0, c1, c2, p3 := v(0, 0), v(0, 500), v(1000, 500), v(1000, 0)
	for _, tol := range []float64{10, 1, 0.25} {
		quads := cubicToQuads(p0, c1, c2, p3, tol)
		if len(quads) == 0 || len(quads) > maxQuadSegments {
			t.Fatalf("tol %g: %d segments", tol, len(quads))
		}
		if quads[len(quads)-1][1] != p3 {
			t.Errorf("tol %g: wrong end point %v", tol, quads[len(quads)-1][1])
		}

		// sample every quadratic piece and compare with the cubic
		n := len(quads)
		start := p0
		var maxErr float64
		for i, q := range quads {
			for k := 0; k <= 10; k++ {
				s := float64(k) / 10
				u := 1 - s
				qx := u*u*start.X + 2*u*s*q[0].X + s*s*q[1].X
				qy := u*u*start.Y + 2*u*s*q[0].Y + s*s*q[1].Y
				c := bezier(p0, c1, c2, p3, (float64(i)+s)/float64(n))
				maxErr = max(maxErr, math.Hypot(qx-c.X, qy-c.Y))
			}
			start = q[1]
		}
		if maxErr > tol {
			t.Errorf("tol %g: max error %g", tol, maxErr)
		}
	}

	// a straight line needs a single segment
	if n := len(cubicToQuads(v(0, 0), v(1, 1), v(2, 2), v(3, 3), 0.1)); n != 1 {
		t.Errorf("straight curve: %d segments", n)
	}
}

func TestPenCurve(t *testing.T) {
	pen := NewPen()
	pen.MoveTo(v(0, 0))
	pen.CurveTo(v(0, 500), v(1000, 500), v(1000, 0))
	pen.ClosePath()

	out := pen.Outline()
	if len(out.Contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(out.Contours))
	}
	cc := out.Contours[0]
	if !cc[0].OnCurve || !cc[len(cc)-1].OnCurve {
		t.Error("contour must start and end on the curve")
	}
	for i := 1; i < len(cc); i += 2 {
		if cc[i].OnCurve {
			t.Errorf("point %d should be a control point", i)
		}
	}
	bbox, ok := out.BBox()
	if !ok {
		t.Fatal("missing bbox")
	}
	if bbox.LLx != 0 || bbox.URx != 1000 || bbox.LLy != 0 || bbox.URy > 500 {
		t.Errorf("unexpected bbox %v", bbox)
	}
}

func TestGlyph(t *testing.T) {
	pen := NewPen()
	pen.MoveTo(v(-300, -2000))
	pen.LineTo(v(400, -2000))
	pen.CurveTo(v(400, -1500), v(100, -1000), v(-300, -1000))
	pen.ClosePath()
	pen.MoveTo(v(0, 0))
	pen.LineTo(v(1, 0))
	pen.LineTo(v(1, 300))
	pen.ClosePath()
	out := pen.Outline()

	g, err := out.Glyph()
	if err != nil {
		t.Fatal(err)
	}
	bbox, _ := out.BBox()
	if g.Rect16 != bbox {
		t.Errorf("glyph bbox %v, want %v", g.Rect16, bbox)
	}

	simple, ok := g.Data.(glyf.SimpleGlyph)
	if !ok {
		t.Fatalf("unexpected glyph type %T", g.Data)
	}
	info, err := simple.Unpack()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(out.Contours, info.Contours); d != "" {
		t.Error(d)
	}

	// the encoded glyph must survive a round trip through a glyf table
	gg, err := glyf.Decode(glyf.Glyphs{g}.Encode())
	if err != nil {
		t.Fatal(err)
	}
	if len(gg) != 1 || gg[0].Rect16 != bbox {
		t.Fatalf("unexpected decoded glyphs %v", gg)
	}
}

func TestEmptyGlyph(t *testing.T) {
	out := NewPen().Outline()
	if !out.IsEmpty() {
		t.Fatal("outline should be empty")
	}
	g, err := out.Glyph()
	if err != nil {
		t.Fatal(err)
	}
	if g != nil {
		t.Errorf("expected nil glyph, got %v", g)
	}
	if _, ok := out.BBox(); ok {
		t.Error("empty outline has no bbox")
	}
}

func TestTranslate(t *testing.T) {
	out := &Outline{
		Contours: []glyf.Contour{
			{{X: 1, Y: 2, OnCurve: true}, {X: 3, Y: 4}},
		},
	}
	moved, err := out.Translate(10, -20)
	if err != nil {
		t.Fatal(err)
	}
	want := &Outline{
		Contours: []glyf.Contour{
			{{X: 11, Y: -18, OnCurve: true}, {X: 13, Y: -16}},
		},
	}
	if d := cmp.Diff(want, moved); d != "" {
		t.Error(d)
	}
	if out.Contours[0][0].X != 1 {
		t.Error("Translate modified its receiver")
	}

	bbox, _ := moved.BBox()
	if bbox != (funit.Rect16{LLx: 11, LLy: -18, URx: 13, URy: -16}) {
		t.Errorf("unexpected bbox %v", bbox)
	}
}

func TestTranslateRange(t *testing.T) {
	out := &Outline{
		Contours: []glyf.Contour{
			{{X: -100, Y: 0, OnCurve: true}, {X: 30000, Y: 10, OnCurve: true}},
		},
	}
	if _, err := out.Translate(2767, 0); err != nil {
		t.Errorf("largest valid shift: %v", err)
	}
	for _, d := range [][2]int{{2768, 0}, {-32669, 0}, {0, 40000}} {
		_, err := out.Translate(d[0], d[1])
		if !errors.Is(err, ErrRange) {
			t.Errorf("shift %v: expected ErrRange, got %v", d, err)
		}
	}
}
