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

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyf"
)

// Outline is a TrueType glyph outline in font design units.
type Outline struct {
	Contours []glyf.Contour
}

// IsEmpty reports whether the outline has no contours.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Contours) == 0
}

func (o *Outline) unpacked() *glyf.SimpleUnpacked {
	return &glyf.SimpleUnpacked{Contours: o.Contours}
}

// BBox returns the bounding box of all points of the outline.
// The second return value is false if the outline is empty.
func (o *Outline) BBox() (funit.Rect16, bool) {
	if o.IsEmpty() {
		return funit.Rect16{}, false
	}
	return o.unpacked().AsGlyph().Rect16, true
}

// Translate returns a copy of the outline, shifted by (dx, dy).
// If a shifted point does not fit into the range of design units,
// [ErrRange] is returned.
func (o *Outline) Translate(dx, dy int) (*Outline, error) {
	if o == nil {
		return nil, nil
	}
	res := &Outline{Contours: make([]glyf.Contour, len(o.Contours))}
	for i, cc := range o.Contours {
		moved := make(glyf.Contour, len(cc))
		for j, p := range cc {
			x := int(p.X) + dx
			y := int(p.Y) + dy
			if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
				return nil, ErrRange
			}
			moved[j] = glyf.Point{X: funit.Int16(x), Y: funit.Int16(y), OnCurve: p.OnCurve}
		}
		res.Contours[i] = moved
	}
	return res, nil
}

// Glyph converts the outline into a glyph for the "glyf" table.
// An empty outline gives a nil glyph, which the sfnt library writes
// as a glyph without contours.
func (o *Outline) Glyph() (*glyf.Glyph, error) {
	if o.IsEmpty() {
		return nil, nil
	}

	if len(o.Contours) > math.MaxInt16 {
		return nil, errTooManyContours
	}
	var numPoints int
	for _, cc := range o.Contours {
		numPoints += len(cc)
	}
	if numPoints > math.MaxUint16 {
		return nil, errTooManyPoints
	}

	g := o.unpacked().AsGlyph()
	return &g, nil
}

// ErrRange indicates that a glyph coordinate does not fit into the
// 16-bit range of design units.
var ErrRange = errors.New("ttglyph: coordinate out of range")

var (
	errTooManyContours = errors.New("ttglyph: too many contours")
	errTooManyPoints   = errors.New("ttglyph: too many points")
)
