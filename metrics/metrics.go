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

// Package metrics computes the horizontal metrics of a glyph from the
// pixel measurements recorded for its drawing.
package metrics

import (
	"fmt"
	"math"

	"seehuhn.de/go/dergefont/config"
	"seehuhn.de/go/postscript/funit"
)

// Record holds the measurements of one glyph drawing, in pixels.
type Record struct {
	Chars   string // the character(s) shown by the drawing
	WidthPx int
	LSBPx   int
	RSBPx   int
}

// Horizontal contains the horizontal metrics of a glyph, in design units.
type Horizontal struct {
	Advance funit.Int16
	LSB     funit.Int16
	RSB     funit.Int16
}

// Calculator converts pixel measurements into horizontal metrics.
type Calculator struct {
	UnitsPerEm  float64
	PixelsPerEm float64
	Padding     int
	Overrides   map[string]config.MetricsOverride
}

// NewCalculator returns a Calculator using the values from cfg.
func NewCalculator(cfg *config.Config) *Calculator {
	return &Calculator{
		UnitsPerEm:  cfg.UnitsPerEm,
		PixelsPerEm: cfg.PixelsPerEm,
		Padding:     cfg.Padding,
		Overrides:   cfg.Metrics,
	}
}

// ToDesignUnits converts a length in pixels to design units.
// The result is truncated towards zero.
func (c *Calculator) ToDesignUnits(px int) int {
	return int(float64(px) / c.PixelsPerEm * c.UnitsPerEm)
}

// RangeError indicates that a computed metric does not fit into the
// range of values a font can store.
type RangeError struct {
	Field string
	Value int
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range", err.Field, err.Value)
}

// Compute returns the horizontal metrics for the glyph with the given
// name.  The advance width is the sum of the width, both side bearings
// and the padding, unless an override is configured for the glyph.
// If a value cannot be stored in a font, a [*RangeError] is returned.
func (c *Calculator) Compute(rec *Record, name string) (Horizontal, error) {
	width := c.ToDesignUnits(rec.WidthPx)
	lsb := c.ToDesignUnits(rec.LSBPx)
	rsb := c.ToDesignUnits(rec.RSBPx)
	advance := width + lsb + rsb + c.Padding

	if o, ok := c.Overrides[name]; ok {
		switch o.Kind {
		case config.Mark:
			lsb += o.LSBShift
			rsb = 0
			advance = 0
		case config.WidthOnly:
			rsb = 0
			advance = width
		}
	}

	if advance < 0 || advance > math.MaxInt16 {
		return Horizontal{}, &RangeError{Field: "advance width", Value: advance}
	}
	for _, v := range []struct {
		field string
		val   int
	}{{"left side bearing", lsb}, {"right side bearing", rsb}} {
		if v.val < math.MinInt16 || v.val > math.MaxInt16 {
			return Horizontal{}, &RangeError{Field: v.field, Value: v.val}
		}
	}

	return Horizontal{
		Advance: funit.Int16(advance),
		LSB:     funit.Int16(lsb),
		RSB:     funit.Int16(rsb),
	}, nil
}
