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

// Package glyphsvg converts the drawing of a single glyph, stored as an
// SVG file, into a TrueType outline.
//
// The characters shown by a drawing are encoded in the file name, as the
// part before the first underscore.  The glyph is placed vertically so
// that the top of the drawing lies on a given headline.
package glyphsvg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dergefont/svgpath"
	"seehuhn.de/go/dergefont/ttglyph"
)

// NamespaceSVG is the XML namespace of SVG elements.
const NamespaceSVG = "http://www.w3.org/2000/svg"

// Glyph is a glyph outline, converted from an SVG drawing.
type Glyph struct {
	// Name is the glyph name, derived from the characters in the file name.
	Name string

	// Codepoints lists the characters shown by the glyph.
	Codepoints []rune

	// Outline is the glyph outline in font design units.
	Outline *ttglyph.Outline

	// BBox is the union of the bounding boxes of all path elements,
	// in SVG coordinates.  This is nil if the drawing contains no paths.
	BBox *rect.Rect

	// Shift is the vertical translation applied to the SVG coordinates,
	// including the baseline offset.
	Shift float64
}

// Options control the conversion of a drawing.
type Options struct {
	// Headline is the target y-coordinate for the top of the glyph.
	Headline float64

	// BaselineOffset is added to the vertical shift of every glyph.
	BaselineOffset float64

	// Tolerance is the maximal error for the conversion of cubic curves to
	// quadratic curves.  If this is zero, [ttglyph.DefaultTolerance] is used.
	Tolerance float64
}

// Codepoints returns the characters encoded in the file name of a glyph
// drawing, i.e. the part of the base name before the first underscore.
func Codepoints(fname string) []rune {
	base := filepath.Base(fname)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	chars, _, _ := strings.Cut(stem, "_")
	return []rune(chars)
}

// GlyphName returns the glyph name for a sequence of characters.
// The name consists of the prefix "uni" followed by the code points in
// upper case hexadecimal, each padded to at least four digits.
func GlyphName(rr []rune) string {
	var b strings.Builder
	b.WriteString("uni")
	for _, r := range rr {
		fmt.Fprintf(&b, "%04X", r)
	}
	return b.String()
}

// NameFromFile returns the glyph name for a glyph drawing.
func NameFromFile(fname string) string {
	return GlyphName(Codepoints(fname))
}

// ReadFile converts the SVG drawing stored in the file fname.
func ReadFile(fname string, opt *Options) (*Glyph, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return Read(fd, fname, opt)
}

// Read converts an SVG drawing.  The name is used to determine the
// characters shown by the glyph.
//
// All path elements of the drawing contribute to the outline.  The
// drawing is shifted vertically so that the top of the union of the
// bounding boxes of all paths lies at opt.Headline + opt.BaselineOffset.
// SVG coordinates are used unchanged otherwise.
func Read(r io.Reader, name string, opt *Options) (*Glyph, error) {
	rr := Codepoints(name)
	g := &Glyph{
		Name:       GlyphName(rr),
		Codepoints: rr,
	}

	data, err := pathData(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	paths := make([]svgpath.Path, 0, len(data))
	for _, d := range data {
		p, bbox, err := svgpath.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		paths = append(paths, p)
		g.BBox = svgpath.Union(g.BBox, bbox)
	}

	pen := ttglyph.NewPen()
	if opt.Tolerance > 0 {
		pen.Tolerance = opt.Tolerance
	}
	if g.BBox != nil {
		g.Shift = opt.Headline - g.BBox.URy + opt.BaselineOffset
		M := matrix.Translate(0, g.Shift)
		for _, p := range paths {
			svgpath.Transform(p, M).Draw(pen)
		}
	}
	g.Outline = pen.Outline()

	return g, nil
}

// pathData returns the "d" attributes of all path elements, in document
// order.
func pathData(r io.Reader) ([]string, error) {
	var res []string
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		e, ok := tok.(xml.StartElement)
		if !ok || e.Name.Local != "path" {
			continue
		}
		if e.Name.Space != NamespaceSVG && e.Name.Space != "" {
			continue
		}
		for _, a := range e.Attr {
			if a.Name.Local == "d" && a.Name.Space == "" {
				res = append(res, a.Value)
				break
			}
		}
	}
	return res, nil
}
