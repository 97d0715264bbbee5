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

// Package assemble replaces glyphs of a TrueType base font by outlines
// converted from a directory of SVG drawings.
package assemble

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/dergefont/config"
	"seehuhn.de/go/dergefont/fontfile"
	"seehuhn.de/go/dergefont/glyphsvg"
	"seehuhn.de/go/dergefont/metrics"
	"seehuhn.de/go/dergefont/svgpath"
	"seehuhn.de/go/dergefont/ttglyph"
)

var (
	errNotGlyf = errors.New("base font does not use TrueType outlines")
	errNoNames = errors.New("base font has neither glyph names nor a character map")
)

// Report summarizes the changes made to a font.
type Report struct {
	// Glyphs lists the replaced glyphs, in the order of processing.
	Glyphs []*Replaced

	// Missing counts the drawings for which the base font has no glyph.
	Missing int

	// Skipped lists the drawings which could not be used.
	Skipped []string
}

// Replaced describes a glyph which was replaced.
type Replaced struct {
	File    string
	Name    string
	GID     glyph.ID
	Metrics metrics.Horizontal
}

// Variant replaces the glyphs of font by the drawings in dir.
//
// The glyph to replace is found by name.  For base fonts without glyph
// names, drawings of single characters are matched through the character
// map.  Drawings for glyphs which are not present in the base font are
// ignored, no glyphs are added to the font.  Drawings with malformed file
// names or path data, and drawings whose metrics or coordinates do not fit
// into the font, are skipped with a message written to log.  Other errors
// abort the processing.
func Variant(font *sfnt.Font, dir string, cfg *config.Config, log io.Writer) (*Report, error) {
	outlines, ok := font.Outlines.(*glyf.Outlines)
	if !ok {
		return nil, errNotGlyf
	}
	slots, err := newSlotMap(font, outlines)
	if err != nil {
		return nil, err
	}

	files, err := drawings(dir)
	if err != nil {
		return nil, err
	}

	calc := metrics.NewCalculator(cfg)
	res := &Report{}
	for _, fname := range files {
		base := filepath.Base(fname)
		chars := glyphsvg.Codepoints(base)
		name := glyphsvg.GlyphName(chars)
		gid, ok := slots.lookup(name, chars)
		if !ok {
			res.Missing++
			continue
		}

		rec, err := metrics.ParseFileName(base)
		if err != nil {
			fmt.Fprintf(log, "File with wrong filename format: %s\n", base)
			res.Skipped = append(res.Skipped, base)
			continue
		}

		g, err := glyphsvg.ReadFile(fname, &glyphsvg.Options{
			Headline:       cfg.Headline(name),
			BaselineOffset: cfg.BaselineOffset,
			Tolerance:      cfg.Tolerance,
		})
		var pathErr *svgpath.ParseError
		if errors.As(err, &pathErr) {
			fmt.Fprintf(log, "Invalid path data in %s: %v\n", base, pathErr)
			res.Skipped = append(res.Skipped, base)
			continue
		} else if err != nil {
			return nil, err
		}

		hm, err := calc.Compute(rec, name)
		if err != nil {
			fmt.Fprintf(log, "Metrics out of range in %s: %v\n", base, err)
			res.Skipped = append(res.Skipped, base)
			continue
		}

		outline := g.Outline
		if bbox, ok := outline.BBox(); ok {
			outline, err = outline.Translate(int(hm.LSB)-int(bbox.LLx), 0)
			if errors.Is(err, ttglyph.ErrRange) {
				fmt.Fprintf(log, "Glyph out of range in %s: %v\n", base, err)
				res.Skipped = append(res.Skipped, base)
				continue
			}
		}
		newGlyph, err := outline.Glyph()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", base, err)
		}

		outlines.Glyphs[gid] = newGlyph
		outlines.Widths[gid] = hm.Advance
		res.Glyphs = append(res.Glyphs, &Replaced{
			File:    base,
			Name:    name,
			GID:     gid,
			Metrics: hm,
		})
	}
	return res, nil
}

// slotMap finds the glyph replaced by a drawing.
type slotMap struct {
	byName  map[string]glyph.ID
	charMap cmap.Subtable
}

// newSlotMap indexes the glyphs of font by name.  If the font has no glyph
// names, single characters are looked up in the character map instead.
func newSlotMap(font *sfnt.Font, outlines *glyf.Outlines) (*slotMap, error) {
	if outlines.Names != nil {
		byName := make(map[string]glyph.ID, len(outlines.Names))
		for gid, name := range outlines.Names {
			if _, seen := byName[name]; !seen && name != "" {
				byName[name] = glyph.ID(gid)
			}
		}
		return &slotMap{byName: byName}, nil
	}

	sub, err := font.CMapTable.GetBest()
	if err != nil {
		return nil, errNoNames
	}
	return &slotMap{charMap: sub}, nil
}

func (m *slotMap) lookup(name string, chars []rune) (glyph.ID, bool) {
	if m.byName != nil {
		gid, ok := m.byName[name]
		return gid, ok
	}
	if len(chars) != 1 {
		return 0, false
	}
	gid := m.charMap.Lookup(chars[0])
	return gid, gid != 0
}

// drawings returns the SVG files in dir, sorted by name.
func drawings(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var res []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			continue
		}
		res = append(res, filepath.Join(dir, e.Name()))
	}
	sort.Strings(res)
	return res, nil
}

// Save writes the font to the named file, using the given family name and
// full font name.  The output file is replaced atomically.
func Save(font *sfnt.Font, fname string, family, full string) error {
	font.FamilyName = family

	buf := &bytes.Buffer{}
	_, err := font.Write(buf)
	if err != nil {
		return err
	}
	data, err := fontfile.Rename(buf.Bytes(), family, full)
	if err != nil {
		return err
	}
	return fontfile.WriteFile(fname, data)
}
