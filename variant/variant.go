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

// Package variant builds one font for every directory of glyph drawings.
//
// Each subdirectory of the input directory holds the drawings for one
// variant of the typeface.  The variant identifier is the part of the
// directory name after the last underscore, so that the directory
// "variant_3" produces the font "derge_var_3.ttf".
package variant

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/dergefont/assemble"
	"seehuhn.de/go/dergefont/config"
)

// Summary lists the results of a run.
type Summary struct {
	Fonts  []*Font
	Failed []string // directories which could not be processed
}

// Font describes a generated font.
type Font struct {
	Dir     string
	ID      string
	Path    string
	Replace *assemble.Report
}

// ID returns the variant identifier for a directory name.
func ID(dir string) string {
	base := filepath.Base(dir)
	if i := strings.LastIndex(base, "_"); i >= 0 {
		return base[i+1:]
	}
	return base
}

// Run generates a font for every subdirectory of root.
// The glyphs in each font are taken from the drawings in the corresponding
// directory, all other data from the base font.  The fonts are written to
// outDir, which is created if needed.
//
// Failures for individual directories are written to log, and processing
// continues with the next directory.  An error is returned only if root
// cannot be read or outDir cannot be created.
func Run(root, baseFont, outDir string, cfg *config.Config, log io.Writer) (*Summary, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	err = os.MkdirAll(outDir, 0o755)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)

	res := &Summary{}
	for _, dir := range dirs {
		f, err := one(filepath.Join(root, dir), baseFont, outDir, cfg, log)
		if err != nil {
			fmt.Fprintf(log, "Error processing folder %s: %v\n", dir, err)
			res.Failed = append(res.Failed, dir)
			continue
		}
		fmt.Fprintf(log, "Created font: %s\n", f.Path)
		res.Fonts = append(res.Fonts, f)
	}
	return res, nil
}

// one builds the font for a single directory.
func one(dir, baseFont, outDir string, cfg *config.Config, log io.Writer) (f *Font, err error) {
	defer func() {
		if r := recover(); r != nil {
			f = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	// Every variant starts from a fresh copy of the base font.
	font, err := sfnt.ReadFile(baseFont)
	if err != nil {
		return nil, err
	}

	report, err := assemble.Variant(font, dir, cfg, log)
	if err != nil {
		return nil, err
	}

	id := ID(dir)
	fname := filepath.Join(outDir, cfg.OutputName(id))
	family, full := cfg.Names(id)
	err = assemble.Save(font, fname, family, full)
	if err != nil {
		return nil, err
	}

	f = &Font{
		Dir:     dir,
		ID:      id,
		Path:    fname,
		Replace: report,
	}
	return f, nil
}
