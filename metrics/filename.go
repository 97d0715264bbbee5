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

package metrics

import (
	"path/filepath"
	"strconv"
	"strings"
)

// FileNameError indicates that a file name does not follow the pattern
// <chars>_<width>_<lsb>_<rsb>.svg.
type FileNameError struct {
	Name   string
	Reason string
	Err    error
}

func (err *FileNameError) Error() string {
	msg := "wrong filename format " + strconv.Quote(err.Name) + ": " + err.Reason
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *FileNameError) Unwrap() error {
	return err.Err
}

// ParseFileName extracts the glyph measurements from the name of a glyph
// drawing.  The name has the form <chars>_<width>_<lsb>_<rsb>.svg, where
// the measurements are integers in pixels.  Additional fields after the
// right side bearing are ignored.  Directory components are ignored.
func ParseFileName(fname string) (*Record, error) {
	base := filepath.Base(fname)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(stem, "_")
	if len(parts) < 4 {
		return nil, &FileNameError{
			Name:   base,
			Reason: "expected 4 fields, found " + strconv.Itoa(len(parts)),
		}
	}
	if parts[0] == "" {
		return nil, &FileNameError{Name: base, Reason: "missing characters"}
	}

	var vals [3]int
	for i, field := range []string{"width", "lsb", "rsb"} {
		x, err := strconv.Atoi(parts[i+1])
		if err != nil {
			return nil, &FileNameError{Name: base, Reason: "invalid " + field, Err: err}
		}
		vals[i] = x
	}

	rec := &Record{
		Chars:   parts[0],
		WidthPx: vals[0],
		LSBPx:   vals[1],
		RSBPx:   vals[2],
	}
	return rec, nil
}
