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

// Package fontfile adjusts serialized sfnt font files.  This is used to
// change the "name" table of a font after the font has been written.
package fontfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/name"
)

// windowsUnicodeBMP is the encoding ID used for Windows name records.
// This matches the "cmap" subtables written by the sfnt library.
const windowsUnicodeBMP = 1

var errNoNameTable = errors.New("font has no name table")

// Tables reads all tables of an sfnt font file.
func Tables(data []byte) (uint32, map[string][]byte, error) {
	r := bytes.NewReader(data)
	info, err := header.Read(r)
	if err != nil {
		return 0, nil, err
	}
	tables := make(map[string][]byte, len(info.Toc))
	for tag := range info.Toc {
		body, err := info.ReadTableBytes(r, tag)
		if err != nil {
			return 0, nil, fmt.Errorf("%q table: %w", tag, err)
		}
		tables[tag] = body
	}
	return info.ScalerType, tables, nil
}

// Names decodes the "name" table of an sfnt font file.
func Names(data []byte) (*name.Info, error) {
	_, tables, err := Tables(data)
	if err != nil {
		return nil, err
	}
	body, ok := tables["name"]
	if !ok {
		return nil, errNoNameTable
	}
	return name.Decode(body)
}

// Rename returns a copy of the sfnt file data where the family name and the
// full font name are replaced in every Macintosh and Windows name table.
// If the font has no such table, an American English Windows table is added.
func Rename(data []byte, family, full string) ([]byte, error) {
	scalerType, tables, err := Tables(data)
	if err != nil {
		return nil, err
	}
	body, ok := tables["name"]
	if !ok {
		return nil, errNoNameTable
	}
	names, err := name.Decode(body)
	if err != nil {
		return nil, err
	}

	if len(names.Mac) == 0 && len(names.Windows) == 0 {
		names.Windows = name.Tables{
			language.AmericanEnglish.String(): &name.Table{},
		}
	}
	for _, tt := range []name.Tables{names.Mac, names.Windows} {
		for _, t := range tt {
			t.Family = family
			t.FullName = full
		}
	}
	tables["name"] = names.Encode(windowsUnicodeBMP)

	buf := &bytes.Buffer{}
	_, err = header.Write(buf, scalerType, tables)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes data to the named file.  The data is first written to
// a temporary file in the same directory, which is then renamed.  This way,
// the named file is never left in a partially written state.
func WriteFile(fname string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(fname), "."+filepath.Base(fname)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	_, err = tmp.Write(data)
	if err != nil {
		return err
	}
	err = tmp.Chmod(0o644)
	if err != nil {
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fname)
}
