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

package fontfile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/name"
)

// fileChecksum returns the sum of all 32-bit words of a font file.
// For a font with a correct "head" table this is 0xB1B0AFBA.
func fileChecksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

// withTables writes Go Regular with some tables replaced.
// A nil value removes the table.
func withTables(t *testing.T, replace map[string][]byte) []byte {
	t.Helper()
	scalerType, tables, err := Tables(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	for tag, body := range replace {
		if body == nil {
			delete(tables, tag)
		} else {
			tables[tag] = body
		}
	}
	buf := &bytes.Buffer{}
	_, err = header.Write(buf, scalerType, tables)
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRename(t *testing.T) {
	before, err := Names(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if len(before.Mac)+len(before.Windows) == 0 {
		t.Fatal("test font has no name tables")
	}

	out, err := Rename(goregular.TTF, "Derge-Var3", "DergeVar3")
	if err != nil {
		t.Fatal(err)
	}
	if sum := fileChecksum(out); sum != 0xB1B0AFBA {
		t.Errorf("wrong file checksum %08x", sum)
	}

	after, err := Names(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []name.Tables{before.Mac, before.Windows} {
		for _, table := range tt {
			table.Family = "Derge-Var3"
			table.FullName = "DergeVar3"
		}
	}
	if d := cmp.Diff(before, after); d != "" {
		t.Error(d)
	}

	_, oldTables, err := Tables(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	_, newTables, err := Tables(out)
	if err != nil {
		t.Fatal(err)
	}
	for tag, body := range oldTables {
		if tag == "head" || tag == "name" {
			continue
		}
		if !bytes.Equal(body, newTables[tag]) {
			t.Errorf("table %q changed", tag)
		}
	}

	// the result must still be a usable font
	font, err := sfnt.Read(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if font.FamilyName != "Derge-Var3" {
		t.Errorf("wrong family name %q", font.FamilyName)
	}
}

func TestRenameEmptyNameTable(t *testing.T) {
	data := withTables(t, map[string][]byte{
		"name": (&name.Info{}).Encode(windowsUnicodeBMP),
	})

	out, err := Rename(data, "Derge-Var1", "DergeVar1")
	if err != nil {
		t.Fatal(err)
	}
	names, err := Names(out)
	if err != nil {
		t.Fatal(err)
	}
	table := names.Windows["en-US"]
	if table == nil {
		t.Fatalf("missing Windows name table: %v", names)
	}
	if table.Family != "Derge-Var1" || table.FullName != "DergeVar1" {
		t.Errorf("wrong names %q, %q", table.Family, table.FullName)
	}
}

func TestRenameErrors(t *testing.T) {
	data := withTables(t, map[string][]byte{"name": nil})
	_, err := Rename(data, "A", "B")
	if !errors.Is(err, errNoNameTable) {
		t.Errorf("expected errNoNameTable, got %v", err)
	}

	_, err = Rename([]byte("not a font"), "A", "B")
	if err == nil {
		t.Error("invalid data accepted")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "derge_var_1.ttf")

	for _, data := range [][]byte{[]byte("first"), []byte("second version")} {
		err := WriteFile(fname, data)
		if err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(fname)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("got %q, want %q", got, data)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 file, found %d", len(entries))
	}
}
