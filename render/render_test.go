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

package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func testRenderer(t *testing.T, opt *Options) *Renderer {
	t.Helper()
	r, err := NewFromData([][]byte{goregular.TTF, gomono.TTF}, opt)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func smallOptions() *Options {
	opt := DefaultOptions()
	opt.Width = 500
	opt.Height = 200
	opt.FontSize = 20
	opt.PaddingLeft = 10
	opt.PaddingRight = 10
	opt.PaddingTop = 10
	opt.PaddingBottom = 10
	opt.StartY = 0
	return opt
}

func TestLoadFonts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"derge_var_2.ttf", "derge_var_1.ttf", "notes.txt"} {
		err := os.WriteFile(filepath.Join(dir, name), goregular.TTF, 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}

	fonts, err := LoadFonts(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "derge_var_1.ttf"),
		filepath.Join(dir, "derge_var_2.ttf"),
	}
	if d := cmp.Diff(want, fonts); d != "" {
		t.Error(d)
	}

	r, err := New(fonts, smallOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if len(r.faces) != 2 {
		t.Errorf("expected 2 faces, got %d", len(r.faces))
	}
}

func TestReadText(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test.txt")
	const text = "This is a test text.\nWith multiple lines."
	err := os.WriteFile(fname, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ReadText(fname)
	if err != nil {
		t.Fatal(err)
	}
	if got != text {
		t.Errorf("got %q, want %q", got, text)
	}
}

func TestNewImage(t *testing.T) {
	r := testRenderer(t, smallOptions())
	img := r.NewImage(100, 200)
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 200 {
		t.Errorf("wrong size %v", b)
	}
	if c := img.RGBAAt(50, 50); c.R != 0xFF || c.G != 0xFF || c.B != 0xFF {
		t.Errorf("wrong background %v", c)
	}
}

func TestLineJustified(t *testing.T) {
	r := testRenderer(t, smallOptions())
	img := r.NewImage(500, 100)

	x := r.Line(img, "This is a test", 0)
	right := 500 - 10
	if x < right-1 || x > right+1 {
		t.Errorf("justified line ends at %d, expected %d", x, right)
	}

	x = r.Line(img, "Word", 50)
	if x <= 10 || x >= right {
		t.Errorf("single word ends at %d", x)
	}

	if x := r.Line(img, "", 0); x != 10 {
		t.Errorf("empty line ends at %d", x)
	}
}

func TestLineDraws(t *testing.T) {
	r := testRenderer(t, smallOptions())
	img := r.NewImage(500, 100)
	r.Line(img, "Hello World", 0)

	dark := 0
	for _, v := range img.Pix {
		if v < 0x80 {
			dark++
		}
	}
	if dark == 0 {
		t.Error("no text drawn")
	}
}

func TestText(t *testing.T) {
	r := testRenderer(t, smallOptions())
	img, final := r.Text("This is a test text.\nWith multiple lines.\n")

	// two lines, 22 pixels each, plus paddings
	if want := 10 + 2*22 + 10; final != want {
		t.Errorf("final position %d, expected %d", final, want)
	}
	if img.Bounds().Dy() != 200 {
		t.Errorf("image height changed to %d", img.Bounds().Dy())
	}
}

func TestTextGrow(t *testing.T) {
	log := &bytes.Buffer{}
	r := testRenderer(t, smallOptions())
	r.Log = log

	text := strings.Repeat("one two three\n", 12)
	img, final := r.Text(text)
	if want := 10 + 12*22 + 10; final != want {
		t.Errorf("final position %d, expected %d", final, want)
	}
	if img.Bounds().Dy() != final {
		t.Errorf("image height %d, expected %d", img.Bounds().Dy(), final)
	}
	if !strings.Contains(log.String(), "text exceeds the image height") {
		t.Errorf("unexpected log output %q", log.String())
	}

	// the last line must be drawn
	dark := false
	for y := final - 10 - 22; y < final-10 && !dark; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y).R < 0x80 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Error("last line is missing")
	}
}

func TestDeterministic(t *testing.T) {
	opt := smallOptions()
	opt.Seed = 42
	img1, _ := testRenderer(t, opt).Text("some text\nin two lines")
	img2, _ := testRenderer(t, opt).Text("some text\nin two lines")
	if !bytes.Equal(img1.Pix, img2.Pix) {
		t.Error("same seed gave different images")
	}
}

func TestSavePNG(t *testing.T) {
	r := testRenderer(t, smallOptions())
	img, _ := r.Text("abc")

	fname := filepath.Join(t.TempDir(), "page.png")
	err := SavePNG(fname, img)
	if err != nil {
		t.Fatal(err)
	}

	fd, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	got, err := png.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds %v, expected %v", got.Bounds(), img.Bounds())
	}
}

func TestNoFonts(t *testing.T) {
	_, err := NewFromData(nil, smallOptions())
	if err == nil {
		t.Error("missing fonts accepted")
	}
}
