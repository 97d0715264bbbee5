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

// Package render draws text into images, using a random font for every
// character.  Together with a set of variant fonts, this produces synthetic
// page images which imitate the irregular letter shapes of a block print.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Options control the layout of the generated images.
type Options struct {
	Width, Height int // initial image size in pixels
	FontSize      float64

	PaddingLeft, PaddingRight int
	PaddingTop, PaddingBottom int
	StartX, StartY            int
	LineSpacing               int // distance between lines; 0 means FontSize+2

	Background color.Color
	Foreground color.Color

	// Seed initializes the random choice of fonts.
	Seed uint64
}

// DefaultOptions returns the layout used for the synthetic page images.
func DefaultOptions() *Options {
	return &Options{
		Width:         2400,
		Height:        350,
		FontSize:      50,
		PaddingLeft:   20,
		PaddingRight:  20,
		PaddingTop:    20,
		PaddingBottom: 20,
		StartY:        20,
		Background:    color.White,
		Foreground:    color.Black,
	}
}

func (opt *Options) lineSpacing() int {
	if opt.LineSpacing > 0 {
		return opt.LineSpacing
	}
	return int(opt.FontSize) + 2
}

// LoadFonts returns the names of all TrueType files in dir, in sorted order.
func LoadFonts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var res []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".ttf") {
			res = append(res, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(res)
	return res, nil
}

// ReadText reads a UTF-8 text file.
func ReadText(fname string) (string, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var errNoFonts = errors.New("no fonts")

// Renderer draws text using a random choice of fonts.
type Renderer struct {
	Opt *Options

	// Log receives diagnostic messages.  If this is nil, messages
	// are discarded.
	Log io.Writer

	faces []font.Face
	rng   *rand.Rand
}

// New returns a Renderer which uses the given font files.
func New(fonts []string, opt *Options) (*Renderer, error) {
	if len(fonts) == 0 {
		return nil, errNoFonts
	}
	data := make([][]byte, len(fonts))
	for i, fname := range fonts {
		body, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		data[i] = body
	}
	return NewFromData(data, opt)
}

// NewFromData returns a Renderer which uses the given font data.
func NewFromData(fonts [][]byte, opt *Options) (*Renderer, error) {
	if len(fonts) == 0 {
		return nil, errNoFonts
	}
	o := *opt
	if o.Background == nil {
		o.Background = color.White
	}
	if o.Foreground == nil {
		o.Foreground = color.Black
	}
	r := &Renderer{
		Opt: &o,
		rng: rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15)),
	}
	for i, data := range fonts {
		f, err := opentype.Parse(data)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("font %d: %w", i, err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    opt.FontSize,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("font %d: %w", i, err)
		}
		r.faces = append(r.faces, face)
	}
	return r, nil
}

// Close releases the font faces.
func (r *Renderer) Close() error {
	var errs []error
	for _, face := range r.faces {
		errs = append(errs, face.Close())
	}
	r.faces = nil
	return errors.Join(errs...)
}

// NewImage returns an image of the given size, filled with the
// background color.
func (r *Renderer) NewImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Opt.Background), image.Point{}, draw.Src)
	return img
}

type glyphRun struct {
	text string
	face font.Face
}

// Line draws one line of text, with the top of the line at y.  Every
// character uses a randomly chosen font.  The free horizontal space is
// distributed evenly between the words, so that the line fills the width
// of the image between the paddings.  The return value is the horizontal
// position after the last character.
func (r *Renderer) Line(dst draw.Image, line string, y int) int {
	opt := r.Opt
	words := strings.Fields(line)

	runs := make([][]glyphRun, len(words))
	var total fixed.Int26_6
	for i, word := range words {
		for _, c := range word {
			face := r.faces[r.rng.IntN(len(r.faces))]
			runs[i] = append(runs[i], glyphRun{string(c), face})
			total += font.MeasureString(face, string(c))
		}
	}

	var space fixed.Int26_6
	if n := len(words) - 1; n > 0 {
		avail := fixed.I(dst.Bounds().Dx()-opt.PaddingLeft-opt.PaddingRight) - total
		space = avail / fixed.Int26_6(n)
	}

	d := &font.Drawer{
		Dst: dst,
		Src: image.NewUniform(opt.Foreground),
		Dot: fixed.Point26_6{X: fixed.I(opt.StartX + opt.PaddingLeft)},
	}
	for i, run := range runs {
		for _, g := range run {
			d.Face = g.face
			d.Dot.Y = fixed.I(y) + g.face.Metrics().Ascent
			d.DrawString(g.text)
		}
		if i < len(runs)-1 {
			d.Dot.X += space
		}
	}
	return d.Dot.X.Ceil()
}

// Text draws a multi-line text into a new image.  If the text does not
// fit, the image is made taller.  The second return value is the
// y-coordinate after the last line, including the bottom padding.
func (r *Renderer) Text(text string) (*image.RGBA, int) {
	opt := r.Opt
	img := r.NewImage(opt.Width, opt.Height)
	spacing := opt.lineSpacing()

	y := opt.StartY + opt.PaddingTop
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if need := y + spacing; need > img.Bounds().Dy() {
			img = r.grow(img, need)
		}
		r.Line(img, line, y)
		y += spacing
	}
	final := y + opt.PaddingBottom

	if final > opt.Height {
		if r.Log != nil {
			fmt.Fprintf(r.Log, "text exceeds the image height (%d > %d)\n", final, opt.Height)
		}
		img = r.grow(img, final)
	}
	return img, final
}

// grow returns a copy of img with the given height.
func (r *Renderer) grow(img *image.RGBA, height int) *image.RGBA {
	b := img.Bounds()
	if height <= b.Dy() {
		return img
	}
	res := r.NewImage(b.Dx(), height)
	draw.Copy(res, image.Point{}, img, b, draw.Src, nil)
	return res
}

// SavePNG writes img to the named file, in PNG format.
func SavePNG(fname string, img image.Image) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
