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

// Derge-render draws a text file into a PNG image, using a randomly chosen
// variant font for every character.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/dergefont/render"
	"seehuhn.de/go/dergefont/tools/internal/buildinfo"
	"seehuhn.de/go/dergefont/tools/internal/profile"
)

var (
	fontsArg   = flag.String("fonts", "fonts", "`directory` with the variant fonts")
	outArg     = flag.String("o", "data/synt_img/derge_kangyur_1.png", "output `file`")
	widthArg   = flag.Int("width", 2400, "image width in pixels")
	heightArg  = flag.Int("height", 350, "minimal image height in pixels")
	sizeArg    = flag.Float64("size", 50, "font size in pixels")
	seedArg    = flag.Uint64("seed", 0, "seed for the random choice of fonts")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "derge-render \u2014 render synthetic page images\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("derge-render"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  derge-render [options] [<text-file>]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  text-file   UTF-8 text to render (default data/txt/test.txt)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  derge-render\n")
		fmt.Fprintf(os.Stderr, "  derge-render -seed 7 -o page7.png kangyur.txt\n")
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	textFile := "data/txt/test.txt"
	if flag.NArg() > 0 {
		textFile = flag.Arg(0)
	}

	fonts, err := render.LoadFonts(*fontsArg)
	if err != nil {
		return err
	}
	text, err := render.ReadText(textFile)
	if err != nil {
		return err
	}

	opt := render.DefaultOptions()
	opt.Width = *widthArg
	opt.Height = *heightArg
	opt.FontSize = *sizeArg
	opt.Seed = *seedArg

	r, err := render.New(fonts, opt)
	if err != nil {
		return fmt.Errorf("%s: %w", *fontsArg, err)
	}
	defer r.Close()
	r.Log = os.Stdout

	img, _ := r.Text(text)
	err = render.SavePNG(*outArg, img)
	if err != nil {
		return err
	}
	fmt.Printf("image saved at %s\n", *outArg)
	return nil
}
