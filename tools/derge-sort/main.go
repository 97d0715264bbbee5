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

// Derge-sort distributes glyph drawings into one directory per variant.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/dergefont/tools/internal/buildinfo"
	"seehuhn.de/go/dergefont/variant"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "derge-sort \u2014 sort glyph drawings into variant directories\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("derge-sort"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  derge-sort [<input-dir> [<output-dir>]]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  input-dir    flat directory of drawings (default data/glyph_svg)\n")
		fmt.Fprintf(os.Stderr, "  output-dir   where variant_N directories are created\n")
		fmt.Fprintf(os.Stderr, "               (default data/variant_svg)\n\n")
		fmt.Fprintf(os.Stderr, "The n-th drawing of each character, ordered by width,\n")
		fmt.Fprintf(os.Stderr, "is copied into output-dir/variant_n.\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  derge-sort\n")
		fmt.Fprintf(os.Stderr, "  derge-sort scans/glyphs data/variant_svg\n")
	}
	flag.Parse()

	if flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}

	in, out := "data/glyph_svg", "data/variant_svg"
	if flag.NArg() > 0 {
		in = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		out = flag.Arg(1)
	}

	n, err := variant.Sort(in, out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("glyph variants sorted into: %s (%d variants)\n", out, n)
}
