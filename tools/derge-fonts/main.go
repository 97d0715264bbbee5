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

// Derge-fonts builds one variant font for every directory of glyph drawings.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/dergefont/config"
	"seehuhn.de/go/dergefont/tools/internal/buildinfo"
	"seehuhn.de/go/dergefont/tools/internal/profile"
	"seehuhn.de/go/dergefont/variant"
)

var (
	baseArg    = flag.String("base", "data/base_font/sambhotaUnicodeBaseShip.ttf", "base font `file`")
	outArg     = flag.String("o", "fonts", "output `directory`")
	configArg  = flag.String("config", "", "read parameters from YAML `file`")
	verbose    = flag.Bool("v", false, "list the replaced glyphs")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "derge-fonts \u2014 build variant fonts from SVG glyph drawings\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("derge-fonts"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  derge-fonts [options] [<variant-root>]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  variant-root   directory with one subdirectory per variant\n")
		fmt.Fprintf(os.Stderr, "                 (default data/variant_svg)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  derge-fonts\n")
		fmt.Fprintf(os.Stderr, "  derge-fonts -base base.ttf -o out data/variant_svg\n")
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

	cfg := config.Default()
	if *configArg != "" {
		cfg, err = config.Load(*configArg)
		if err != nil {
			return err
		}
	}

	root := "data/variant_svg"
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	summary, err := variant.Run(root, *baseArg, *outArg, cfg, os.Stdout)
	if err != nil {
		return err
	}

	if *verbose {
		for _, f := range summary.Fonts {
			fmt.Printf("\n%s: %d glyphs replaced, %d not in base font\n",
				f.Path, len(f.Replace.Glyphs), f.Replace.Missing)
			for _, g := range f.Replace.Glyphs {
				m := g.Metrics
				fmt.Printf("  %-16s gid %-5d adv %5d  lsb %5d  rsb %5d  %s\n",
					g.Name, g.GID, m.Advance, m.LSB, m.RSB, g.File)
			}
		}
	}

	if len(summary.Failed) > 0 {
		return fmt.Errorf("%d of %d variants failed",
			len(summary.Failed), len(summary.Failed)+len(summary.Fonts))
	}
	fmt.Println("variant fonts created successfully.")
	return nil
}
