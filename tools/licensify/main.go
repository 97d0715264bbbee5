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

// Licensify adds the GPL license header to Go source files which lack it.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/dergefont/tools/internal/buildinfo"
)

const headerTemplate = `// seehuhn.de/go/dergefont - build variant Tibetan fonts from SVG glyph outlines
// Copyright (C) %d  Jochen Voss <voss@seehuhn.de>
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

`

var (
	yearArg = flag.Int("year", 2026, "copyright year for new headers")
	dryRun  = flag.Bool("n", false, "only list the files which need a header")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "licensify \u2014 add license headers to Go source files\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("licensify"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  licensify [options] [<dir>]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	if err := run(root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(root string) error {
	header := []byte(fmt.Sprintf(headerTemplate, *yearArg))
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, status := addHeader(body, header)
		switch status {
		case hasLicense:
			return nil
		case noPackage:
			fmt.Println("ATTENTION " + path)
			return nil
		}

		if *dryRun {
			fmt.Println("missing " + path)
			return nil
		}
		fmt.Println("updating " + path)
		return os.WriteFile(path, out, 0o644)
	})
}

// skipDir reports whether a directory is ignored by the Go tool.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata"
}

type headerStatus int

const (
	added headerStatus = iota
	hasLicense
	noPackage
)

// addHeader prepends header to a Go source file.  Files which already
// carry a license header, i.e. which start with the first line of the
// header in any year, are left alone.  Files which do not start with a
// package clause are not modified either.
func addHeader(body, header []byte) ([]byte, headerStatus) {
	firstLine, _, _ := bytes.Cut(header, []byte("\n"))
	if bytes.HasPrefix(body, firstLine) {
		return body, hasLicense
	}
	if !bytes.HasPrefix(body, []byte("package ")) {
		return body, noPackage
	}
	res := make([]byte, 0, len(header)+len(body))
	res = append(res, header...)
	return append(res, body...), added
}
