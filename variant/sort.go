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

package variant

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"seehuhn.de/go/dergefont/metrics"
)

// Sort distributes a flat directory of glyph drawings into variant
// directories.  The drawings are grouped by the characters they show, and
// each group is ordered by the width given in the file name.  The n-th
// drawing of every group is copied into the directory outDir/variant_n.
//
// Files which do not have at least four underscore-separated fields are
// ignored.  The return value is the number of variant directories.
func Sort(inDir, outDir string) (int, error) {
	entries, err := os.ReadDir(inDir)
	if err != nil {
		return 0, err
	}

	type drawing struct {
		name  string
		width int
	}
	groups := make(map[string][]drawing)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".svg" {
			continue
		}
		parts := strings.Split(name, "_")
		if len(parts) < 4 {
			continue
		}
		width, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, &metrics.FileNameError{Name: name, Reason: "invalid width", Err: err}
		}
		groups[parts[0]] = append(groups[parts[0]], drawing{name, width})
	}

	err = os.MkdirAll(outDir, 0o755)
	if err != nil {
		return 0, err
	}

	numVariants := 0
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].width != group[j].width {
				return group[i].width < group[j].width
			}
			return group[i].name < group[j].name
		})
		for i, d := range group {
			dir := filepath.Join(outDir, fmt.Sprintf("variant_%d", i+1))
			err := os.MkdirAll(dir, 0o755)
			if err != nil {
				return 0, err
			}
			err = copyFile(filepath.Join(dir, d.name), filepath.Join(inDir, d.name))
			if err != nil {
				return 0, err
			}
		}
		numVariants = max(numVariants, len(group))
	}
	return numVariants, nil
}

func copyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
