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

// Package config holds the parameters used to turn glyph drawings into
// variant fonts.
//
// The defaults, returned by [Default], describe the Derge glyph set:
// drawings at 160 pixels per em, a 1000 unit em square, and the baseline
// and metrics exceptions for the Tibetan vowel signs.  A YAML file can
// override any of these values, see [Load].
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config collects all tunable values.
type Config struct {
	// UnitsPerEm and PixelsPerEm define the conversion from the pixel
	// measurements in the file names to font design units.
	UnitsPerEm  float64 `yaml:"units_per_em"`
	PixelsPerEm float64 `yaml:"pixels_per_em"`

	// Padding is added to the advance width of every glyph, in design units.
	Padding int `yaml:"padding"`

	// BaselineOffset is added to every vertical shift, to move the SVG
	// coordinates to the origin of the font coordinate system.
	BaselineOffset float64 `yaml:"baseline_offset"`

	// DefaultHeadline is the target y-coordinate for the top of a glyph,
	// for glyphs not matched by any of the Headlines rules.
	DefaultHeadline float64 `yaml:"default_headline"`

	// Headlines are evaluated in order, the last matching rule wins.
	Headlines []HeadlineRule `yaml:"headlines"`

	// Metrics maps glyph names to special rules for the horizontal metrics.
	Metrics map[string]MetricsOverride `yaml:"metrics"`

	// Tolerance is the maximal error allowed when cubic curves are
	// converted to quadratic curves, in design units.
	Tolerance float64 `yaml:"tolerance"`

	// FamilyName and FullName are format strings for the name table
	// entries of a variant font.  The variant ID is substituted for %s.
	FamilyName string `yaml:"family_name"`
	FullName   string `yaml:"full_name"`

	// OutputPattern is the format string for the file name of a
	// variant font.  The variant ID is substituted for %s.
	OutputPattern string `yaml:"output_pattern"`
}

// HeadlineRule assigns a headline to a set of glyphs.
type HeadlineRule struct {
	Glyphs []string `yaml:"glyphs"`

	// If Contains is set, the rule applies to every glyph name which
	// contains one of the Glyphs as a substring.  This way, compound
	// glyphs inherit the rule of their first letter.
	Contains bool `yaml:"contains"`

	Headline float64 `yaml:"headline"`
}

// Matches reports whether the rule applies to the glyph name.
func (r *HeadlineRule) Matches(name string) bool {
	for _, g := range r.Glyphs {
		if name == g || r.Contains && strings.Contains(name, g) {
			return true
		}
	}
	return false
}

// OverrideKind selects how the horizontal metrics of a glyph are modified.
type OverrideKind string

// These are the supported metrics overrides.
const (
	// Mark is used for combining vowel signs.  The left side bearing is
	// shifted by LSBShift, the right side bearing and the advance width
	// are set to zero, so that the mark is drawn over the preceding
	// letter.
	Mark OverrideKind = "mark"

	// WidthOnly sets the advance width to the width of the drawing,
	// and the right side bearing to zero.
	WidthOnly OverrideKind = "width-only"
)

// MetricsOverride describes special metrics for one glyph.
type MetricsOverride struct {
	Kind     OverrideKind `yaml:"kind"`
	LSBShift int          `yaml:"lsb_shift"`
}

// Default returns the parameters for the Derge glyph set.
func Default() *Config {
	return &Config{
		UnitsPerEm:      1000,
		PixelsPerEm:     160,
		Padding:         50,
		BaselineOffset:  2000,
		DefaultHeadline: -2000,
		Headlines: []HeadlineRule{
			{Glyphs: []string{"uni0F7C", "uni0F7A"}, Headline: -1790}, // vowel signs o and e
			{Glyphs: []string{"uni0F72"}, Headline: -1750},            // vowel sign i
			{Glyphs: []string{"uni0F59", "uni0F5A", "uni0F5B"}, Contains: true, Headline: -1900},
		},
		Metrics: map[string]MetricsOverride{
			"uni0F7C": {Kind: Mark, LSBShift: -300},
			"uni0F7A": {Kind: Mark, LSBShift: -330},
			"uni0F72": {Kind: Mark, LSBShift: -350},
			"uni0F20": {Kind: WidthOnly},
		},
		Tolerance:     1,
		FamilyName:    "Derge-Var%s",
		FullName:      "DergeVar%s",
		OutputPattern: "derge_var_%s.ttf",
	}
}

// Load reads a YAML configuration file.  Values not given in the file
// keep their defaults.  Entries in the "metrics" section are added to the
// default overrides; a "headlines" section replaces the default rules.
func Load(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", fname, err)
	}
	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", fname, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error
	if c.UnitsPerEm <= 0 {
		errs = append(errs, errors.New("units_per_em must be positive"))
	}
	if c.PixelsPerEm <= 0 {
		errs = append(errs, errors.New("pixels_per_em must be positive"))
	}
	for name, o := range c.Metrics {
		switch o.Kind {
		case Mark, WidthOnly:
		default:
			errs = append(errs, fmt.Errorf("%s: unknown metrics override %q", name, o.Kind))
		}
	}
	for _, pat := range []string{c.FamilyName, c.FullName, c.OutputPattern} {
		if strings.Count(pat, "%s") != 1 {
			errs = append(errs, fmt.Errorf("pattern %q must contain exactly one %%s", pat))
		}
	}
	return errors.Join(errs...)
}

// Headline returns the target y-coordinate for the top of the glyph.
func (c *Config) Headline(name string) float64 {
	h := c.DefaultHeadline
	for i := range c.Headlines {
		if c.Headlines[i].Matches(name) {
			h = c.Headlines[i].Headline
		}
	}
	return h
}

// Names returns the family name and the full font name for a variant.
func (c *Config) Names(variantID string) (family, full string) {
	return fmt.Sprintf(c.FamilyName, variantID), fmt.Sprintf(c.FullName, variantID)
}

// OutputName returns the file name for the font of a variant.
func (c *Config) OutputName(variantID string) string {
	return fmt.Sprintf(c.OutputPattern, variantID)
}
