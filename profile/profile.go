// SPDX-License-Identifier: Unlicense OR MIT

// Package profile loads named design sizes from TOML or YAML files.
//
// A profile file lists the design sizes an application ships mockups for
// and names the default one:
//
//	default = "phone"
//
//	[[design]]
//	name = "phone"
//	width = 375
//	height = 812
//
//	[[design]]
//	name = "tablet"
//	width = 768
//	height = 1024
//
// The YAML form uses the same keys.
package profile

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/youseflabs/screenutil/scale"
)

var (
	// ErrUnknownFormat is returned for files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("profile: unknown format")
	// ErrNotFound is returned by Set.Design for unknown names.
	ErrNotFound = errors.New("profile: design not found")
	// ErrDuplicate is returned for sets naming a design twice.
	ErrDuplicate = errors.New("profile: duplicate design")
)

// Format is the encoding of a profile file.
type Format uint8

const (
	// TOML is decoded with github.com/BurntSushi/toml.
	TOML Format = iota
	// YAML is decoded with gopkg.in/yaml.v3.
	YAML
)

// Named is a design size with a name.
type Named struct {
	Name   string  `toml:"name" yaml:"name"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
}

// Size returns the design size of n.
func (n Named) Size() scale.DesignSize {
	return scale.DesignSize{Width: n.Width, Height: n.Height}
}

// Set is the content of a profile file.
type Set struct {
	// Default names the design used when none is requested. If empty,
	// the first design is the default.
	Default string  `toml:"default" yaml:"default"`
	Designs []Named `toml:"design" yaml:"design"`
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads and validates the profile file at path.
func Load(path string) (*Set, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	s, err := Decode(fp, f)
	if err != nil {
		return nil, fmt.Errorf("profile: %s: %w", path, err)
	}
	return s, nil
}

// Decode reads and validates a profile set in format f from r. Unknown
// YAML keys are an error; unknown TOML keys are logged.
func Decode(r io.Reader, f Format) (*Set, error) {
	s := new(Set)
	switch f {
	case TOML:
		meta, err := toml.NewDecoder(r).Decode(s)
		if err != nil {
			return nil, err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			log.Println("profile: undecoded keys:", undecoded)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every design is valid, that names are unique and
// that the default, if set, exists.
func (s *Set) Validate() error {
	seen := make(map[string]bool, len(s.Designs))
	for _, d := range s.Designs {
		if seen[d.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicate, d.Name)
		}
		seen[d.Name] = true
		if err := d.Size().Validate(); err != nil {
			return fmt.Errorf("design %q: %w", d.Name, err)
		}
	}
	if s.Default != "" && !seen[s.Default] {
		return fmt.Errorf("default: %w: %q", ErrNotFound, s.Default)
	}
	return nil
}

// Lookup returns the design named name.
func (s *Set) Lookup(name string) (scale.DesignSize, bool) {
	for _, d := range s.Designs {
		if d.Name == name {
			return d.Size(), true
		}
	}
	return scale.DesignSize{}, false
}

// Design returns the design named name, or the default design if name is
// empty.
func (s *Set) Design(name string) (scale.DesignSize, error) {
	if name == "" {
		name = s.Default
	}
	if name == "" && len(s.Designs) > 0 {
		return s.Designs[0].Size(), nil
	}
	d, ok := s.Lookup(name)
	if !ok {
		return scale.DesignSize{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return d, nil
}
