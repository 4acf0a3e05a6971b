// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scale computes the factors that map sizes from a design mockup to
the space actually available at runtime.

A DesignSize is the reference width and height a user interface was drawn
against, in dp. Comparing it with the available Size yields a State with
four factors: ScaleW and ScaleH for the two axes, and ScaleMin and ScaleMax
for values that should keep their proportions regardless of aspect ratio,
such as corner radii and text.

The package is pure: it performs no measurement and holds no state.
*/
package scale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDesign is returned for design sizes that are not finite
	// and strictly positive.
	ErrInvalidDesign = errors.New("scale: invalid design size")
	// ErrInvalidSize is returned for negative or NaN available sizes.
	ErrInvalidSize = errors.New("scale: invalid available size")
)

// DesignSize is the reference size, in dp, that a user interface was
// designed for.
type DesignSize struct {
	Width, Height float32
}

// Size is an available width and height in dp.
type Size struct {
	Width, Height float32
}

// State holds the scale factors derived from a design size and an
// available size.
type State struct {
	Design    DesignSize
	Available Size

	ScaleW   float32
	ScaleH   float32
	ScaleMin float32
	ScaleMax float32
}

// Factor selects one of the factors of a State.
type Factor uint8

const (
	// Width selects State.ScaleW.
	Width Factor = iota
	// Height selects State.ScaleH.
	Height
	// Min selects State.ScaleMin.
	Min
	// Max selects State.ScaleMax.
	Max
)

// NewDesignSize returns a validated DesignSize.
func NewDesignSize(width, height float32) (DesignSize, error) {
	d := DesignSize{Width: width, Height: height}
	if err := d.Validate(); err != nil {
		return DesignSize{}, err
	}
	return d, nil
}

// Validate reports an error wrapping ErrInvalidDesign unless both
// dimensions are finite and strictly positive.
func (d DesignSize) Validate() error {
	if !positive(d.Width) || !positive(d.Height) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidDesign, d.Width, d.Height)
	}
	return nil
}

func (d DesignSize) String() string {
	return fmt.Sprintf("%gx%g", d.Width, d.Height)
}

// MarshalText encodes d in the WxH form accepted by UnmarshalText.
func (d DesignSize) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a design size of the form "375x812".
func (d *DesignSize) UnmarshalText(text []byte) error {
	ws, hs, ok := strings.Cut(strings.TrimSpace(string(text)), "x")
	if !ok {
		return fmt.Errorf("%w: %q is not of the form WIDTHxHEIGHT", ErrInvalidDesign, text)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(ws), 32)
	if err != nil {
		return fmt.Errorf("%w: width: %v", ErrInvalidDesign, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hs), 32)
	if err != nil {
		return fmt.Errorf("%w: height: %v", ErrInvalidDesign, err)
	}
	v, err := NewDesignSize(float32(w), float32(h))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Compute returns the State for laying out a design of size design in the
// available space. Factors are exact ratios, neither rounded nor clamped.
// A zero available dimension is valid and yields zero factors.
func Compute(design DesignSize, available Size) (State, error) {
	if err := design.Validate(); err != nil {
		return State{}, err
	}
	if !(available.Width >= 0) || !(available.Height >= 0) {
		return State{}, fmt.Errorf("%w: %gx%g", ErrInvalidSize, available.Width, available.Height)
	}
	sw := available.Width / design.Width
	sh := available.Height / design.Height
	return State{
		Design:    design,
		Available: available,
		ScaleW:    sw,
		ScaleH:    sh,
		ScaleMin:  min(sw, sh),
		ScaleMax:  max(sw, sh),
	}, nil
}

// Factor returns the factor selected by f.
func (s State) Factor(f Factor) float32 {
	switch f {
	case Width:
		return s.ScaleW
	case Height:
		return s.ScaleH
	case Min:
		return s.ScaleMin
	case Max:
		return s.ScaleMax
	default:
		panic("scale: unknown factor")
	}
}

// Apply scales the design value v by the factor selected by f.
func (s State) Apply(f Factor, v float32) float32 {
	return v * s.Factor(f)
}

// Text returns the text size for the design value v, scaled by ScaleMin
// and by the user's font scale preference. Use Apply(Min, v) for text that
// must match the design regardless of the preference.
func (s State) Text(v, fontScale float32) float32 {
	return v * s.ScaleMin * fontScale
}

func (f Factor) String() string {
	switch f {
	case Width:
		return "Width"
	case Height:
		return "Height"
	case Min:
		return "Min"
	case Max:
		return "Max"
	default:
		panic("scale: unknown factor")
	}
}

func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}
