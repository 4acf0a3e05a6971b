// SPDX-License-Identifier: Unlicense OR MIT

package scale

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-4

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func TestCompute(t *testing.T) {
	design := DesignSize{Width: 375, Height: 812}
	tests := []struct {
		name      string
		available Size
		w, h      float32
		min, max  float32
	}{
		{"pixel 3", Size{Width: 411, Height: 891}, 1.096, 1.0973, 1.096, 1.0973},
		{"landscape", Size{Width: 812, Height: 375}, 2.16533, 0.46182, 0.46182, 2.16533},
		{"double", Size{Width: 750, Height: 1624}, 2, 2, 2, 2},
		{"collapsed", Size{}, 0, 0, 0, 0},
		{"collapsed width", Size{Width: 0, Height: 812}, 0, 1, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Compute(design, tc.available)
			if err != nil {
				t.Fatal(err)
			}
			if !approx(s.ScaleW, tc.w) || !approx(s.ScaleH, tc.h) {
				t.Errorf("got w=%v h=%v, want w=%v h=%v", s.ScaleW, s.ScaleH, tc.w, tc.h)
			}
			if !approx(s.ScaleMin, tc.min) || !approx(s.ScaleMax, tc.max) {
				t.Errorf("got min=%v max=%v, want min=%v max=%v", s.ScaleMin, s.ScaleMax, tc.min, tc.max)
			}
			if s.ScaleW != tc.available.Width/design.Width || s.ScaleH != tc.available.Height/design.Height {
				t.Errorf("factors are not exact ratios: %+v", s)
			}
			if s.ScaleMin > s.ScaleMax {
				t.Errorf("min %v > max %v", s.ScaleMin, s.ScaleMax)
			}
			if s.Design != design || s.Available != tc.available {
				t.Errorf("inputs not recorded: %+v", s)
			}
		})
	}
}

func TestComputeIdentity(t *testing.T) {
	d := DesignSize{Width: 375, Height: 812}
	s, err := Compute(d, Size{Width: d.Width, Height: d.Height})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Factor{Width, Height, Min, Max} {
		if got := s.Factor(f); got != 1 {
			t.Errorf("%v factor = %v, want exactly 1", f, got)
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	d := DesignSize{Width: 360, Height: 690}
	avail := Size{Width: 393, Height: 851}
	s1, _ := Compute(d, avail)
	s2, _ := Compute(d, avail)
	if s1 != s2 {
		t.Errorf("Compute is not repeatable: %+v != %+v", s1, s2)
	}
}

func TestComputeErrors(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	tests := []struct {
		name      string
		design    DesignSize
		available Size
		want      error
	}{
		{"zero width", DesignSize{Width: 0, Height: 812}, Size{Width: 411, Height: 891}, ErrInvalidDesign},
		{"zero height", DesignSize{Width: 375, Height: 0}, Size{Width: 411, Height: 891}, ErrInvalidDesign},
		{"negative", DesignSize{Width: -375, Height: 812}, Size{Width: 411, Height: 891}, ErrInvalidDesign},
		{"infinite", DesignSize{Width: inf, Height: 812}, Size{Width: 411, Height: 891}, ErrInvalidDesign},
		{"nan", DesignSize{Width: nan, Height: 812}, Size{Width: 411, Height: 891}, ErrInvalidDesign},
		{"negative available", DesignSize{Width: 375, Height: 812}, Size{Width: -1, Height: 891}, ErrInvalidSize},
		{"nan available", DesignSize{Width: 375, Height: 812}, Size{Width: 411, Height: nan}, ErrInvalidSize},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.design, tc.available)
			if !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}
}

func TestApplyPreservesRatios(t *testing.T) {
	d := DesignSize{Width: 375, Height: 812}
	for _, avail := range []Size{{411, 891}, {320, 568}, {1024, 1366}} {
		s, err := Compute(d, avail)
		if err != nil {
			t.Fatal(err)
		}
		if r := s.Apply(Width, 16) / s.Apply(Width, 8); r != 2 {
			t.Errorf("%v: 16/8 scaled ratio = %v, want 2", avail, r)
		}
	}
}

func TestText(t *testing.T) {
	s := State{ScaleW: 2, ScaleH: 3, ScaleMin: 2, ScaleMax: 3}
	if got := s.Apply(Min, 10); got != 20 {
		t.Errorf("design-perfect text = %v, want 20", got)
	}
	if got := s.Text(10, 1.5); got != 30 {
		t.Errorf("accessible text = %v, want 30", got)
	}
	if got := s.Text(10, 1); got != s.Apply(Min, 10) {
		t.Errorf("font scale 1 should match design-perfect text, got %v", got)
	}
}

func TestUnknownFactorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for unknown factor")
		}
	}()
	State{}.Factor(Factor(42))
}

func TestDesignSizeText(t *testing.T) {
	var d DesignSize
	if err := d.UnmarshalText([]byte(" 375 x 812.5 ")); err != nil {
		t.Fatal(err)
	}
	if want := (DesignSize{Width: 375, Height: 812.5}); d != want {
		t.Errorf("got %v, want %v", d, want)
	}
	b, _ := d.MarshalText()
	if got := string(b); got != "375x812.5" {
		t.Errorf("MarshalText = %q", got)
	}
	for _, bad := range []string{"", "375", "x812", "375x", "0x812", "375x-1", "axb"} {
		var d DesignSize
		if err := d.UnmarshalText([]byte(bad)); !errors.Is(err, ErrInvalidDesign) {
			t.Errorf("UnmarshalText(%q) error = %v, want ErrInvalidDesign", bad, err)
		}
	}
}
