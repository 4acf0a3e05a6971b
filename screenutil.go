// SPDX-License-Identifier: Unlicense OR MIT

/*
Package screenutil scales Gio user interfaces drawn against a fixed design
size to the space they are given at runtime.

A Scaler at the root of a widget tree compares its design size with the
incoming constraints and publishes the resulting scale.State in the
layout.Context passed to its content. Widgets further down read it with
Current, or with the unit helpers built on top of it:

	var root = screenutil.Scaler{Design: scale.DesignSize{Width: 375, Height: 812}}

	func layoutUI(gtx layout.Context) layout.Dimensions {
		return root.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(screenutil.W(gtx, 16)).Layout(gtx, content)
		})
	}

The state travels with the Context value, so a nested Scaler only affects
the widgets it lays out. Reading the state outside any Scaler is a
programming error and panics.
*/
package screenutil

import (
	"errors"
	"fmt"

	"gioui.org/layout"
	"golang.org/x/exp/maps"

	"github.com/youseflabs/screenutil/scale"
)

// ErrNotInitialized is the panic value of Current and ScopeOf when no
// scale state is published in the context.
var ErrNotInitialized = errors.New("screenutil: not initialized, lay out content with a Scaler")

// stateKey is the layout.Context.Values key of the published state.
const stateKey = "github.com/youseflabs/screenutil.State"

// Scaler publishes the scale state of a design size to the widgets it lays
// out. Keep a Scaler across frames: the state is only recomputed when the
// design size or the available size changes.
type Scaler struct {
	// Design is the size the content was designed for. It must be
	// valid before the first Layout.
	Design scale.DesignSize

	state scale.State
	valid bool
}

// Update computes the state for the current design and available size.
// It reports whether the state differs from the previous call. Update
// panics if Design is invalid.
func (s *Scaler) Update(gtx layout.Context) (scale.State, bool) {
	avail := Available(gtx)
	if s.valid && s.state.Design == s.Design && s.state.Available == avail {
		return s.state, false
	}
	st, err := scale.Compute(s.Design, avail)
	if err != nil {
		panic(fmt.Errorf("screenutil: Scaler: %w", err))
	}
	s.state = st
	s.valid = true
	return st, true
}

// Layout updates the state and lays out w with the state published.
func (s *Scaler) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	st, _ := s.Update(gtx)
	return w(With(gtx, st))
}

// Init computes the state for design and lays out w with it published. It
// recomputes on every call; use a Scaler to keep the state across frames.
// Init panics if design is invalid.
func Init(gtx layout.Context, design scale.DesignSize, w layout.Widget) layout.Dimensions {
	st, err := scale.Compute(design, Available(gtx))
	if err != nil {
		panic(fmt.Errorf("screenutil: Init: %w", err))
	}
	return w(With(gtx, st))
}

// With returns a copy of gtx with st published. The Values map of gtx is
// not modified.
func With(gtx layout.Context, st scale.State) layout.Context {
	vals := make(map[string]any, len(gtx.Values)+1)
	maps.Copy(vals, gtx.Values)
	vals[stateKey] = st
	gtx.Values = vals
	return gtx
}

// Lookup returns the state published by the nearest enclosing Scaler.
func Lookup(gtx layout.Context) (scale.State, bool) {
	st, ok := gtx.Values[stateKey].(scale.State)
	return st, ok
}

// Current is like Lookup but panics with ErrNotInitialized if no state is
// published.
func Current(gtx layout.Context) scale.State {
	st, ok := Lookup(gtx)
	if !ok {
		panic(ErrNotInitialized)
	}
	return st
}

// Available returns the maximum constraints of gtx in dp.
func Available(gtx layout.Context) scale.Size {
	return scale.Size{
		Width:  float32(gtx.Metric.PxToDp(gtx.Constraints.Max.X)),
		Height: float32(gtx.Metric.PxToDp(gtx.Constraints.Max.Y)),
	}
}
