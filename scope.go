// SPDX-License-Identifier: Unlicense OR MIT

package screenutil

import (
	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/youseflabs/screenutil/scale"
)

// Scope pairs a scale state with the metric it is rendered with. Capture
// one with ScopeOf to scale values away from the layout call chain, for
// example in a goroutine preparing data for the next frame.
type Scope struct {
	scale.State
	Metric unit.Metric
}

// ScopeOf returns the Scope of gtx. It panics with ErrNotInitialized if no
// state is published.
func ScopeOf(gtx layout.Context) Scope {
	return Scope{State: Current(gtx), Metric: gtx.Metric}
}

// Dp scales the design value v by the factor selected by f.
func (s Scope) Dp(f scale.Factor, v float32) unit.Dp {
	return unit.Dp(s.Apply(f, v))
}

// W scales v by the width factor.
func (s Scope) W(v float32) unit.Dp { return s.Dp(scale.Width, v) }

// H scales v by the height factor.
func (s Scope) H(v float32) unit.Dp { return s.Dp(scale.Height, v) }

// R scales v by the smaller factor. Use it for radii and other values that
// should look the same across aspect ratios.
func (s Scope) R(v float32) unit.Dp { return s.Dp(scale.Min, v) }

// Min scales v by the smaller factor.
func (s Scope) Min(v float32) unit.Dp { return s.Dp(scale.Min, v) }

// Max scales v by the larger factor.
func (s Scope) Max(v float32) unit.Dp { return s.Dp(scale.Max, v) }

// SSP returns the design-perfect text size for v: it renders at v scaled
// by the smaller factor, ignoring the user's font scale preference.
func (s Scope) SSP(v float32) unit.Sp {
	// Gio multiplies sp by the font scale when converting to pixels.
	return unit.Sp(s.Apply(scale.Min, v) / s.FontScale())
}

// SSPA11y returns the text size for v scaled by the smaller factor and by
// the user's font scale preference.
func (s Scope) SSPA11y(v float32) unit.Sp {
	return unit.Sp(s.Apply(scale.Min, v))
}

// ToW converts px pixels to dp and scales the result by the width factor.
func (s Scope) ToW(px int) unit.Dp { return s.fromPx(scale.Width, px) }

// ToH converts px pixels to dp and scales the result by the height factor.
func (s Scope) ToH(px int) unit.Dp { return s.fromPx(scale.Height, px) }

// ToR converts px pixels to dp and scales the result by the smaller factor.
func (s Scope) ToR(px int) unit.Dp { return s.fromPx(scale.Min, px) }

func (s Scope) fromPx(f scale.Factor, px int) unit.Dp {
	return s.Dp(f, float32(s.Metric.PxToDp(px)))
}

// Px scales v by the factor selected by f and converts the result to
// device pixels.
func (s Scope) Px(f scale.Factor, v float32) int {
	return s.Metric.Dp(s.Dp(f, v))
}

// FontScale returns the user's font scale preference of s.Metric.
func (s Scope) FontScale() float32 {
	return FontScale(s.Metric)
}

// FontScale returns the ratio of sp to dp of m, the user's font scale
// preference. It is 1 when either density is unset.
func FontScale(m unit.Metric) float32 {
	if m.PxPerDp == 0 || m.PxPerSp == 0 {
		return 1
	}
	return m.PxPerSp / m.PxPerDp
}
