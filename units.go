// SPDX-License-Identifier: Unlicense OR MIT

package screenutil

import (
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/fixed"

	"github.com/youseflabs/screenutil/scale"
)

// Number is the set of types accepted as design values.
type Number interface {
	constraints.Integer | constraints.Float
}

// Scale scales the design value v by the factor selected by f.
func Scale[N Number](gtx layout.Context, f scale.Factor, v N) unit.Dp {
	return ScopeOf(gtx).Dp(f, float32(v))
}

// W scales v by the width factor.
func W[N Number](gtx layout.Context, v N) unit.Dp { return Scale(gtx, scale.Width, v) }

// H scales v by the height factor.
func H[N Number](gtx layout.Context, v N) unit.Dp { return Scale(gtx, scale.Height, v) }

// R scales v by the smaller factor, for radii.
func R[N Number](gtx layout.Context, v N) unit.Dp { return Scale(gtx, scale.Min, v) }

// Min scales v by the smaller factor.
func Min[N Number](gtx layout.Context, v N) unit.Dp { return Scale(gtx, scale.Min, v) }

// Max scales v by the larger factor.
func Max[N Number](gtx layout.Context, v N) unit.Dp { return Scale(gtx, scale.Max, v) }

// SSP returns the design-perfect text size for v. See Scope.SSP.
func SSP[N Number](gtx layout.Context, v N) unit.Sp {
	return ScopeOf(gtx).SSP(float32(v))
}

// SSPA11y returns the text size for v respecting the user's font scale
// preference. See Scope.SSPA11y.
func SSPA11y[N Number](gtx layout.Context, v N) unit.Sp {
	return ScopeOf(gtx).SSPA11y(float32(v))
}

// Px scales v by the factor selected by f and returns device pixels.
func Px[N Number](gtx layout.Context, f scale.Factor, v N) int {
	return ScopeOf(gtx).Px(f, float32(v))
}

// Pt returns the device pixel size of a design width and height, scaled by
// the width and height factors respectively.
func Pt[N Number](gtx layout.Context, w, h N) image.Point {
	s := ScopeOf(gtx)
	return image.Point{
		X: s.Px(scale.Width, float32(w)),
		Y: s.Px(scale.Height, float32(h)),
	}
}

// ToW converts px pixels to dp and scales the result by the width factor.
func ToW(gtx layout.Context, px int) unit.Dp { return ScopeOf(gtx).ToW(px) }

// ToH converts px pixels to dp and scales the result by the height factor.
func ToH(gtx layout.Context, px int) unit.Dp { return ScopeOf(gtx).ToH(px) }

// ToR converts px pixels to dp and scales the result by the smaller factor.
func ToR(gtx layout.Context, px int) unit.Dp { return ScopeOf(gtx).ToR(px) }

// PxPerEm converts a text size to the pixel size expected by
// text.Parameters.
func PxPerEm(gtx layout.Context, size unit.Sp) fixed.Int26_6 {
	return fixed.I(gtx.Sp(size))
}
