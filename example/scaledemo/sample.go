// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/youseflabs/screenutil"
	"github.com/youseflabs/screenutil/scale"
)

var (
	purple = color.NRGBA{R: 0x62, G: 0x00, B: 0xee, A: 0xff}
	blue   = color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	green  = color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	grey   = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

type sample struct {
	root   screenutil.Scaler
	card   screenutil.Scaler
	button widget.Clickable
	clicks int
}

func newSample(design scale.DesignSize) *sample {
	return &sample{
		root: screenutil.Scaler{Design: design},
		// The card has its own mockup, scaled to the space the card gets.
		card: screenutil.Scaler{Design: scale.DesignSize{Width: 200, Height: 120}},
	}
}

func (s *sample) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	return s.root.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		for s.button.Clicked(gtx) {
			s.clicks++
		}
		spacer := layout.Rigid(layout.Spacer{Height: screenutil.H(gtx, 24)}.Layout)
		return layout.UniformInset(screenutil.W(gtx, 16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						l := material.Label(th, screenutil.SSP(gtx, 24), "ScreenUtil Sample")
						l.Font.Weight = font.Bold
						l.Color = purple
						return l.Layout(gtx)
					}),
					spacer,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(screenutil.Pt(gtx, 200, 48)))
						b := material.Button(th, &s.button, fmt.Sprintf("Responsive Button (%d)", s.clicks))
						b.TextSize = screenutil.SSPA11y(gtx, 16)
						b.CornerRadius = screenutil.R(gtx, 8)
						return b.Layout(gtx)
					}),
					spacer,
					layout.Rigid(s.boxes),
					spacer,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return s.layoutCard(gtx, th)
					}),
					spacer,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return factors(gtx, th)
					}),
				)
			})
		})
	})
}

// boxes lays out two 100x100 design boxes, one sized from device pixels
// and one from design units.
func (s *sample) boxes(gtx layout.Context) layout.Dimensions {
	sc := screenutil.ScopeOf(gtx)
	px := gtx.Dp(100)
	return layout.Flex{Spacing: layout.SpaceEvenly}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			size := image.Pt(gtx.Dp(sc.ToW(px)), gtx.Dp(sc.ToH(px)))
			return box(gtx, size, sc.R(20), blue)
		}),
		layout.Rigid(layout.Spacer{Width: sc.W(16)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return box(gtx, screenutil.Pt(gtx, 100, 100), screenutil.R(gtx, 20), green)
		}),
	)
}

func (s *sample) layoutCard(gtx layout.Context, th *material.Theme) layout.Dimensions {
	gtx.Constraints = layout.Exact(gtx.Constraints.Constrain(screenutil.Pt(gtx, 300, 120)))
	return s.card.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Stack{}.Layout(gtx,
			layout.Expanded(func(gtx layout.Context) layout.Dimensions {
				return box(gtx, gtx.Constraints.Min, screenutil.R(gtx, 12), grey)
			}),
			layout.Stacked(func(gtx layout.Context) layout.Dimensions {
				st := screenutil.Current(gtx)
				txt := fmt.Sprintf("nested design %v\nw %.3f h %.3f", st.Design, st.ScaleW, st.ScaleH)
				return layout.UniformInset(screenutil.W(gtx, 12)).Layout(gtx,
					material.Label(th, screenutil.SSP(gtx, 14), txt).Layout)
			}),
		)
	})
}

func factors(gtx layout.Context, th *material.Theme) layout.Dimensions {
	st := screenutil.Current(gtx)
	size := screenutil.SSP(gtx, 14)
	txt := fmt.Sprintf("design %v, available %.0fx%.0f dp\nw %.3f h %.3f min %.3f max %.3f\nfont scale %.2f, text %v px/em",
		st.Design, st.Available.Width, st.Available.Height,
		st.ScaleW, st.ScaleH, st.ScaleMin, st.ScaleMax,
		screenutil.FontScale(gtx.Metric), screenutil.PxPerEm(gtx, size))
	return material.Label(th, size, txt).Layout(gtx)
}

func box(gtx layout.Context, size image.Point, radius unit.Dp, c color.NRGBA) layout.Dimensions {
	defer clip.UniformRRect(image.Rectangle{Max: size}, gtx.Dp(radius)).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, c)
	return layout.Dimensions{Size: size}
}
