// SPDX-License-Identifier: Unlicense OR MIT

package screenutil_test

import (
	"fmt"
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/youseflabs/screenutil"
	"github.com/youseflabs/screenutil/scale"
)

func ExampleScaler() {
	root := screenutil.Scaler{Design: scale.DesignSize{Width: 375, Height: 812}}
	gtx := layout.Context{
		Ops:    new(op.Ops),
		Metric: unit.Metric{PxPerDp: 2, PxPerSp: 2},
		// A 750x1218 dp window.
		Constraints: layout.Exact(image.Pt(1500, 2436)),
	}

	root.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		w := screenutil.W(gtx, 16)
		h := screenutil.H(gtx, 16)
		fmt.Println(float32(w), float32(h))
		// Pixels of a 100x50 design box.
		fmt.Println(screenutil.Pt(gtx, 100, 50))
		return layout.Dimensions{}
	})

	// Output:
	// 32 24
	// (400,150)
}

func ExampleWith() {
	gtx := layout.Context{Ops: new(op.Ops)}
	st, err := scale.Compute(scale.DesignSize{Width: 100, Height: 100}, scale.Size{Width: 300, Height: 200})
	if err != nil {
		panic(err)
	}
	inner := screenutil.With(gtx, st)

	_, outerOK := screenutil.Lookup(gtx)
	got, innerOK := screenutil.Lookup(inner)
	fmt.Println(outerOK, innerOK, got.ScaleMin, got.ScaleMax)

	// Output:
	// false true 2 3
}
