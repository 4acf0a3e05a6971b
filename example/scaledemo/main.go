// SPDX-License-Identifier: Unlicense OR MIT

package main

// A sample screen laid out against a design size. Resize the window to see
// the content scale. See https://gioui.org for more information on Gio.

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"golang.org/x/sync/errgroup"

	"github.com/youseflabs/screenutil/profile"
	"github.com/youseflabs/screenutil/scale"
)

var (
	profilePath = flag.String("profiles", "", "design profile file (TOML or YAML), reloaded when it changes")
	profileName = flag.String("profile", "", "name of the design in the profile file; empty selects the default")
)

func main() {
	design := scale.DesignSize{Width: 360, Height: 690}
	flag.TextVar(&design, "design", design, "design size as WIDTHxHEIGHT, ignored when -profiles is set")
	flag.Parse()

	if *profilePath != "" {
		set, err := profile.Load(*profilePath)
		if err != nil {
			log.Fatal(err)
		}
		design, err = set.Design(*profileName)
		if err != nil {
			log.Fatal(err)
		}
	}

	go func() {
		if err := run(design); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(design scale.DesignSize) error {
	w := new(app.Window)
	w.Option(
		app.Title("screenutil"),
		app.Size(unit.Dp(design.Width), unit.Dp(design.Height)),
	)

	designs := make(chan scale.DesignSize, 1)
	g, ctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(ctx)
	if *profilePath != "" {
		g.Go(func() error {
			err := profile.Watch(ctx, *profilePath, func(set *profile.Set, err error) {
				var d scale.DesignSize
				if err == nil {
					d, err = set.Design(*profileName)
				}
				if err != nil {
					log.Printf("scaledemo: reload: %v", err)
					return
				}
				// Keep only the latest design.
				select {
				case <-designs:
				default:
				}
				designs <- d
				w.Invalidate()
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			// The window keeps running on the last design.
			log.Printf("scaledemo: live reload stopped: %v", err)
			return err
		})
	}
	g.Go(func() error {
		defer cancel()
		return loop(w, design, designs)
	})
	return g.Wait()
}

func loop(w *app.Window, design scale.DesignSize, designs <-chan scale.DesignSize) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	ui := newSample(design)
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			select {
			case d := <-designs:
				ui.root.Design = d
			default:
			}
			gtx := app.NewContext(&ops, e)
			ui.Layout(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}
