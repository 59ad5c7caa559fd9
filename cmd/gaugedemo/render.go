package main

import (
	"context"
	"fmt"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/config"
	"github.com/gogpu/gauge/layer"
	"github.com/gogpu/gauge/surface"
	"github.com/gogpu/gauge/theme"
	"github.com/gogpu/gauge/widget"
	"golang.org/x/sync/errgroup"
)

// renderDashboard renders every gauge of d on its own surface, up to jobs
// at a time, and composes the cells into one sheet saved at out.
func renderDashboard(ctx context.Context, d *config.Dashboard, out string, jobs int) error {
	fonts := surface.NewFontBook()
	layers, err := layer.NewRegistry(layer.Back, layer.Front)
	if err != nil {
		return err
	}
	deps := widget.Deps{
		Fonts:  fonts,
		Theme:  theme.NewResolver(d.Source()),
		Layers: layers,
	}

	cells := make([]*surface.Surface, len(d.Gauges))
	defer func() {
		for _, c := range cells {
			if c != nil {
				_ = c.Close()
			}
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, gc := range d.Gauges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, err := widget.NewByName(gc.Kind, deps)
			if err != nil {
				return fmt.Errorf("gauge %d: %w", i, err)
			}
			_, _, cw, ch := d.Cell(i)
			s := surface.New(cw, ch, d.Ratio, fonts)
			w.Render(s, gc.Props())
			w.Finalize(s.ID())
			cells[i] = s
			gauge.Logger().Debug("gaugedemo: rendered", "index", i, "kind", gc.Kind)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sw, sh := d.Size()
	sheet := surface.New(sw, sh, d.Ratio, fonts)
	defer sheet.Close()
	sheet.ClearWithColor(deps.Theme.Resolve(sheet.ID()).Background)
	for i, c := range cells {
		x, y, _, _ := d.Cell(i)
		sheet.DrawSurface(c, x, y)
	}
	if err := sheet.SavePNG(out); err != nil {
		return fmt.Errorf("gaugedemo: save %s: %w", out, err)
	}
	return nil
}

// sampleDashboard shows one gauge of every built-in kind.
func sampleDashboard() config.Dashboard {
	d := config.Default()
	d.Title = "sample"
	d.Columns = 4
	d.Gauges = []config.Gauge{
		{Kind: "speed_sog", Value: 6.4},
		{Kind: "speed_stw", Value: 5.9},
		{Kind: "speed_vmg", Value: nil},
		{Kind: "depth", Value: 3.2},
		{Kind: "temperature", Value: 18.5},
		{Kind: "voltage", Value: 12.1},
		{Kind: "wind_apparent", Value: -35},
		{Kind: "wind_true", Value: 120, Disconnect: true},
		{Kind: "compass", Value: 350, Markers: []config.Marker{{Name: "WPT", Bearing: 10}}},
		{Kind: "compass_magnetic", Value: 347},
		{Kind: "position", Value: []any{54.2057, -3.5}},
		{Kind: "numeric", Caption: "LOG", Unit: "nm", Value: 1234.5},
	}
	return d
}
