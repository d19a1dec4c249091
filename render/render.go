// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tspdemo/tsp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoInstance is returned when asked to draw a nil instance.
var ErrNoInstance = errors.New("render: nil instance")

// Draw builds a plot of inst with route overlaid. route may be empty or
// partial; every index must be a city index of inst.
//
// Errors:
//   - ErrNoInstance for a nil inst.
//   - tsp.ErrIndexOutOfRange for a bad route index.
func Draw(inst *tsp.Instance, route []int, opts ...Option) (*plot.Plot, error) {
	if inst == nil {
		return nil, fmt.Errorf("Draw: %w", ErrNoInstance)
	}
	if err := tsp.ValidateRoute(route, inst.NumCities()); err != nil {
		return nil, fmt.Errorf("Draw: %w", err)
	}
	cfg := newConfig(opts...)

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = float64(inst.CoordMin()), float64(inst.CoordMax())
	p.Y.Min, p.Y.Max = float64(inst.CoordMin()), float64(inst.CoordMax())

	cities := inst.Cities()

	if len(route) > 1 {
		path := routeXYs(cities, route)
		line, err := plotter.NewLine(path)
		if err != nil {
			return nil, fmt.Errorf("Draw: route: %w", err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = routeColor
		p.Add(line)
		p.Legend.Add("route", line)
	}

	pts, err := plotter.NewScatter(pointXYs(cities))
	if err != nil {
		return nil, fmt.Errorf("Draw: cities: %w", err)
	}
	pts.GlyphStyle.Color = cityColor
	pts.GlyphStyle.Radius = vg.Points(4)
	pts.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(pts)
	p.Legend.Add("cities", pts)

	start, err := plotter.NewScatter(pointXYs([]tsp.Point{inst.StartCity()}))
	if err != nil {
		return nil, fmt.Errorf("Draw: start: %w", err)
	}
	start.GlyphStyle.Color = startColor
	start.GlyphStyle.Radius = vg.Points(5)
	start.GlyphStyle.Shape = draw.BoxGlyph{}
	p.Add(start)
	p.Legend.Add("start", start)

	if cfg.labels {
		names := make([]string, len(cities))
		for i := range cities {
			names[i] = strconv.Itoa(i)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pointXYs(cities), Labels: names})
		if err != nil {
			return nil, fmt.Errorf("Draw: labels: %w", err)
		}
		labels.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}
		p.Add(labels)
	}

	return p, nil
}

// Save draws inst and route and writes the image to path; the extension picks
// the format.
func Save(inst *tsp.Instance, route []int, path string, opts ...Option) error {
	p, err := Draw(inst, route, opts...)
	if err != nil {
		return err
	}
	cfg := newConfig(opts...)
	if err = p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}

	return nil
}

// Write draws inst and route and encodes the image to w in format
// ("png", "svg", "pdf", ...).
func Write(w io.Writer, inst *tsp.Instance, route []int, format string, opts ...Option) error {
	p, err := Draw(inst, route, opts...)
	if err != nil {
		return err
	}
	cfg := newConfig(opts...)
	wt, err := p.WriterTo(cfg.width, cfg.height, format)
	if err != nil {
		return fmt.Errorf("Write(%s): %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("Write(%s): %w", format, err)
	}

	return nil
}

func pointXYs(pts []tsp.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X = float64(p.X)
		xys[i].Y = float64(p.Y)
	}

	return xys
}

// routeXYs maps route indices to coordinates, appending the first city again
// when the route is a complete tour.
func routeXYs(cities []tsp.Point, route []int) plotter.XYs {
	if tsp.IsTour(route, len(cities)) {
		route = tsp.CloseRoute(route)
	}
	xys := make(plotter.XYs, len(route))
	for i, idx := range route {
		xys[i].X = float64(cities[idx].X)
		xys[i].Y = float64(cities[idx].Y)
	}

	return xys
}
