// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Deterministic defaults.
const (
	defaultTitle  = "TSP route"
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 6 * vg.Inch
)

// Palette: cities light blue, route black, start city red.
var (
	cityColor  = color.RGBA{R: 0, G: 150, B: 255, A: 255}
	routeColor = color.RGBA{A: 255}
	startColor = color.RGBA{R: 220, G: 40, B: 40, A: 255}
)

// Option customizes Draw, Save and Write.
type Option func(*config)

type config struct {
	title         string
	width, height vg.Length
	labels        bool
}

func newConfig(opts ...Option) config {
	cfg := config{
		title:  defaultTitle,
		width:  defaultWidth,
		height: defaultHeight,
		labels: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithTitle sets the plot title. An empty title hides it.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithSize sets the output canvas size. Panics unless both sides are positive.
func WithSize(width, height vg.Length) Option {
	if width <= 0 || height <= 0 {
		panic("render: WithSize(width<=0 || height<=0)")
	}

	return func(c *config) {
		c.width, c.height = width, height
	}
}

// WithoutLabels suppresses the city index labels.
func WithoutLabels() Option {
	return func(c *config) { c.labels = false }
}
