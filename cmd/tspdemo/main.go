// SPDX-License-Identifier: MIT

// Command tspdemo generates a TSP instance, measures a user-chosen route over
// it and optionally renders both to an image.
//
// Usage:
//
//	tspdemo -cities 10 -min 0 -max 100 -seed 42 -route "0,3,1,2" [-tour] [-out route.png]
//
// The route is selected city by city the same way the interactive demo does:
// repeated cities are rejected. With -tour, a route that visits every city is
// measured as a closed tour.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/tspdemo/render"
	"github.com/katalvlaran/tspdemo/route"
	"github.com/katalvlaran/tspdemo/tsp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds parsed command-line flags.
type options struct {
	cfg         tsp.Config
	seed        int64
	maxAttempts int
	route       string
	tour        bool
	out         string
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("tspdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.cfg.NumCities, "cities", tsp.DefaultNumCities, "number of cities, excluding the start city")
	fs.IntVar(&o.cfg.CoordMin, "min", tsp.DefaultCoordMin, "inclusive lower coordinate bound")
	fs.IntVar(&o.cfg.CoordMax, "max", tsp.DefaultCoordMax, "exclusive upper coordinate bound")
	fs.Int64Var(&o.seed, "seed", tsp.DefaultSeed, "random seed")
	fs.IntVar(&o.maxAttempts, "max-attempts", 0, "cap on sampled candidates (0 = unbounded)")
	fs.StringVar(&o.route, "route", "0,1,2", `route as city indices, e.g. "0,2,1" (empty for none)`)
	fs.BoolVar(&o.tour, "tour", false, "close the route when it visits every city")
	fs.StringVar(&o.out, "out", "", "write a plot to this file (png, svg, pdf)")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.maxAttempts < 0 {
		return o, fmt.Errorf("-max-attempts=%d must be >= 0", o.maxAttempts)
	}

	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if err != nil {
		logger.Error("invalid flags", "err", err)
		return 2
	}

	if err = demo(o, stdout, logger); err != nil {
		logger.Error("tspdemo failed", "err", err)
		return 1
	}

	return 0
}

func demo(o options, stdout io.Writer, logger *slog.Logger) error {
	logger.Debug("generating instance",
		"cities", o.cfg.NumCities, "min", o.cfg.CoordMin, "max", o.cfg.CoordMax,
		"seed", o.seed, "max_attempts", o.maxAttempts)

	inst, err := tsp.Generate(o.cfg, tsp.WithSeed(o.seed), tsp.WithMaxAttempts(o.maxAttempts))
	if err != nil {
		return err
	}
	logger.Debug("instance ready", "min_separation", inst.MinSeparation())

	fmt.Fprintf(stdout, "start: %v\n", inst.StartCity())
	for i, c := range inst.Cities() {
		fmt.Fprintf(stdout, "city %d: %v\n", i, c)
	}

	sel, err := route.NewSelection(inst)
	if err != nil {
		return err
	}
	if o.route != "" {
		indices, err := route.Parse(o.route)
		if err != nil {
			return err
		}
		if err = sel.SelectAll(indices); err != nil {
			return err
		}
	}

	measure := sel.Length
	if o.tour {
		measure = sel.TourLength
	}
	length, err := measure()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "route: %s\n", sel)
	fmt.Fprintf(stdout, "complete: %t\n", sel.Complete())
	fmt.Fprintf(stdout, "length: %.4f\n", length)

	if o.out != "" {
		if err = render.Save(inst, sel.Route(), o.out); err != nil {
			return err
		}
		logger.Info("plot written", "path", o.out)
	}

	return nil
}
