// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ordplot plots timestamped samples on an ordinal time axis.
//
// ordplot reads one or more sample files (timestamp and value per
// line, RFC 3339 or epoch milliseconds) and renders a line chart whose
// X axis spaces the samples evenly even when the data has gaps, such
// as market data with closed weekends. With -watch, ordplot re-renders
// whenever an input file changes, picking up appended samples.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aclements/go-ordinal/ordinal"
	"github.com/aclements/go-ordinal/ordinalplot"
	"github.com/aclements/go-ordinal/timeseries"
)

type config struct {
	Title              string
	Width              float64 // axis length in points
	Height             float64
	Ordinal            bool
	Overscroll         string
	TickPixelInterval  float64
	KeepOrdinalPadding bool
	StartOfWeek        string
	Grouping           bool
	GroupPixelWidth    float64
}

func defaultConfig() config {
	return config{
		Width:             640,
		Height:            320,
		Ordinal:           true,
		TickPixelInterval: 100,
		StartOfWeek:       "Monday",
	}
}

func main() {
	log.SetPrefix("ordplot: ")
	log.SetFlags(0)

	var (
		flagConfig = flag.String("config", "", "read chart options from TOML `file`")
		flagOut    = flag.String("o", "ordplot.svg", "write output to `file` (format from extension)")
		flagWatch  = flag.Bool("watch", false, "re-render whenever an input file changes")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] inputs...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := defaultConfig()
	if *flagConfig != "" {
		data, err := os.ReadFile(*flagConfig)
		if err != nil {
			log.Fatal(err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("%s: %v", *flagConfig, err)
		}
	}

	paths := flag.Args()
	chart, err := loadChart(cfg, paths)
	if err != nil {
		log.Fatal(err)
	}
	if err := chart.render(*flagOut); err != nil {
		log.Fatal(err)
	}

	if *flagWatch {
		if err := chart.watch(paths, *flagOut); err != nil {
			log.Fatal(err)
		}
	}
}

// chart bundles the axis with its series and rendering options.
type chart struct {
	cfg    config
	axis   *ordinal.Axis
	series []*timeseries.Series
}

func loadChart(cfg config, paths []string) (*chart, error) {
	c := &chart{cfg: cfg}
	for _, path := range paths {
		s, err := readSeries(cfg, path)
		if err != nil {
			return nil, err
		}
		c.series = append(c.series, s)
	}

	opts := ordinal.Options{
		Ordinal:            cfg.Ordinal,
		Overscroll:         cfg.Overscroll,
		TickPixelInterval:  cfg.TickPixelInterval,
		KeepOrdinalPadding: cfg.KeepOrdinalPadding,
		StartOfWeek:        parseWeekday(cfg.StartOfWeek),
	}
	var series []ordinal.Series
	for _, s := range c.series {
		series = append(series, s)
	}
	c.axis = ordinal.NewAxis(opts, series...)
	c.axis.Len = cfg.Width
	c.axis.SetExtremes(c.axis.DataMin, c.axis.DataMax)
	return c, nil
}

func readSeries(cfg config, path string) (*timeseries.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	samples, err := timeseries.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	s := timeseries.NewSeries(filepath.Base(path), samples)
	if cfg.Grouping {
		s.SetGrouper(&timeseries.Grouping{
			Series:        s,
			MinPixelWidth: cfg.GroupPixelWidth,
			StartOfWeek:   parseWeekday(cfg.StartOfWeek),
		})
	}
	return s, nil
}

func (c *chart) render(out string) error {
	p := plot.New()
	p.Title.Text = c.cfg.Title
	p.X.Scale = ordinalplot.Scale{Axis: c.axis}
	p.X.Tick.Marker = ordinalplot.Ticker{Axis: c.axis}
	p.X.Min, p.X.Max = c.axis.Min, c.axis.Max

	for _, s := range c.series {
		xs, ys := s.XData(), s.YData()
		xys := make(plotter.XYs, len(xs))
		for i := range xs {
			xys[i].X, xys[i].Y = xs[i], ys[i]
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(s.Name(), line)
	}

	err := p.Save(vg.Points(c.cfg.Width), vg.Points(c.cfg.Height), out)
	if err == nil {
		log.Printf("wrote %s (%d positions, ordinal=%v)",
			out, len(c.axis.Ordinal().Positions()), c.axis.Ordinal().Active())
	}
	return err
}

func parseWeekday(s string) time.Weekday {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s == d.String() {
			return d
		}
	}
	return time.Monday
}
