// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aclements/go-ordinal/timeseries"
)

// watch re-renders the chart whenever an input file changes. Appended
// samples are folded into the existing series and the axis is told the
// data changed, so cached full-range positions are recomputed; a file
// that was rewritten from scratch reloads the whole chart.
func (c *chart) watch(paths []string, out string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			return err
		}
	}
	log.Printf("watching %d input(s)", len(paths))

	// Editors fire bursts of writes; debounce them.
	var pending *time.Timer
	reload := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if pending == nil {
				pending = time.AfterFunc(250*time.Millisecond, func() {
					reload <- struct{}{}
				})
			} else {
				pending.Reset(250 * time.Millisecond)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Print(err)
		case <-reload:
			pending = nil
			if err := c.reload(paths); err != nil {
				log.Print(err)
				continue
			}
			if err := c.render(out); err != nil {
				log.Print(err)
			}
		}
	}
}

func (c *chart) reload(paths []string) error {
	rebuilt := false
	for i, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		samples, err := timeseries.Parse(f)
		f.Close()
		if err != nil {
			return err
		}

		s := c.series[i]
		if len(samples) >= s.Len() && appendTail(s, samples) {
			continue
		}
		// Not a pure append; rebuild this series.
		c.series[i] = timeseries.NewSeries(s.Name(), samples)
		rebuilt = true
	}

	if rebuilt {
		fresh, err := loadChart(c.cfg, paths)
		if err != nil {
			return err
		}
		*c = *fresh
		return nil
	}
	// Invalidate cached positions before anything reads them.
	c.axis.DataChanged()
	c.axis.SetExtremes(c.axis.DataMin, c.axis.DataMax)
	return nil
}

// appendTail applies samples beyond the series' current length,
// reporting false if they do not extend the series in order.
func appendTail(s *timeseries.Series, samples []timeseries.Sample) bool {
	for _, sm := range samples[s.Len():] {
		if !s.Append(sm) {
			return false
		}
	}
	return true
}
