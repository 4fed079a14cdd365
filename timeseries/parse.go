// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeseries reads timestamped sample files and adapts them to
// the series interface consumed by the ordinal axis engine.
package timeseries

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Sample is one observation: a time in milliseconds since the Unix
// epoch and a value.
type Sample struct {
	T float64
	V float64
}

// Parse parses a sample file from r. Each line holds a timestamp and a
// value separated by whitespace or a comma; the timestamp is either
// RFC 3339 or an integer count of milliseconds since the Unix epoch.
// Blank lines, lines starting with "#", and lines that do not parse
// (e.g. column headers) are skipped.
func Parse(r io.Reader) ([]Sample, error) {
	var samples []Sample

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if s, ok := parseSample(line); ok {
			samples = append(samples, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return samples, nil
}

func parseSample(line string) (Sample, bool) {
	f := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(f) < 2 {
		return Sample{}, false
	}

	var t float64
	if ms, err := strconv.ParseInt(f[0], 10, 64); err == nil {
		t = float64(ms)
	} else if ts, err := time.Parse(time.RFC3339, f[0]); err == nil {
		t = float64(ts.UnixMilli())
	} else {
		return Sample{}, false
	}

	v, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return Sample{}, false
	}
	return Sample{T: t, V: v}, true
}
