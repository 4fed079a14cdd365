// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import "testing"

func TestNewSeriesSorts(t *testing.T) {
	s := NewSeries("s", []Sample{{7, 3}, {0, 1}, {20, 4}, {5, 2}})
	want := []float64{0, 5, 7, 20}
	got := s.XData()
	if len(got) != len(want) {
		t.Fatalf("XData = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("XData = %v, want %v", got, want)
		}
	}
	// Values travel with their timestamps.
	if ys := s.YData(); ys[0] != 1 || ys[3] != 4 {
		t.Errorf("YData = %v, want values sorted with timestamps", ys)
	}
	if got := s.ClosestPointRange(); got != 2 {
		t.Errorf("ClosestPointRange = %v, want 2", got)
	}
}

func TestSetWindow(t *testing.T) {
	s := NewSeries("s", []Sample{{0, 0}, {5, 0}, {7, 0}, {20, 0}})
	s.SetWindow(5, 7)
	if got := s.XData(); len(got) != 2 || got[0] != 5 || got[1] != 7 {
		t.Errorf("XData after SetWindow(5, 7) = %v, want [5 7]", got)
	}
	// FullXData ignores the window.
	if got := s.FullXData(); len(got) != 4 {
		t.Errorf("FullXData = %v, want all 4 samples", got)
	}
	// An empty window is fine.
	s.SetWindow(8, 10)
	if got := s.XData(); len(got) != 0 {
		t.Errorf("XData after SetWindow(8, 10) = %v, want none", got)
	}
}

func TestAppend(t *testing.T) {
	s := NewSeries("s", []Sample{{0, 0}, {5, 0}})
	if !s.Append(Sample{7, 1}) {
		t.Fatalf("Append(7) rejected")
	}
	// A window pinned to the live edge follows appends.
	if got := s.XData(); len(got) != 3 || got[2] != 7 {
		t.Errorf("XData after append = %v, want trailing 7", got)
	}
	if got := s.ClosestPointRange(); got != 2 {
		t.Errorf("ClosestPointRange after append = %v, want 2", got)
	}

	// Samples that do not extend the series are rejected.
	if s.Append(Sample{7, 2}) || s.Append(Sample{3, 2}) {
		t.Errorf("Append accepted a non-extending sample")
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d after rejected appends, want 3", s.Len())
	}

	// A zoomed-in window stays put.
	s.SetWindow(0, 5)
	s.Append(Sample{9, 3})
	if got := s.XData(); len(got) != 2 {
		t.Errorf("XData after append to zoomed series = %v, want [0 5]", got)
	}
}
