package bif6

import (
	"math"
	"testing"
)

func TestIsTICImage(t *testing.T) {
	t.Parallel()

	tic := &Interval{ID: 0}
	if !tic.IsTICImage() {
		t.Error("id 0 should be the TIC image")
	}
	other := &Interval{ID: 7}
	if other.IsTICImage() {
		t.Error("id 7 should not be the TIC image")
	}
}

func TestImageAccessors(t *testing.T) {
	t.Parallel()

	var empty Image
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("empty image shape: got (%d, %d)", empty.Width(), empty.Height())
	}

	img := Image{{1, 2, 3}, {4, 5, 6}}
	if img.Width() != 2 || img.Height() != 3 {
		t.Fatalf("image shape: got (%d, %d) want (2, 3)", img.Width(), img.Height())
	}
	if img.At(1, 2) != 6 {
		t.Errorf("At(1, 2): got %d want 6", img.At(1, 2))
	}
}

func TestIntervalStats(t *testing.T) {
	t.Parallel()

	iv := &Interval{Image: Image{{2, 4}, {6, 8}}}
	s := iv.Stats()
	if s.Min != 2 || s.Max != 8 {
		t.Errorf("min/max: got (%d, %d) want (2, 8)", s.Min, s.Max)
	}
	if s.Total != 20 {
		t.Errorf("total: got %d want 20", s.Total)
	}
	if s.Mean != 5 {
		t.Errorf("mean: got %g want 5", s.Mean)
	}
	// Sample standard deviation of {2, 4, 6, 8}.
	want := math.Sqrt(20.0 / 3.0)
	if math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("stddev: got %g want %g", s.StdDev, want)
	}
}

func TestIntervalStatsEmptyImage(t *testing.T) {
	t.Parallel()

	iv := &Interval{}
	if s := iv.Stats(); s != (Stats{}) {
		t.Errorf("empty image stats: got %+v want zero value", s)
	}

	single := &Interval{Image: Image{{9}}}
	s := single.Stats()
	if s.Min != 9 || s.Max != 9 || s.Mean != 9 || s.StdDev != 0 || s.Total != 9 {
		t.Errorf("single pixel stats: got %+v", s)
	}
}
