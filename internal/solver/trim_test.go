package solver

import (
	"math"
	"testing"

	"github.com/windlab/sailforce/internal/rig"
)

func TestSpanRange(t *testing.T) {
	tests := []struct {
		lo, hi, step float64
		expected     int
	}{
		{0, 1, 0.25, 5},
		{-85, 85, 5, 35},
		{0, 0, 1, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 0},
	}

	for _, tt := range tests {
		vals := SpanRange(tt.lo, tt.hi, tt.step)
		if len(vals) != tt.expected {
			t.Errorf("SpanRange(%v, %v, %v): expected %d values, got %d",
				tt.lo, tt.hi, tt.step, tt.expected, len(vals))
		}
	}
}

func TestTrimSearchFindsDrive(t *testing.T) {
	search := NewTrimSearch(
		[]string{"sheeting"},
		[][]float64{SpanRange(-85, 85, 5)},
	)

	base := reachingInputs()
	params, drive := search.Search(base)

	if drive <= 0 {
		t.Fatalf("expected positive drive on a reach, got %f", drive)
	}

	sheet, ok := params["sheeting"]
	if !ok {
		t.Fatal("expected sheeting in best params")
	}

	// The grid optimum must beat an arbitrary non-optimal setting.
	base.SheetingDeg = -85
	out := rig.Compute(base)
	if drive < math.Max(0, -out.DriveN) {
		t.Errorf("grid best %f worse than fixed -85° drive", drive)
	}

	base.SheetingDeg = sheet
	out = rig.Compute(base)
	if math.Abs(math.Max(0, -out.DriveN)-drive) > 1e-9 {
		t.Errorf("reported drive %f does not match recompute %f", drive, math.Max(0, -out.DriveN))
	}
}

func TestTrimSearchMultiParam(t *testing.T) {
	search := NewTrimSearch(
		[]string{"sheeting", "downhaul", "outhaul"},
		[][]float64{
			SpanRange(0, 40, 10),
			SpanRange(0, 1, 0.5),
			SpanRange(0, 1, 0.5),
		},
	)

	params, drive := search.Search(reachingInputs())

	for _, name := range []string{"sheeting", "downhaul", "outhaul"} {
		if _, ok := params[name]; !ok {
			t.Errorf("missing %s in best params", name)
		}
	}
	if drive < 0 {
		t.Errorf("drive must be non-negative, got %f", drive)
	}
}

func TestTrimSearchEmptyGrid(t *testing.T) {
	search := NewTrimSearch([]string{"sheeting"}, [][]float64{nil})
	params, drive := search.Search(reachingInputs())

	if len(params) != 0 {
		t.Errorf("expected empty params for empty grid, got %v", params)
	}
	if drive != 0 {
		t.Errorf("expected zero drive for empty grid, got %f", drive)
	}
}
