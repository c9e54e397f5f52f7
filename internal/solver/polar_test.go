package solver

import "testing"

func TestPolarSweepShape(t *testing.T) {
	points := Polar(reachingInputs(), 40, 0.9, 5)

	if len(points) != 37 {
		t.Fatalf("expected 37 samples at 5° step, got %d", len(points))
	}
	if points[0].CourseAngleDeg != 0 {
		t.Errorf("expected first sample at 0°, got %f", points[0].CourseAngleDeg)
	}
	if points[len(points)-1].CourseAngleDeg != 180 {
		t.Errorf("expected last sample at 180°, got %f", points[len(points)-1].CourseAngleDeg)
	}

	for _, p := range points {
		if p.DriveN < 0 {
			t.Errorf("drive at %f° must be non-negative, got %f", p.CourseAngleDeg, p.DriveN)
		}
		if p.TopSpeed < 0 || p.TopSpeed > SweepMax {
			t.Errorf("top speed at %f° out of sweep range: %f", p.CourseAngleDeg, p.TopSpeed)
		}
	}
}

func TestPolarDefaultsBadStep(t *testing.T) {
	points := Polar(reachingInputs(), 40, 0.9, -1)
	if len(points) != 37 {
		t.Errorf("expected fallback to 5° step (37 samples), got %d", len(points))
	}
}

func TestPolarDeterministic(t *testing.T) {
	a := Polar(reachingInputs(), 40, 0.9, 15)
	b := Polar(reachingInputs(), 40, 0.9, 15)

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("sample %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
