package solver

import (
	"math"

	"github.com/windlab/sailforce/internal/rig"
)

// PolarPoint is one sample of a course-angle sweep.
type PolarPoint struct {
	CourseAngleDeg float64 `json:"courseAngleDeg"`
	DriveN         float64 `json:"driveN"`   // forward drive at the base board speed
	TopSpeed       float64 `json:"topSpeed"` // solved equilibrium speed, m/s
}

// Polar sweeps course angle from 0 to 180 degrees at stepDeg, computing the
// forward drive at the base board speed and the equilibrium top speed for
// each heading. Wind, rig trim and water-drag coefficients stay fixed.
func Polar(in rig.Inputs, waterC0, waterC2, stepDeg float64) []PolarPoint {
	if stepDeg <= 0 {
		stepDeg = 5
	}

	steps := int(math.Round(180 / stepDeg))
	points := make([]PolarPoint, 0, steps+1)

	for i := 0; i <= steps; i++ {
		course := math.Min(180, float64(i)*stepDeg)
		in.CourseAngleDeg = course

		out := rig.Compute(in)
		ts := TopSpeed(in, waterC0, waterC2)

		points = append(points, PolarPoint{
			CourseAngleDeg: course,
			DriveN:         math.Max(0, -out.DriveN),
			TopSpeed:       ts.Speed,
		})
	}

	return points
}
