// Package solver derives estimates from repeated force-model evaluations:
// equilibrium top speed against a quadratic water-drag model, trim searches,
// and polar sweeps over course angle.
package solver

import (
	"math"

	"github.com/windlab/sailforce/internal/rig"
)

const (
	// SweepMax is the upper bound of the top-speed sweep in m/s.
	SweepMax = 30.0
	// SweepStep is the sweep resolution in m/s.
	SweepStep = 0.1
)

// Result is the equilibrium estimate for one solve.
type Result struct {
	Speed        float64 // m/s
	DriveAtSpeed float64 // N
	WaterDrag    float64 // N
}

// TopSpeed sweeps board speed over [0, SweepMax] at SweepStep and returns
// the last sampled speed at which aerodynamic drive still covers the modeled
// water drag waterC0 + waterC2·V². The sweep keeps the highest satisfying
// sample rather than the first crossing, so a non-monotonic drive curve
// resolves to the fastest sustainable point. If no sample satisfies the
// condition the zero-speed default is returned.
//
// Forward drive registers as a negative DriveN in the tested input ranges;
// the solver takes max(0, −DriveN) as the propulsive magnitude.
func TopSpeed(in rig.Inputs, waterC0, waterC2 float64) Result {
	res := Result{Speed: 0, DriveAtSpeed: 0, WaterDrag: waterC0}

	steps := int(math.Round(SweepMax / SweepStep))
	for i := 0; i <= steps; i++ {
		v := float64(i) * SweepStep
		in.BoardSpeed = v
		out := rig.Compute(in)

		drive := math.Max(0, -out.DriveN)
		waterDrag := waterC0 + waterC2*v*v

		if drive >= waterDrag {
			res = Result{Speed: v, DriveAtSpeed: drive, WaterDrag: waterDrag}
		}
	}

	return res
}
