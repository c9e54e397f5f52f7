package solver

import (
	"math"

	"github.com/windlab/sailforce/internal/rig"
)

// TrimSearch runs a recursive grid search over named rig parameters,
// maximizing forward drive with all other inputs held fixed.
type TrimSearch struct {
	paramNames []string
	ranges     [][]float64
}

// NewTrimSearch builds a search over the given parameters. Supported names
// are "sheeting", "downhaul" and "outhaul"; ranges[i] lists the candidate
// values for paramNames[i].
func NewTrimSearch(params []string, ranges [][]float64) *TrimSearch {
	return &TrimSearch{paramNames: params, ranges: ranges}
}

// Search evaluates every grid point and returns the best parameter set and
// the forward drive it achieves.
func (t *TrimSearch) Search(base rig.Inputs) (map[string]float64, float64) {
	best := math.Inf(-1)
	var bestParams map[string]float64

	t.searchRecursive(0, make(map[string]float64), base, &best, &bestParams)

	if bestParams == nil {
		bestParams = map[string]float64{}
		best = 0
	}
	return bestParams, best
}

func (t *TrimSearch) searchRecursive(depth int, current map[string]float64, base rig.Inputs, best *float64, bestParams *map[string]float64) {
	if depth == len(t.paramNames) {
		in := applyTrim(base, current)
		out := rig.Compute(in)
		drive := math.Max(0, -out.DriveN)

		if drive > *best {
			*best = drive
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return
	}

	name := t.paramNames[depth]
	for _, val := range t.ranges[depth] {
		next := make(map[string]float64)
		for k, v := range current {
			next[k] = v
		}
		next[name] = val

		t.searchRecursive(depth+1, next, base, best, bestParams)
	}
}

func applyTrim(in rig.Inputs, params map[string]float64) rig.Inputs {
	for name, val := range params {
		switch name {
		case "sheeting":
			in.SheetingDeg = val
		case "downhaul":
			in.Downhaul = val
		case "outhaul":
			in.Outhaul = val
		}
	}
	return in
}

// SpanRange returns evenly spaced candidate values from lo to hi inclusive.
func SpanRange(lo, hi, step float64) []float64 {
	if step <= 0 || hi < lo {
		return nil
	}
	vals := make([]float64, 0, int((hi-lo)/step)+1)
	for v := lo; v <= hi+step/2; v += step {
		vals = append(vals, v)
	}
	return vals
}
