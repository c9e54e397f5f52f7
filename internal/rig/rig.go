package rig

import "math"

const (
	// Rho is sea-level air density in kg/m³.
	Rho = 1.225

	// LiftSlope is the lift coefficient slope per degree of attack angle.
	LiftSlope = 0.11

	// InducedDragK is the induced-drag factor in cd = cd0 + k·cl².
	InducedDragK = 0.06

	// SheetingLimitDeg bounds the sail angle relative to the centerline.
	// Keeps the user-facing control away from the degenerate near-90° zone.
	SheetingLimitDeg = 85.0

	// epsilon guards the unit-vector division when apparent wind is zero.
	epsilon = 1e-9
)

type Inputs struct {
	TrueWindSpeed  float64 // m/s
	CourseAngleDeg float64 // 0 = running downwind, 180 = heading upwind
	BoardSpeed     float64 // m/s along +x
	SailArea       float64 // m²
	SheetingDeg    float64 // sail angle to centerline, clamped to ±85
	Downhaul       float64 // trim control, intended [0,1]
	Outhaul        float64 // trim control, intended [0,1]
}

type Outputs struct {
	ApparentWindSpeed    float64 // m/s
	ApparentWindAngleDeg float64 // board-forward-relative
	AlphaDeg             float64 // effective angle of attack, (-180, 180]
	Cl                   float64
	Cd                   float64
	LiftN                float64
	DragN                float64
	DriveN               float64 // +x component of resultant force
	SideN                float64 // +y component, starboard
	PowerW               float64 // DriveN · BoardSpeed

	// Raw vectors in the board frame, for visualization.
	VaX, VaY     float64
	LiftX, LiftY float64
	DragX, DragY float64
	FX, FY       float64
}

func DefaultInputs() Inputs {
	return Inputs{
		TrueWindSpeed:  8.0,
		CourseAngleDeg: 110,
		BoardSpeed:     6.0,
		SailArea:       6.5,
		SheetingDeg:    15,
		Downhaul:       0.3,
		Outhaul:        0.3,
	}
}

// Compute evaluates the force model. It is pure and total: no state, no
// failure modes, every finite input maps to a finite output.
func Compute(in Inputs) Outputs {
	// True wind velocity in the board frame. Direction is π−course so that
	// course=180° places the wind along +x and course=0° along −x.
	windDir := (180.0 - in.CourseAngleDeg) * math.Pi / 180.0
	wx := in.TrueWindSpeed * math.Cos(windDir)
	wy := in.TrueWindSpeed * math.Sin(windDir)

	// Apparent wind = true wind − board velocity.
	vax := wx - in.BoardSpeed
	vay := wy
	va := math.Hypot(vax, vay)
	awaDeg := math.Atan2(vay, vax) * 180.0 / math.Pi

	sheet := clamp(in.SheetingDeg, -SheetingLimitDeg, SheetingLimitDeg)

	alpha := awaDeg - sheet
	for alpha > 180 {
		alpha -= 360
	}
	for alpha <= -180 {
		alpha += 360
	}

	// Higher flatness shrinks the stall range and peak lift but lowers
	// baseline drag.
	flatness := clamp(0.5*in.Downhaul+0.5*in.Outhaul, 0, 1)
	stallDeg := 18.0 - 5.0*flatness
	clMax := 1.2 - 0.4*flatness
	cd0 := 0.08 - 0.02*flatness

	// Both clamps apply in order: the stall clamp caps the linear region,
	// clMax caps the result. At extreme trim the second one can still bind.
	cl := LiftSlope * clamp(alpha, -stallDeg, stallDeg)
	cl = clamp(cl, -clMax, clMax)
	cd := cd0 + InducedDragK*cl*cl

	q := 0.5 * Rho * va * va
	lift := q * in.SailArea * cl
	drag := q * in.SailArea * cd

	// Unit vector of apparent wind; with zero wind it collapses to zero
	// instead of dividing by zero.
	ux := vax / (va + epsilon)
	uy := vay / (va + epsilon)

	// Drag opposes the apparent wind. Lift is perpendicular to it, rotated
	// ±90° by the sign of alpha.
	dragX := -ux * drag
	dragY := -uy * drag
	var liftX, liftY float64
	if alpha >= 0 {
		liftX, liftY = -uy*lift, ux*lift
	} else {
		liftX, liftY = uy*lift, -ux*lift
	}

	fx := liftX + dragX
	fy := liftY + dragY

	return Outputs{
		ApparentWindSpeed:    va,
		ApparentWindAngleDeg: awaDeg,
		AlphaDeg:             alpha,
		Cl:                   cl,
		Cd:                   cd,
		LiftN:                lift,
		DragN:                drag,
		DriveN:               fx,
		SideN:                fy,
		PowerW:               fx * in.BoardSpeed,
		VaX:                  vax,
		VaY:                  vay,
		LiftX:                liftX,
		LiftY:                liftY,
		DragX:                dragX,
		DragY:                dragY,
		FX:                   fx,
		FY:                   fy,
	}
}

// Flatness is the combined trim parameter derived from downhaul and outhaul.
func (in Inputs) Flatness() float64 {
	return clamp(0.5*in.Downhaul+0.5*in.Outhaul, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
