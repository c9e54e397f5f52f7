// Package rig implements the aerodynamic force model for a wind-propelled
// board.
//
// The model is a single pure function, [Compute], mapping environment and
// trim inputs to apparent wind, lift/drag coefficients and force vectors in
// the board frame (+x forward, +y starboard):
//
//	out := rig.Compute(rig.Inputs{
//	    TrueWindSpeed:  10,
//	    CourseAngleDeg: 120,
//	    BoardSpeed:     8,
//	    SailArea:       6.5,
//	    SheetingDeg:    20,
//	})
//	fmt.Println(out.DriveN, out.SideN)
//
// Outputs carry no hidden state; identical inputs always produce
// bit-identical outputs. All inputs are clamped or epsilon-guarded, so the
// function is total for any finite input.
package rig
