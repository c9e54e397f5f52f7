package rig_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/windlab/sailforce/internal/rig"
)

var _ = Describe("Compute", func() {
	reaching := rig.Inputs{
		TrueWindSpeed:  10,
		CourseAngleDeg: 120,
		BoardSpeed:     8,
		SailArea:       6.5,
		SheetingDeg:    20,
		Downhaul:       0.4,
		Outhaul:        0.4,
	}

	It("exposes the resultant components as drive and side", func() {
		for _, course := range []float64{0, 45, 90, 120, 180} {
			in := reaching
			in.CourseAngleDeg = course
			out := rig.Compute(in)
			Expect(out.DriveN).To(Equal(out.FX))
			Expect(out.SideN).To(Equal(out.FY))
		}
	})

	It("matches the reaching regression fixture", func() {
		out := rig.Compute(reaching)

		Expect(out.ApparentWindSpeed).To(BeNumerically("~", 9.165151, 1e-4))
		Expect(out.ApparentWindAngleDeg).To(BeNumerically("~", 109.1066, 1e-3))
		Expect(out.AlphaDeg).To(BeNumerically("~", 89.1066, 1e-3))
		Expect(out.Cl).To(BeNumerically("~", 1.04, 1e-9))
		Expect(out.Cd).To(BeNumerically("~", 0.136896, 1e-9))
		Expect(out.DriveN).To(BeNumerically("~", -313.656, 0.01))
		Expect(out.SideN).To(BeNumerically("~", -157.104, 0.01))
		Expect(out.PowerW).To(BeNumerically("~", out.DriveN*8, 1e-9))
	})

	It("normalizes alpha into (-180, 180] for any finite angles", func() {
		for _, course := range []float64{-10000, -720, -180, 0, 180, 359, 720, 10000} {
			for _, sheet := range []float64{-500, -85, 0, 85, 500} {
				in := reaching
				in.CourseAngleDeg = course
				in.SheetingDeg = sheet
				out := rig.Compute(in)
				Expect(out.AlphaDeg).To(BeNumerically(">", -180))
				Expect(out.AlphaDeg).To(BeNumerically("<=", 180))
			}
		}
	})

	It("bounds cl by the flatness-dependent maximum", func() {
		for flat := 0.0; flat <= 1.0; flat += 0.25 {
			clMax := 1.2 - 0.4*flat
			for alpha := -200.0; alpha <= 200; alpha += 7 {
				in := reaching
				in.Downhaul = flat
				in.Outhaul = flat
				in.SheetingDeg = alpha // shifts alpha via awa - sheeting
				out := rig.Compute(in)
				Expect(math.Abs(out.Cl)).To(BeNumerically("<=", clMax+1e-12))
			}
		}
	})

	It("keeps cd at or above the baseline drag", func() {
		for flat := 0.0; flat <= 1.0; flat += 0.1 {
			cd0 := 0.08 - 0.02*flat
			in := reaching
			in.Downhaul = flat
			in.Outhaul = flat
			out := rig.Compute(in)
			Expect(out.Cd).To(BeNumerically(">=", cd0-1e-12))
		}
	})

	It("yields zero apparent wind and zero forces when wind matches board speed upwind", func() {
		in := rig.Inputs{
			TrueWindSpeed:  10,
			CourseAngleDeg: 180,
			BoardSpeed:     10,
			SailArea:       6.5,
			SheetingDeg:    10,
		}
		out := rig.Compute(in)

		Expect(out.ApparentWindSpeed).To(BeNumerically("~", 0, 1e-9))
		Expect(out.LiftN).To(BeNumerically("~", 0, 1e-9))
		Expect(out.DragN).To(BeNumerically("~", 0, 1e-9))
		Expect(out.DriveN).To(BeNumerically("~", 0, 1e-9))
		Expect(out.SideN).To(BeNumerically("~", 0, 1e-9))
		Expect(math.IsNaN(out.ApparentWindAngleDeg)).To(BeFalse())
	})

	It("clamps sheeting beyond the limit to the limit exactly", func() {
		wild := reaching
		wild.SheetingDeg = 120
		limit := reaching
		limit.SheetingDeg = 85

		Expect(rig.Compute(wild)).To(Equal(rig.Compute(limit)))

		wild.SheetingDeg = -120
		limit.SheetingDeg = -85
		Expect(rig.Compute(wild)).To(Equal(rig.Compute(limit)))
	})

	It("is idempotent on identical inputs", func() {
		a := rig.Compute(reaching)
		b := rig.Compute(reaching)
		Expect(a).To(Equal(b))
	})

	It("stays finite under extreme inputs", func() {
		in := rig.Inputs{
			TrueWindSpeed:  1e6,
			CourseAngleDeg: 123456,
			BoardSpeed:     -1e6,
			SailArea:       1e3,
			SheetingDeg:    1e4,
			Downhaul:       50,
			Outhaul:        -50,
		}
		out := rig.Compute(in)
		for _, v := range []float64{out.ApparentWindSpeed, out.AlphaDeg, out.Cl, out.Cd, out.DriveN, out.SideN} {
			Expect(math.IsNaN(v)).To(BeFalse())
			Expect(math.IsInf(v, 0)).To(BeFalse())
		}
	})
})

var _ = Describe("Flatness", func() {
	It("averages downhaul and outhaul clamped to [0,1]", func() {
		Expect(rig.Inputs{Downhaul: 0.4, Outhaul: 0.4}.Flatness()).To(BeNumerically("~", 0.4, 1e-12))
		Expect(rig.Inputs{Downhaul: 2, Outhaul: 2}.Flatness()).To(Equal(1.0))
		Expect(rig.Inputs{Downhaul: -1, Outhaul: -1}.Flatness()).To(Equal(0.0))
	})
})
