package rotor_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rotorlab/rotorsim/internal/rotor"
)

var _ = Describe("Component validation", func() {
	It("rejects zero mass", func() {
		_, err := rotor.NewComponent("bad", 0, []float64{0, 0, 0})
		Expect(err).To(MatchError(rotor.ErrNonPositiveMass))
	})

	It("rejects negative mass", func() {
		_, err := rotor.NewComponent("bad", -1.0, []float64{0, 0, 0})
		Expect(err).To(MatchError(rotor.ErrNonPositiveMass))
	})

	It("names the offending component", func() {
		_, err := rotor.NewComponent("flywheel", -1.0, []float64{0, 0, 0})
		Expect(err.Error()).To(ContainSubstring("flywheel"))
	})

	It("rejects positions that are not three coordinates", func() {
		_, err := rotor.NewComponent("bad", 1.0, []float64{1, 2})
		Expect(err).To(MatchError(rotor.ErrBadPosition))

		_, err = rotor.NewComponent("bad", 1.0, []float64{1, 2, 3, 4})
		Expect(err).To(MatchError(rotor.ErrBadPosition))
	})

	It("rejects non-finite coordinates", func() {
		_, err := rotor.NewComponent("bad", 1.0, []float64{math.NaN(), 0, 0})
		Expect(err).To(MatchError(rotor.ErrBadPosition))
	})

	It("accepts a valid component", func() {
		c, err := rotor.NewComponent("hub", 2.5, []float64{0.1, -0.2, 0.3})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Mass).To(Equal(2.5))
		Expect(c.Position).To(Equal(rotor.Vec3{0.1, -0.2, 0.3}))
	})
})

var _ = Describe("CenterOfMass", func() {
	It("fails on an empty component list", func() {
		_, _, err := rotor.CenterOfMass(nil)
		Expect(err).To(MatchError(rotor.ErrNoComponents))
	})

	It("is the mass-weighted average position", func() {
		components := []rotor.Component{
			rotor.MustComponent("a", 1.0, []float64{0, 0, 0}),
			rotor.MustComponent("b", 3.0, []float64{2, 0, 0}),
		}

		com, total, err := rotor.CenterOfMass(components)
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeNumerically("~", 4.0, 1e-12))
		Expect(com.X).To(BeNumerically("~", 1.5, 1e-12))
		Expect(com.Y).To(BeNumerically("~", 0.0, 1e-12))
		Expect(com.Z).To(BeNumerically("~", 0.0, 1e-12))
	})

	It("weights every axis independently", func() {
		components := []rotor.Component{
			rotor.MustComponent("a", 2.0, []float64{1, -1, 4}),
			rotor.MustComponent("b", 2.0, []float64{3, 5, -2}),
		}

		com, total, err := rotor.CenterOfMass(components)
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeNumerically("~", 4.0, 1e-12))
		Expect(com).To(Equal(rotor.Vec3{2, 2, 1}))
	})

	It("sums the masses of any non-empty set", func() {
		components := []rotor.Component{
			rotor.MustComponent("a", 0.5, []float64{1, 0, 0}),
			rotor.MustComponent("b", 1.25, []float64{0, 1, 0}),
			rotor.MustComponent("c", 3.75, []float64{0, 0, 1}),
		}

		_, total, err := rotor.CenterOfMass(components)
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeNumerically("~", 5.5, 1e-12))
	})
})

var _ = Describe("Simulate", func() {
	var times []float64

	BeforeEach(func() {
		times = rotor.Timeline(2.0, 1000)
	})

	It("produces lower offset and force for a balanced pair", func() {
		omega := 2 * math.Pi * 10

		balanced := rotor.Case{
			Name: "balanced",
			Components: []rotor.Component{
				rotor.MustComponent("a", 1.0, []float64{1, 0, 0}),
				rotor.MustComponent("b", 1.0, []float64{-1, 0, 0}),
			},
		}
		unbalanced := rotor.Case{
			Name: "unbalanced",
			Components: []rotor.Component{
				rotor.MustComponent("a", 1.0, []float64{1, 0, 0}),
				rotor.MustComponent("b", 1.0, []float64{0, 0, 0}),
			},
		}

		br, err := rotor.Simulate(balanced, omega, times)
		Expect(err).NotTo(HaveOccurred())
		ur, err := rotor.Simulate(unbalanced, omega, times)
		Expect(err).NotTo(HaveOccurred())

		Expect(br.RadialOffset).To(BeNumerically("~", 0.0, 1e-12))
		Expect(br.CentrifugalForce).To(BeNumerically("~", 0.0, 1e-9))
		Expect(ur.RadialOffset).To(BeNumerically("~", 0.5, 1e-12))
		Expect(br.RadialOffset).To(BeNumerically("<", ur.RadialOffset))
		Expect(br.CentrifugalForce).To(BeNumerically("<", ur.CentrifugalForce))
	})

	It("ignores the axial coordinate in the radial offset", func() {
		c := rotor.Case{
			Name: "axial",
			Components: []rotor.Component{
				rotor.MustComponent("a", 1.0, []float64{0, 0, 5.0}),
			},
		}

		r, err := rotor.Simulate(c, 10.0, times)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.RadialOffset).To(BeZero())
		Expect(r.CentrifugalForce).To(BeZero())
	})

	It("computes force as m * omega^2 * r", func() {
		c := rotor.Case{
			Name: "point",
			Components: []rotor.Component{
				rotor.MustComponent("a", 2.0, []float64{3, 4, 0}),
			},
		}

		r, err := rotor.Simulate(c, 10.0, times)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.RadialOffset).To(BeNumerically("~", 5.0, 1e-12))
		Expect(r.CentrifugalForce).To(BeNumerically("~", 2.0*100*5.0, 1e-9))
	})

	It("emits offset * sin(omega * t) with one sample per input time", func() {
		c := rotor.Case{
			Name: "point",
			Components: []rotor.Component{
				rotor.MustComponent("a", 1.0, []float64{0.5, 0, 0}),
			},
		}
		omega := 3.0

		r, err := rotor.Simulate(c, omega, times)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Signal).To(HaveLen(len(times)))
		for i, t := range times {
			Expect(r.Signal[i]).To(BeNumerically("~", 0.5*math.Sin(omega*t), 1e-12))
		}
	})

	It("rejects a non-finite angular speed", func() {
		c := rotor.DefaultCases()[0]
		_, err := rotor.Simulate(c, math.NaN(), times)
		Expect(err).To(MatchError(rotor.ErrBadAngularSpeed))

		_, err = rotor.Simulate(c, math.Inf(1), times)
		Expect(err).To(MatchError(rotor.ErrBadAngularSpeed))
	})

	It("propagates the empty-case error", func() {
		_, err := rotor.Simulate(rotor.Case{Name: "empty"}, 10.0, times)
		Expect(err).To(MatchError(rotor.ErrNoComponents))
	})
})

var _ = Describe("SimulateAll", func() {
	It("keeps results in case order", func() {
		times := rotor.Timeline(1.0, 10)
		cases := rotor.DefaultCases()

		results, err := rotor.SimulateAll(context.Background(), cases, rotor.OmegaFromRPM(600), times)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(2))
		Expect(results[0].Name).To(Equal("Unbalanced"))
		Expect(results[1].Name).To(Equal("Balanced"))
	})

	It("returns the first case error", func() {
		times := rotor.Timeline(1.0, 10)
		cases := []rotor.Case{{Name: "empty"}}

		_, err := rotor.SimulateAll(context.Background(), cases, 10.0, times)
		Expect(err).To(MatchError(rotor.ErrNoComponents))
	})

	It("honors a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := rotor.SimulateAll(ctx, rotor.DefaultCases(), 10.0, rotor.Timeline(1.0, 10))
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Timeline", func() {
	It("spans [0, duration] inclusive", func() {
		times := rotor.Timeline(2.0, 5)
		Expect(times).To(Equal([]float64{0, 0.5, 1.0, 1.5, 2.0}))
	})
})

var _ = Describe("OmegaFromRPM", func() {
	It("converts revolutions per minute to rad/s", func() {
		Expect(rotor.OmegaFromRPM(60)).To(BeNumerically("~", 2*math.Pi, 1e-12))
		Expect(rotor.OmegaFromRPM(600)).To(BeNumerically("~", 20*math.Pi, 1e-9))
	})
})
