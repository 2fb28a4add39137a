package kernel

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Collision", func() {
	cases := []Collision{
		{M1: 1, M2: 1, V1: 5, V2: -5},
		{M1: 2, M2: 8, V1: 3, V2: 0},
		{M1: 0.5, M2: 4.5, V1: -2, V2: 7},
		{M1: 10, M2: 0.1, V1: 1, V2: 1},
	}

	It("conserves momentum for every restitution", func() {
		for _, c := range cases {
			for _, e := range []float64{0, 0.25, 0.5, 0.9, 1} {
				c.Restitution = e
				r := c.Resolve()
				Expect(r.MomentumAfter).To(BeNumerically("~", r.MomentumBefore, 1e-9*math.Max(1, math.Abs(r.MomentumBefore))))
			}
		}
	})

	It("conserves kinetic energy when elastic", func() {
		for _, c := range cases {
			c.Restitution = 1
			r := c.Resolve()
			Expect(r.KineticAfter).To(BeNumerically("~", r.KineticBefore, 1e-9*math.Max(1, r.KineticBefore)))
		}
	})

	It("loses kinetic energy when inelastic", func() {
		for _, c := range cases {
			c.Restitution = 0
			r := c.Resolve()
			if c.V1 == c.V2 {
				Expect(r.KineticAfter).To(BeNumerically("~", r.KineticBefore, 1e-9))
				continue
			}
			Expect(r.KineticAfter).To(BeNumerically("<", r.KineticBefore))
		}
	})

	It("merges to a shared velocity at zero restitution", func() {
		c := Collision{M1: 3, M2: 2, V1: 4, V2: -1, Restitution: 0}
		r := c.Resolve()
		merged := (c.M1*c.V1 + c.M2*c.V2) / (c.M1 + c.M2)
		Expect(r.V1).To(BeNumerically("~", merged, 1e-12))
		Expect(r.V2).To(BeNumerically("~", merged, 1e-12))
	})

	It("swaps velocities for equal masses in an elastic collision", func() {
		c := Collision{M1: 2, M2: 2, V1: 6, V2: -3, Restitution: 1}
		r := c.Resolve()
		Expect(r.V1).To(BeNumerically("~", -3, 1e-12))
		Expect(r.V2).To(BeNumerically("~", 6, 1e-12))
	})
})
