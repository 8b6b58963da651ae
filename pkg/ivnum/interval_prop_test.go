package ivnum

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genInterval produces a well-formed, finite, bounded-magnitude interval
// so arithmetic stays inside a range where outward rounding is
// meaningful to check against.
func genInterval() gopter.Gen {
	return gen.Float64Range(-1e6, 1e6).FlatMap(func(a any) gopter.Gen {
		lo := a.(float64)
		return gen.Float64Range(lo, lo+1e6).Map(func(hi float64) Interval {
			return New(lo, hi)
		})
	}, nil)
}

// TestOutwardRoundingProperty checks spec §8's outward-rounding property:
// for sampled endpoints of x and y, the exact real sum/product lies
// inside the interval result.
func TestOutwardRoundingProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("Add encloses every corner sum", prop.ForAll(
		func(x, y Interval) bool {
			z := x.Add(y)
			for _, a := range []float64{x.lo, x.hi} {
				for _, b := range []float64{y.lo, y.hi} {
					if !z.Contains(a + b) {
						return false
					}
				}
			}
			return true
		},
		genInterval(), genInterval(),
	))

	properties.Property("Mul encloses every corner product", prop.ForAll(
		func(x, y Interval) bool {
			z := x.Mul(y)
			for _, a := range []float64{x.lo, x.hi} {
				for _, b := range []float64{y.lo, y.hi} {
					if !z.Contains(a * b) {
						return false
					}
				}
			}
			return true
		},
		genInterval(), genInterval(),
	))

	properties.Property("Intersect never widens either operand", prop.ForAll(
		func(x, y Interval) bool {
			z := x.Intersect(y)
			return z.IsEmpty() || (x.ContainsInterval(z) && y.ContainsInterval(z))
		},
		genInterval(), genInterval(),
	))

	properties.Property("Hull always contains both operands", prop.ForAll(
		func(x, y Interval) bool {
			z := x.Hull(y)
			return z.ContainsInterval(x) && z.ContainsInterval(y)
		},
		genInterval(), genInterval(),
	))

	properties.TestingRun(t)
}

// TestAddProjectionLaws checks the projection onto z of z = x + y:
// addPZ(X,Y,Z) ⊆ Z and addPZ(X,Y,Z) ⊆ X+Y — i.e. the projected z never
// leaves either the candidate Z or the forward sum.
func TestAddProjectionLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("addPZ is contained in Z", prop.ForAll(
		func(x, y, z Interval) bool {
			pz := AddPZ(x, y, z)
			return z.ContainsInterval(pz)
		},
		genInterval(), genInterval(), genInterval(),
	))

	properties.Property("forward sum contains addPZ", prop.ForAll(
		func(x, y, z Interval) bool {
			sum := x.Add(y)
			pz := AddPZ(x, y, z)
			return pz.IsEmpty() || sum.ContainsInterval(pz)
		},
		genInterval(), genInterval(), genInterval(),
	))

	properties.TestingRun(t)
}

func TestMidpointWithinBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("midpoint lies within the interval", prop.ForAll(
		func(x Interval) bool {
			if x.IsEmpty() {
				return true
			}
			m := x.Midpoint()
			return !math.IsNaN(m) && x.Contains(m)
		},
		genInterval(),
	))

	properties.TestingRun(t)
}
