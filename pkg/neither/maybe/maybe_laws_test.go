package maybe_test

import (
	"strconv"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ib-77/neither/pkg/neither/maybe"
)

func maybeOf(present bool, v int) maybe.Maybe[int] {
	if !present {
		return maybe.Nothing[int]()
	}
	return maybe.Just(v)
}

// divStep is absent for values not divisible by k.
func divStep(k int) func(int) maybe.Maybe[int] {
	return func(n int) maybe.Maybe[int] {
		if n%k != 0 {
			return maybe.Nothing[int]()
		}
		return maybe.Just(n / k)
	}
}

// showStep is absent below m.
func showStep(m int) func(int) maybe.Maybe[string] {
	return func(n int) maybe.Maybe[string] {
		if n < m {
			return maybe.Nothing[string]()
		}
		return maybe.Just(strconv.Itoa(n))
	}
}

var _ = Describe("Maybe laws", func() {
	DescribeTable("hold for generated values",
		func(p gopter.Prop) {
			Expect(holds(p)).To(BeTrue())
		},
		Entry("functor identity", prop.ForAll(
			func(present bool, v int) bool {
				m := maybeOf(present, v)
				return maybe.Equal(maybe.Map(m, func(x int) int { return x }), m)
			},
			gen.Bool(), gen.Int())),

		Entry("functor composition", prop.ForAll(
			func(present bool, v, k int) bool {
				m := maybeOf(present, v)
				f := func(x int) int { return x + k }
				g := strconv.Itoa
				return maybe.Equal(
					maybe.Map(m, func(x int) string { return g(f(x)) }),
					maybe.Map(maybe.Map(m, f), g))
			},
			gen.Bool(), gen.Int(), gen.IntRange(-100, 100))),

		Entry("Just is a left identity of FlatMap", prop.ForAll(
			func(v, k int) bool {
				f := divStep(k)
				return maybe.Equal(maybe.FlatMap(maybe.Just(v), f), f(v))
			},
			gen.Int(), gen.IntRange(1, 7))),

		Entry("Just is a right identity of FlatMap", prop.ForAll(
			func(present bool, v int) bool {
				m := maybeOf(present, v)
				return maybe.Equal(maybe.FlatMap(m, maybe.Just[int]), m)
			},
			gen.Bool(), gen.Int())),

		Entry("FlatMap is associative", prop.ForAll(
			func(present bool, v, k, threshold int) bool {
				m := maybeOf(present, v)
				f, g := divStep(k), showStep(threshold)
				left := maybe.FlatMap(maybe.FlatMap(m, f), g)
				right := maybe.FlatMap(m, func(x int) maybe.Maybe[string] {
					return maybe.FlatMap(f(x), g)
				})
				return maybe.Equal(left, right)
			},
			gen.Bool(), gen.IntRange(-1000, 1000), gen.IntRange(1, 7), gen.IntRange(-500, 500))),

		Entry("Flatten of Just is the inner value", prop.ForAll(
			func(present bool, v int) bool {
				m := maybeOf(present, v)
				return maybe.Equal(maybe.Flatten(maybe.Just(m)), m)
			},
			gen.Bool(), gen.Int())),
	)

	It("never calls f for an absent value", func() {
		Expect(holds(prop.ForAll(
			func(k int) bool {
				calls := 0
				maybe.FlatMap(maybe.Nothing[int](), func(v int) maybe.Maybe[int] {
					calls++
					return divStep(k)(v)
				})
				maybe.Map(maybe.Nothing[int](), func(v int) int {
					calls++
					return v
				})
				return calls == 0
			},
			gen.IntRange(1, 7)))).To(BeTrue())
	})
})
