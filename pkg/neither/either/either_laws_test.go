package either_test

import (
	"strconv"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ib-77/neither/pkg/neither/either"
)

func eitherOf(isLeft bool, l string, r int) either.Either[string, int] {
	if isLeft {
		return either.Left[int](l)
	}
	return either.Right[string](r)
}

// rightStep fails on multiples of k.
func rightStep(k int) func(int) either.Either[string, int] {
	return func(v int) either.Either[string, int] {
		if v%k == 0 {
			return either.Left[int]("multiple of " + strconv.Itoa(k))
		}
		return either.Right[string](v + k)
	}
}

func showStep(m int) func(int) either.Either[string, string] {
	return func(v int) either.Either[string, string] {
		if v < m {
			return either.Left[string]("below " + strconv.Itoa(m))
		}
		return either.Right[string](strconv.Itoa(v))
	}
}

// leftStep recovers left strings whose length is a multiple of k.
func leftStep(k int) func(string) either.Either[int, int] {
	return func(s string) either.Either[int, int] {
		if len(s)%k == 0 {
			return either.Right[int](len(s))
		}
		return either.Left[int](len(s) + k)
	}
}

func leftShowStep(v int) either.Either[string, int] {
	if v%2 == 0 {
		return either.Left[int](strconv.Itoa(v))
	}
	return either.Right[string](v)
}

var _ = Describe("Either laws", func() {
	DescribeTable("hold for generated values",
		func(p gopter.Prop) {
			Expect(holds(p)).To(BeTrue())
		},
		Entry("MapRight identity", prop.ForAll(
			func(isLeft bool, l string, r int) bool {
				e := eitherOf(isLeft, l, r)
				return either.Equal(either.MapRight(e, func(v int) int { return v }), e)
			},
			gen.Bool(), gen.AlphaString(), gen.Int())),

		Entry("MapRight composition", prop.ForAll(
			func(isLeft bool, l string, r, k int) bool {
				e := eitherOf(isLeft, l, r)
				f := func(v int) int { return v * k }
				g := strconv.Itoa
				return either.Equal(
					either.MapRight(e, func(v int) string { return g(f(v)) }),
					either.MapRight(either.MapRight(e, f), g))
			},
			gen.Bool(), gen.AlphaString(), gen.Int(), gen.IntRange(-50, 50))),

		Entry("MapLeft identity", prop.ForAll(
			func(isLeft bool, l string, r int) bool {
				e := eitherOf(isLeft, l, r)
				return either.Equal(either.MapLeft(e, func(s string) string { return s }), e)
			},
			gen.Bool(), gen.AlphaString(), gen.Int())),

		Entry("MapLeft composition", prop.ForAll(
			func(isLeft bool, l string, r int, suffix string) bool {
				e := eitherOf(isLeft, l, r)
				f := func(s string) string { return s + suffix }
				g := func(s string) int { return len(s) }
				return either.Equal(
					either.MapLeft(e, func(s string) int { return g(f(s)) }),
					either.MapLeft(either.MapLeft(e, f), g))
			},
			gen.Bool(), gen.AlphaString(), gen.Int(), gen.AlphaString())),

		Entry("FlatMapRight left identity", prop.ForAll(
			func(x, k int) bool {
				f := rightStep(k)
				return either.Equal(either.FlatMapRight(either.Right[string](x), f), f(x))
			},
			gen.Int(), gen.IntRange(2, 9))),

		Entry("FlatMapRight right identity", prop.ForAll(
			func(isLeft bool, l string, r int) bool {
				e := eitherOf(isLeft, l, r)
				return either.Equal(either.FlatMapRight(e, either.Right[string, int]), e)
			},
			gen.Bool(), gen.AlphaString(), gen.Int())),

		Entry("FlatMapRight associativity", prop.ForAll(
			func(isLeft bool, l string, r, k, m int) bool {
				e := eitherOf(isLeft, l, r)
				f, g := rightStep(k), showStep(m)
				left := either.FlatMapRight(either.FlatMapRight(e, f), g)
				right := either.FlatMapRight(e, func(v int) either.Either[string, string] {
					return either.FlatMapRight(f(v), g)
				})
				return either.Equal(left, right)
			},
			gen.Bool(), gen.AlphaString(), gen.IntRange(-1000, 1000), gen.IntRange(2, 9), gen.IntRange(-1000, 1000))),

		Entry("FlatMapLeft left identity", prop.ForAll(
			func(s string, k int) bool {
				f := leftStep(k)
				return either.Equal(either.FlatMapLeft(either.Left[int](s), f), f(s))
			},
			gen.AlphaString(), gen.IntRange(1, 5))),

		Entry("FlatMapLeft right identity", prop.ForAll(
			func(isLeft bool, l string, r int) bool {
				e := eitherOf(isLeft, l, r)
				return either.Equal(either.FlatMapLeft(e, either.Left[int, string]), e)
			},
			gen.Bool(), gen.AlphaString(), gen.Int())),

		Entry("FlatMapLeft associativity", prop.ForAll(
			func(isLeft bool, l string, r, k int) bool {
				e := eitherOf(isLeft, l, r)
				f := leftStep(k)
				left := either.FlatMapLeft(either.FlatMapLeft(e, f), leftShowStep)
				right := either.FlatMapLeft(e, func(s string) either.Either[string, int] {
					return either.FlatMapLeft(f(s), leftShowStep)
				})
				return either.Equal(left, right)
			},
			gen.Bool(), gen.AlphaString(), gen.Int(), gen.IntRange(1, 5))),
	)

	It("never runs the mapper for the opposite case", func() {
		Expect(holds(prop.ForAll(
			func(l string, r int) bool {
				calls := 0
				either.MapRight(either.Left[int](l), func(v int) int { calls++; return v })
				either.MapLeft(either.Right[string](r), func(s string) string { calls++; return s })
				return calls == 0
			},
			gen.AlphaString(), gen.Int()))).To(BeTrue())
	})
})
