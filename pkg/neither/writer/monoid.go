package writer

// Mappend combines two logs. It must be associative.
type Mappend[W any] func(a, b W) W

// Semigroup is implemented by log types that know how to append to
// themselves.
type Semigroup[W any] interface {
	Append(W) W
}

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func Concat(a, b string) string {
	return a + b
}

// AppendSlice never aliases a's backing array.
func AppendSlice[E any](a, b []E) []E {
	out := make([]E, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func Sum[N Number](a, b N) N {
	return a + b
}

// Log is a string log appended by concatenation.
type Log string

func (l Log) Append(other Log) Log {
	return l + other
}

// Lines is a log of one entry per step.
type Lines []string

func (l Lines) Append(other Lines) Lines {
	return AppendSlice(l, other)
}
