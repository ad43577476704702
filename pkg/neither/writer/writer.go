package writer

type Writer[A, W any] struct {
	value   A
	log     W
	mappend Mappend[W]
}

func New[A, W any](a A, w W, mappend Mappend[W]) Writer[A, W] {
	return Writer[A, W]{value: a, log: w, mappend: mappend}
}

// Run starts a Writer whose log type provides its own Append.
func Run[A any, W Semigroup[W]](a A, w W) Writer[A, W] {
	return New(a, w, func(x, y W) W { return x.Append(y) })
}

func RunString[A any](a A, w string) Writer[A, string] {
	return New(a, w, Concat)
}

func RunSlice[A, E any](a A, w []E) Writer[A, []E] {
	return New(a, w, AppendSlice[E])
}

func (w Writer[A, W]) Value() A {
	return w.value
}

func (w Writer[A, W]) Log() W {
	return w.log
}

func (w Writer[A, W]) Unpack() (A, W) {
	return w.value, w.log
}

func (w Writer[A, W]) appendLog(entry W) W {
	if w.mappend == nil {
		panic("writer: no append operation, build the Writer with New or Run")
	}
	return w.mappend(w.log, entry)
}

// Map runs f on the value; f's log entry is appended to the current log.
func Map[A, B, W any](w Writer[A, W], f func(A) (B, W)) Writer[B, W] {
	b, entry := f(w.value)
	return Writer[B, W]{value: b, log: w.appendLog(entry), mappend: w.mappend}
}

func MapValue[A, B, W any](w Writer[A, W], f func(A) B) Writer[B, W] {
	return Writer[B, W]{value: f(w.value), log: w.log, mappend: w.mappend}
}

// FlatMap runs f on the value and appends the log of the returned Writer to
// the current one. The append of w is kept.
func FlatMap[A, B, W any](w Writer[A, W], f func(A) Writer[B, W]) Writer[B, W] {
	next := f(w.value)
	return Writer[B, W]{value: next.value, log: w.appendLog(next.log), mappend: w.mappend}
}

func Tell[A, W any](w Writer[A, W], entry W) Writer[A, W] {
	return Writer[A, W]{value: w.value, log: w.appendLog(entry), mappend: w.mappend}
}
