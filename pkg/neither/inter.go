package neither

// Present is implemented by wrappers that can tell whether they carry a
// usable payload (Maybe when present, Either when Right).
type Present interface {
	IsPresent() bool
}

// Unpacker exposes the payload of a Present value. Unpack is only
// meaningful when IsPresent returns true.
type Unpacker[T any] interface {
	Present
	Unpack() T
}
