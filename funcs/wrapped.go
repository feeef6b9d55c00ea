package funcs

// A function of type F which stands in for another function of the same type.
//
// It carries the Info of the function it wraps,
// so tooling sees the original identity instead of the wrapper's.
type Wrapped[F any] struct {
	Info
	fn   F
	orig F
}

// Wrap returns a Wrapped holding fn in place of orig, reporting info as its identity.
func Wrap[F any](fn, orig F, info Info) *Wrapped[F] {
	return &Wrapped[F]{
		Info: info,
		fn:   fn,
		orig: orig,
	}
}

// The callable itself.
func (w *Wrapped[F]) Func() F {
	return w.fn
}

// Unwrap returns the original function.
func (w *Wrapped[F]) Unwrap() F {
	return w.orig
}

// String returns the name of the wrapped function.
func (w *Wrapped[F]) String() string {
	return w.Name
}
