package funcs

// A call with its argument already bound.
type Func[ARG, RET any] interface {
	Execute() RET
}

// Function binds Arg to Callable.
type Function[ARG, RET any] struct {
	Callable func(ARG) RET
	Arg      ARG
}

// New binds arg to f.
func New[ARG, RET any](f func(ARG) RET, arg ARG) Func[ARG, RET] {
	return &Function[ARG, RET]{
		Callable: f,
		Arg:      arg,
	}
}

// Execute calls the bound function with its argument.
func (fn *Function[ARG, RET]) Execute() RET {
	return fn.Callable(fn.Arg)
}

// Bind binds an argument to a wrapped single-argument function.
//
// The returned Func calls the wrapper, not the original function.
func Bind[ARG, RET any](w *Wrapped[func(ARG) RET], arg ARG) Func[ARG, RET] {
	return New(w.Func(), arg)
}
