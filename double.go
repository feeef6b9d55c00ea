// Package double wraps functions so that their numeric results are doubled.
//
// The wrapped function keeps the calling convention of the original one,
// and reports the original function's identity through funcs.Info.
package double

import (
	"io"
	"log"
	"os"

	"github.com/Nigel2392/double/funcs"
	"golang.org/x/exp/constraints"
)

// Logger receives the notice written each time a function is wrapped.
//
// Feel free to edit this variable, set it to NopLogger or nil to silence the notice.
var Logger = log.New(os.Stderr, "", log.LstdFlags)

// A logger which discards everything.
var NopLogger = log.New(io.Discard, "", 0)

// Any type which supports multiplication by two.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Option changes the identity reported by a wrapper.
type Option func(*funcs.Info)

// WithName overrides the name taken from the runtime symbol table.
func WithName(name string) Option {
	return func(i *funcs.Info) {
		i.Name = name
	}
}

// WithDoc sets the documentation of the wrapped function.
func WithDoc(doc string) Option {
	return func(i *funcs.Info) {
		i.Doc = doc
	}
}

// Double wraps f, returning a function which returns twice f's result.
//
// Multiple arguments can be passed as a single struct.
func Double[ARG any, RET Number](f func(ARG) RET, opts ...Option) *funcs.Wrapped[func(ARG) RET] {
	var info = describe(f, opts)
	return funcs.Wrap(func(arg ARG) RET {
		return 2 * f(arg)
	}, f, info)
}

// Variadic wraps a variadic f, returning a function which returns twice f's result.
func Variadic[ARG any, RET Number](f func(...ARG) RET, opts ...Option) *funcs.Wrapped[func(...ARG) RET] {
	var info = describe(f, opts)
	return funcs.Wrap(func(args ...ARG) RET {
		return 2 * f(args...)
	}, f, info)
}

// WithError wraps a fallible f.
//
// If f returns an error, its result and error are returned as-is.
func WithError[ARG any, RET Number](f func(ARG) (RET, error), opts ...Option) *funcs.Wrapped[func(ARG) (RET, error)] {
	var info = describe(f, opts)
	return funcs.Wrap(func(arg ARG) (RET, error) {
		var ret, err = f(arg)
		if err != nil {
			return ret, err
		}
		return 2 * ret, nil
	}, f, info)
}

// Bound doubles the result of a bound call.
//
// When f was built with funcs.New, the notice names the bound function.
func Bound[ARG any, RET Number](f funcs.Func[ARG, RET], opts ...Option) funcs.Func[ARG, RET] {
	var target any = f
	if fn, ok := f.(*funcs.Function[ARG, RET]); ok {
		target = fn.Callable
	}
	describe(target, opts)
	return boundFunc[ARG, RET]{f}
}

type boundFunc[ARG any, RET Number] struct {
	funcs.Func[ARG, RET]
}

func (b boundFunc[ARG, RET]) Execute() RET {
	return 2 * b.Func.Execute()
}

func describe(f any, opts []Option) funcs.Info {
	var info = funcs.InfoOf(f)
	for _, opt := range opts {
		opt(&info)
	}
	var logger = Logger
	if logger == nil {
		logger = NopLogger
	}
	logger.Printf("running the function 'double' on %q", info.Name)
	return info
}
