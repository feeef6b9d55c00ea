package double

import (
	"fmt"
	"reflect"

	"github.com/Nigel2392/double/funcs"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Any wraps a function of any signature, doubling every result.
//
// There must be at least one result, and all results must be numeric,
// except for an optional trailing error.
// When that error is non-nil the results are returned untouched.
//
// The returned function has exactly the type F.
func Any[F any](fn F, opts ...Option) (*funcs.Wrapped[F], error) {
	var v = reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("double: %T: %w", fn, ErrNotFunc)
	}

	var typ = v.Type()
	var numOut = typ.NumOut()
	var hasErr = numOut > 0 && typ.Out(numOut-1) == errorType
	if hasErr {
		numOut--
	}
	if numOut == 0 {
		return nil, fmt.Errorf("double: %s has no result: %w", typ, ErrNotNumeric)
	}

	for i := 0; i < numOut; i++ {
		if !isNumeric(typ.Out(i).Kind()) {
			return nil, fmt.Errorf("double: result %d of %s is %s: %w", i, typ, typ.Out(i), ErrNotNumeric)
		}
	}

	var info = describe(fn, opts)
	var wrapper = reflect.MakeFunc(typ, func(args []reflect.Value) []reflect.Value {
		var out = callValue(v, typ, args)
		if hasErr && !out[numOut].IsNil() {
			return out
		}
		for i := 0; i < numOut; i++ {
			out[i] = doubleValue(out[i])
		}
		return out
	})

	return funcs.Wrap(wrapper.Interface().(F), fn, info), nil
}

func callValue(v reflect.Value, typ reflect.Type, args []reflect.Value) []reflect.Value {
	if typ.IsVariadic() {
		return v.CallSlice(args)
	}
	return v.Call(args)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// doubleValue returns 2*v as a new value of v's type.
func doubleValue(v reflect.Value) reflect.Value {
	var ret = reflect.New(v.Type()).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ret.SetInt(2 * v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		ret.SetUint(2 * v.Uint())
	case reflect.Float32, reflect.Float64:
		ret.SetFloat(2 * v.Float())
	case reflect.Complex64, reflect.Complex128:
		ret.SetComplex(2 * v.Complex())
	default:
		panic(fmt.Sprintf("double: cannot double %s", v.Type()))
	}
	return ret
}
