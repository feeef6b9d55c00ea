package funcs

import (
	"reflect"
	"runtime"
)

// Identity metadata of a function, used by introspection tooling.
type Info struct {
	// The fully qualified symbol name, e.g. "github.com/me/pkg.Add".
	Name string

	// Documentation for the function.
	//
	// Go does not keep doc comments at runtime,
	// so this is empty unless it was provided explicitly.
	Doc string
}

// NameOf returns the runtime symbol name of f.
//
// An empty string is returned if f is not a non-nil function.
// Closures get compiler generated names such as "pkg.Outer.func1".
func NameOf(f any) string {
	var v = reflect.ValueOf(f)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	var rf = runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	return rf.Name()
}

// InfoOf returns the Info for f, with an empty Doc.
func InfoOf(f any) Info {
	return Info{Name: NameOf(f)}
}
