package funcs_test

import (
	"strings"
	"testing"

	"github.com/Nigel2392/double/funcs"
	"github.com/stretchr/testify/assert"
)

func defaultFunc(i int) int {
	return i
}

func triple(i int) int {
	return 3 * i
}

func TestExecute(t *testing.T) {
	var f = funcs.New(defaultFunc, 100)
	assert.Equal(t, 100, f.Execute())
	assert.Equal(t, 100, f.Execute())

	var fn = &funcs.Function[int, int]{Callable: triple, Arg: 3}
	assert.Equal(t, 9, fn.Execute())
}

func TestBind(t *testing.T) {
	var w = funcs.Wrap(func(i int) int { return 2 * triple(i) }, triple, funcs.InfoOf(triple))

	var funcsSlice = []funcs.Func[int, int]{
		funcs.New(triple, 2),
		funcs.Bind(w, 2),
	}

	var sum int
	for _, f := range funcsSlice {
		sum += f.Execute()
	}
	assert.Equal(t, 18, sum)
}

func TestNameOf(t *testing.T) {
	var tests = []struct {
		name   string
		f      any
		suffix string
	}{
		{"top level", defaultFunc, ".defaultFunc"},
		{"closure", func() {}, ".func1"},
		{"nil func", (func())(nil), ""},
		{"not a func", "defaultFunc", ""},
		{"untyped nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var name = funcs.NameOf(tt.f)
			if tt.suffix == "" {
				assert.Empty(t, name)
				return
			}
			assert.True(t, strings.HasSuffix(name, tt.suffix), "%q does not end in %q", name, tt.suffix)
		})
	}
}

func TestWrapped(t *testing.T) {
	var info = funcs.Info{Name: "triple", Doc: "triple multiplies by three."}
	var w = funcs.Wrap(defaultFunc, triple, info)

	assert.Equal(t, info, w.Info)
	assert.Equal(t, "triple", w.String())
	assert.Equal(t, 2, w.Func()(2))
	assert.Equal(t, 6, w.Unwrap()(2))
	assert.Equal(t, funcs.Info{Name: funcs.NameOf(triple)}, funcs.InfoOf(triple))
}
