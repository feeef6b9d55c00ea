package double

import "errors"

var (
	// The value passed to Any is not a function.
	ErrNotFunc = errors.New("not a function")

	// A result of the function passed to Any cannot be multiplied by two.
	ErrNotNumeric = errors.New("result is not numeric")
)
