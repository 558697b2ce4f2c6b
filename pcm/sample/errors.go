package sample

import "errors"

// ErrOutOfRange is returned by the checked narrow-width constructors when a
// value does not fit the format's logical bit width.
var ErrOutOfRange = errors.New("sample: value out of range")
