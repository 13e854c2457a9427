package decimaldate

import "errors"

var (
	// ErrInvalidValue is returned for malformed literals, values that do not
	// name a real calendar day, missing range bounds and zero steps.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidType is returned when New is given an unsupported source type.
	ErrInvalidType = errors.New("invalid type")

	// ErrIndexOutOfRange is returned by Range.At for indices outside the range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotImplemented is returned for range steps other than 1.
	ErrNotImplemented = errors.New("not implemented")

	// ErrOverflow is returned when date arithmetic leaves years 1 through 9999.
	ErrOverflow = errors.New("date overflow")
)
