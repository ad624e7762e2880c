package wrap

import "errors"

var (
	// ErrIndexOutOfRange is returned by List.Get and List.Set for an index
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrAbsent is returned by positional access on a List that holds no
	// sequence at all.
	ErrAbsent = errors.New("list is absent")

	// ErrInvalidDate is returned by ParseDate for input that is neither an
	// epoch-millisecond integer nor an RFC 3339 timestamp.
	ErrInvalidDate = errors.New("invalid date")
)
