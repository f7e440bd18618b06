package bc1

import "errors"

// ErrorCode identifies the kind of caller-facing failure in bc1.Error.
//
// The encoder itself cannot fail in an exceptional sense — every texel
// input is representable, and numerical edge cases (degenerate PCA,
// singular least-squares systems) are resolved algorithmically rather
// than surfaced as errors. ErrorCode exists for the thin set of API
// misuse cases: bad decoder enum, short buffers.
type ErrorCode uint32

const (
	// ErrNone is the zero value; no error occurred.
	ErrNone ErrorCode = 0

	// ErrBadDecoder indicates an unrecognized Decoder value.
	ErrBadDecoder ErrorCode = 1

	// ErrShortBuffer indicates a caller-supplied slice was smaller than
	// the fixed size the operation requires.
	ErrShortBuffer ErrorCode = 2

	// ErrBadBlock indicates a malformed input was passed to a
	// decode/evaluate entry point, such as a raw RGBA buffer that is not
	// exactly 64 bytes.
	ErrBadBlock ErrorCode = 3
)

func (c ErrorCode) String() string {
	switch c {
	case ErrNone:
		return "ErrNone"
	case ErrBadDecoder:
		return "ErrBadDecoder"
	case ErrShortBuffer:
		return "ErrShortBuffer"
	case ErrBadBlock:
		return "ErrBadBlock"
	default:
		return "ErrUnknown"
	}
}

// Error is a typed error carrying a bc1 ErrorCode.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return "bc1: " + e.Msg
	}
	return "bc1: " + e.Code.String()
}

// ErrorCodeOf returns the bc1-equivalent error code for err, or ErrNone
// for nil. Non-*Error errors map to ErrBadBlock as a conservative
// fallback.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return ErrNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrBadBlock
}

func newError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}
