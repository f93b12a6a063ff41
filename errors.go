package macho

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why a Mach-O or fat container could not be decoded.
type Kind int

const (
	// BadMagic means the first four bytes matched none of the recognized
	// thin or fat magic numbers.
	BadMagic Kind = iota
	// Truncated means a fixed-size record (header, load command, symbol
	// table entry) extended past the end of the byte source.
	Truncated
	// MalformedLoadCommand means a load command's cmdsize was too small
	// for its own fixed header, or the command stream ran past
	// sizeofcmds/ncmds.
	MalformedLoadCommand
	// MalformedString means a NUL-terminated string field had no
	// terminator within its bound.
	MalformedString
	// UnsupportedFormat means the input is a well-formed container this
	// library intentionally does not decode (32-bit Mach-O).
	UnsupportedFormat
	// IoOutOfRange means a read was attempted outside the bounds of the
	// byte source.
	IoOutOfRange
)

func (k Kind) String() string {
	switch k {
	case BadMagic:
		return "bad magic"
	case Truncated:
		return "truncated"
	case MalformedLoadCommand:
		return "malformed load command"
	case MalformedString:
		return "malformed string"
	case UnsupportedFormat:
		return "unsupported format"
	case IoOutOfRange:
		return "out of range"
	default:
		return "unknown error"
	}
}

// Error is returned by every decode operation in this package. Offset is
// the byte offset into the container at which the failure was detected,
// or a negative value when no single offset applies, in which case
// Error() leaves the offset out of the message.
type Error struct {
	Kind   Kind
	Offset int64
	Msg    string
	cause  error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, &Error{Kind: BadMagic}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, offset int64, msg string) error {
	return errors.WithStack(&Error{Kind: kind, Offset: offset, Msg: msg})
}

func wrapError(kind Kind, offset int64, msg string, cause error) error {
	return errors.WithStack(&Error{Kind: kind, Offset: offset, Msg: msg, cause: cause})
}
