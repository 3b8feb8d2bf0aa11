package scanfmt

import (
	"errors"
	"fmt"
)

// Kind classifies why a scan stopped. The taxonomy is flat: the three
// Recoverable()==false kinds mean the cursor itself can no longer be
// trusted, every other kind is a local failure of a single argument and
// the cursor remains valid at its last checkpoint.
type Kind int

const (
	// NoError is the zero Kind; it never appears in a returned Error.
	NoError Kind = iota

	// EndOfRange means the input ran out. It is an expected, first-class
	// outcome, not a fault: hitting it mid-list or after the final
	// argument is normal termination.
	EndOfRange

	// InvalidScannedValue means the next input characters do not form a
	// value of the requested type, or a format literal failed to match.
	InvalidScannedValue

	// ValueOutOfRange means the value was syntactically fine but does not
	// fit the destination type.
	ValueOutOfRange

	// InvalidEncoding means the input bytes do not decode to a valid code
	// point.
	InvalidEncoding

	// InvalidOperation means the request itself was malformed: a bad
	// format string, an unsupported directive for the argument type, or
	// an operation the source cannot provide (e.g. a borrowed view of a
	// streaming source).
	InvalidOperation

	// SourceError means the input source failed underneath the cursor, or
	// a rollback ran past the source's look-back window. The cursor is
	// poisoned and must not be resumed.
	SourceError

	// InternalError means the engine violated one of its own invariants.
	// The cursor is poisoned.
	InternalError

	// Unsupported means a capability the call needs is unavailable, such
	// as localized numeric parsing through a zero-value Locale.
	Unsupported
)

var kindStrings = [...]string{
	NoError:             "no error",
	EndOfRange:          "end of range",
	InvalidScannedValue: "invalid scanned value",
	ValueOutOfRange:     "value out of range",
	InvalidEncoding:     "invalid encoding",
	InvalidOperation:    "invalid operation",
	SourceError:         "unrecoverable source error",
	InternalError:       "unrecoverable internal error",
	Unsupported:         "operation not supported",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStrings) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindStrings[k]
}

// Recoverable reports whether a scan may be resumed from the returned
// cursor after an error of this kind.
func (k Kind) Recoverable() bool {
	switch k {
	case SourceError, InternalError, Unsupported:
		return false
	}
	return true
}

// Error is the concrete error type returned by every scanning operation.
// Scanning never panics on bad input and never returns any other error
// type from its own logic; errors from an underlying io.Reader are wrapped
// with SourceError kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return e.Kind.String()
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same Kind, so that
// errors.Is(err, scanfmt.ErrEndOfRange) works no matter the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// Kind sentinels for errors.Is checks.
var (
	ErrEndOfRange          = &Error{Kind: EndOfRange}
	ErrInvalidScannedValue = &Error{Kind: InvalidScannedValue}
	ErrValueOutOfRange     = &Error{Kind: ValueOutOfRange}
	ErrInvalidEncoding     = &Error{Kind: InvalidEncoding}
	ErrInvalidOperation    = &Error{Kind: InvalidOperation}
	ErrSource              = &Error{Kind: SourceError}
	ErrInternal            = &Error{Kind: InternalError}
	ErrUnsupported         = &Error{Kind: Unsupported}
)

// errEndOfRange is the shared allocation-free end-of-input error.
var errEndOfRange = ErrEndOfRange

// KindOf extracts the Kind from err, or NoError when err is nil or not a
// scan error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

func errorf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

func wrapErr(k Kind, msg string, err error) *Error {
	return &Error{Kind: k, Msg: msg, Err: err}
}
