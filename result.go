package scanfmt

import "fmt"

// Result is the composite outcome of a scanning operation: the first
// error encountered (nil on success), how many arguments were filled, and
// the cursor over the remaining input. The cursor is always populated,
// even on error, so callers can resume scanning or diagnose where the
// engine stopped — unless the error kind is unrecoverable, in which case
// the cursor is poisoned and refuses further use.
type Result struct {
	rest  *Cursor
	count int
	err   error
}

// OK reports whether the whole operation succeeded.
func (r Result) OK() bool { return r.err == nil }

// Err returns the first error encountered, nil on success. It is always
// a *Error; use errors.Is against the kind sentinels or KindOf to branch
// on the kind.
func (r Result) Err() error { return r.err }

// Kind returns the error kind, NoError on success.
func (r Result) Kind() Kind { return KindOf(r.err) }

// Count returns the number of arguments successfully filled.
func (r Result) Count() int { return r.count }

// Rest returns the cursor over the unconsumed input, positioned at the
// rollback point of the failing argument when an error occurred. Pass it
// back to any scan entry point to resume.
func (r Result) Rest() *Cursor { return r.rest }

// Remaining returns the unconsumed input when the source is contiguous in
// memory; ok is false for reader-backed sources.
func (r Result) Remaining() ([]byte, bool) {
	if r.rest == nil {
		return nil, false
	}
	return r.rest.Window()
}

// Format renders the result for debugging.
func (r Result) Format(f fmt.State, verb rune) {
	if r.err != nil {
		fmt.Fprintf(f, "<scanned %d args, error: %v, rest: %.16v>", r.count, r.err, r.rest)
		return
	}
	fmt.Fprintf(f, "<scanned %d args, rest: %.16v>", r.count, r.rest)
}

func result(c *Cursor, count int, err error) Result {
	return Result{rest: c, count: count, err: err}
}
