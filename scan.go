// Package scanfmt scans formatted text: the inverse of package fmt's
// printing. Given a format string and a sequence of typed targets it
// consumes characters from an input source, fills the targets, and
// reports exactly how much input was consumed and why scanning stopped.
//
// Inputs may be strings, byte slices, io.Readers, or a *Cursor returned
// from a previous scan's Result, which resumes where that scan left off.
// All entry points return a Result rather than raising: running out of
// input, malformed values and out-of-range numbers are reported as error
// kinds, and the returned cursor sits at the rollback point of the
// failing argument so a failed attempt never half-consumes input.
package scanfmt

import (
	"fmt"
	"io"
	"strconv"
)

// Scanner may be implemented by scan targets to extend the engine with
// new types: the driver calls ScanInput with the active cursor, locale
// and directive in place of a built-in value scanner. Implementations
// must leave the cursor rolled back to its checkpoint on failure.
type Scanner interface {
	ScanInput(st *State) error
}

// State is the scanning context handed to a custom Scanner.
type State struct {
	Cursor *Cursor
	Locale *Locale
	Dir    Directive
}

// Scan reads from input according to format, filling args in order.
// Format directives use the brace syntax: "{}" scans one argument with
// defaults, "{:x}" applies flags (see Directive). Literal text must match
// input exactly; whitespace in the format skips any run, possibly empty,
// of input whitespace.
func Scan(input any, format string, args ...any) Result {
	return vscan(wrap(input), newFormatCursor(format, false), C(), args, false)
}

// Scanf is Scan with scanf-style directive syntax: %d, %f, %s and
// friends.
func Scanf(input any, format string, args ...any) Result {
	return vscan(wrap(input), newFormatCursor(format, true), C(), args, false)
}

// ScanDefault is equivalent to Scan with a format of len(args)
// blank-separated "{}" placeholders, without parsing any format text. In
// this mode an unexpected separator character between values stops the
// scan cleanly rather than erroring; the Result's count and cursor report
// where it stopped.
func ScanDefault(input any, args ...any) Result {
	return vscan(wrap(input), newDefaultFormat(len(args)), C(), args, false)
}

// ScanLocalized is Scan with every numeric and boolean directive routed
// through loc: its whitespace and digit classification, decimal point,
// digit grouping and boolean spellings.
func ScanLocalized(loc *Locale, input any, format string, args ...any) Result {
	return vscan(wrap(input), newFormatCursor(format, false), loc, args, true)
}

// ScanValue scans a single value with default options, returning it
// directly instead of writing through a target.
func ScanValue[T any](input any) (T, Result) {
	var v T
	res := ScanDefault(input, &v)
	return v, res
}

func wrap(input any) *Cursor {
	switch v := input.(type) {
	case *Cursor:
		return v
	case string:
		return FromString(v)
	case []byte:
		return FromBytes(v)
	case io.Reader:
		return FromReader(v)
	}
	panic(fmt.Sprintf("scanfmt: unsupported input source type %T", input))
}

// vscan is the driving state machine: it walks the format cursor and the
// input cursor in lockstep, matching literals, skipping whitespace, and
// dispatching one value scanner per directive. It stops at the first
// error and reports the composite outcome.
func vscan(c *Cursor, fc *formatCursor, loc *Locale, args []any, forceLocalized bool) Result {
	if c.poison != nil {
		return result(c, 0, c.poison)
	}
	defaulted := fc.synth >= 0
	c.Checkpoint()

	count := 0
	for {
		it, err := fc.next()
		if err != nil {
			return result(c, count, err)
		}
		switch it.kind {
		case itemEOF:
			// trailing unfilled arguments are not an error
			return result(c, count, nil)

		case itemSpace:
			// format whitespace matches zero or more input whitespace
			skipSpace(c, loc)
			c.Checkpoint()

		case itemLiteral:
			if err := matchLiteral(c, it.lit); err != nil {
				return result(c, count, err)
			}
			c.Checkpoint()

		case itemDirective:
			if count >= len(args) {
				// unconsumed trailing directives are not an error either
				return result(c, count, nil)
			}
			d := it.dir
			if forceLocalized {
				d.Localized = true
			}
			if err := scanOne(c, loc, d, args[count]); err != nil {
				if defaulted && count > 0 && KindOf(err) == InvalidScannedValue {
					// default dialect: an unexpected separator stops the
					// scan, it does not fail it
					return result(c, count, nil)
				}
				return result(c, count, err)
			}
			count++
			c.Checkpoint()
		}
	}
}

// skipSpace consumes a run of input whitespace per loc. Running out of
// input while skipping is fine; undecodable bytes end the run.
func skipSpace(c *Cursor, loc *Locale) {
	for {
		r, size, err := c.PeekRune()
		if err != nil || !loc.IsSpace(r) {
			return
		}
		c.Advance(size)
	}
}

// matchLiteral requires the next input byte to equal the format literal.
func matchLiteral(c *Cursor, lit byte) error {
	b, err := c.PeekByte()
	if err != nil {
		return err
	}
	if b != lit {
		return errorf(InvalidScannedValue, "input %q does not match format literal %q", b, lit)
	}
	c.Advance(1)
	return nil
}

// scanOne dispatches one directive to the value scanner selected by the
// target's static type. Passing a non-pointer or unsupported target is a
// programming-contract violation and panics; everything the input does
// wrong comes back as an error.
func scanOne(c *Cursor, loc *Locale, d Directive, arg any) error {
	if s, ok := arg.(Scanner); ok {
		if d.Verb != 'c' {
			skipSpace(c, loc)
			c.Checkpoint()
		}
		return s.ScanInput(&State{Cursor: c, Locale: loc, Dir: d})
	}

	switch arg.(type) {
	case *int:
		return scanIntoInt(c, loc, d, arg, strconv.IntSize, true)
	case *int8:
		return scanIntoInt(c, loc, d, arg, 8, true)
	case *int16:
		return scanIntoInt(c, loc, d, arg, 16, true)
	case *int32:
		if d.Verb == 'c' {
			return scanIntoRune(c, arg.(*int32))
		}
		return scanIntoInt(c, loc, d, arg, 32, true)
	case *int64:
		return scanIntoInt(c, loc, d, arg, 64, true)
	case *uint:
		return scanIntoInt(c, loc, d, arg, strconv.IntSize, false)
	case *uint8:
		return scanIntoInt(c, loc, d, arg, 8, false)
	case *uint16:
		return scanIntoInt(c, loc, d, arg, 16, false)
	case *uint32:
		return scanIntoInt(c, loc, d, arg, 32, false)
	case *uint64:
		return scanIntoInt(c, loc, d, arg, 64, false)
	case *uintptr:
		return scanIntoInt(c, loc, d, arg, strconv.IntSize, false)
	case *float32:
		return scanIntoFloat(c, loc, d, arg, 32)
	case *float64:
		return scanIntoFloat(c, loc, d, arg, 64)
	case *bool:
		skipSpace(c, loc)
		c.Checkpoint()
		v, err := scanBoolValue(c, loc, d)
		if err != nil {
			return rollbackFor(c, err)
		}
		*arg.(*bool) = v
		return nil
	case *string:
		skipSpace(c, loc)
		c.Checkpoint()
		word, _, err := scanWord(c, loc)
		if err != nil {
			return rollbackFor(c, err)
		}
		*arg.(*string) = string(word)
		return nil
	case *[]byte:
		skipSpace(c, loc)
		c.Checkpoint()
		word, _, err := scanWord(c, loc)
		if err != nil {
			return rollbackFor(c, err)
		}
		*arg.(*[]byte) = word
		return nil
	}

	panic(fmt.Sprintf("scanfmt: unsupported scan target type %T", arg))
}

func scanIntoInt(c *Cursor, loc *Locale, d Directive, arg any, bits int, signed bool) error {
	skipSpace(c, loc)
	c.Checkpoint()
	u, neg, err := scanIntValue(c, loc, d, bits, signed)
	if err != nil {
		return err
	}
	storeInt(arg, u, neg)
	return nil
}

func scanIntoFloat(c *Cursor, loc *Locale, d Directive, arg any, bits int) error {
	skipSpace(c, loc)
	c.Checkpoint()
	f, err := scanFloatValue(c, loc, d, bits)
	if err != nil {
		return err
	}
	storeFloat(arg, f)
	return nil
}

func scanIntoRune(c *Cursor, p *int32) error {
	r, err := scanRuneValue(c)
	if err != nil {
		return err
	}
	*p = r
	return nil
}

// rollbackFor restores the cursor after a failed attempt, preferring the
// rollback error when the source cannot step back that far.
func rollbackFor(c *Cursor, err error) error {
	if rerr := c.Rollback(); rerr != nil {
		return rerr
	}
	return err
}
