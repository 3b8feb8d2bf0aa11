package scanfmt

// scanFloatValue consumes one floating point number from the cursor,
// mirroring scanIntValue's two access paths over parseFloatCore.
func scanFloatValue(c *Cursor, loc *Locale, d Directive, bits int) (float64, error) {
	if w, ok := c.Window(); ok {
		f, n, err := parseFloatCore(w, bits, loc, d.Localized)
		if err == nil {
			c.Advance(n)
			return f, nil
		}
		if d.KeepPrefix && KindOf(err) == ValueOutOfRange {
			c.Advance(n)
		}
		return 0, err
	}

	run, err := gatherNumberRun(c, loc, d, true)
	if err != nil {
		return 0, err
	}
	f, n, err := parseFloatCore(run, bits, loc, d.Localized)
	if rerr := c.Rollback(); rerr != nil {
		return 0, rerr
	}
	if err == nil || (d.KeepPrefix && KindOf(err) == ValueOutOfRange) {
		c.Advance(n)
	}
	if err != nil {
		return 0, err
	}
	return f, nil
}

func storeFloat(arg any, f float64) {
	switch p := arg.(type) {
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	}
}
