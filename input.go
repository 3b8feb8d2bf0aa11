package scanfmt

import (
	"bufio"
	"os"
	"sync"
)

// The process-wide stdin cursor is shared by Input and Prompt so that
// consecutive calls resume where the previous one stopped. Construction
// is guarded; the cursor itself is still single-scan-at-a-time.
var (
	stdinOnce   sync.Once
	stdinCursor *Cursor
)

func stdin() *Cursor {
	stdinOnce.Do(func() {
		stdinCursor = FromReader(bufio.NewReader(os.Stdin))
	})
	return stdinCursor
}

// Input is Scan reading from standard input.
func Input(format string, args ...any) Result {
	return Scan(stdin(), format, args...)
}

// Prompt writes msg to standard output, then scans standard input.
func Prompt(msg, format string, args ...any) Result {
	os.Stdout.WriteString(msg)
	return Input(format, args...)
}
