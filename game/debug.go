package game

import (
	"fmt"
	"os"
)

// stderrLog writes debug lines to stderr.
func stderrLog(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}
