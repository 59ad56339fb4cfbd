package cli

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/troller/pkg/style"
)

// EnvDebug enables debug logging when set to "1".
const EnvDebug = "DEBUG"

// DebugFromEnv reports whether EnvDebug requests debug logging.
func DebugFromEnv() bool {
	return os.Getenv(EnvDebug) == "1"
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewStyler picks colors for terminals and plain text otherwise.
func NewStyler(interactive bool) style.Styler {
	if interactive {
		return style.Detect()
	}
	return style.Plaintext()
}
