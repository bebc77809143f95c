//go:build !unix

package backend

import "os"

var watchedSignals = []os.Signal{os.Interrupt}

func isResize(os.Signal) bool {
	return false
}

// ExitCode returns the conventional shell exit status for a process stopped
// by sig.
func ExitCode(sig os.Signal) int {
	if sig == os.Interrupt {
		return 130
	}
	return 1
}
