//go:build unix

package backend

import (
	"os"
	"syscall"
)

var watchedSignals = []os.Signal{
	syscall.SIGWINCH,
	syscall.SIGTERM,
	syscall.SIGHUP,
	os.Interrupt,
}

func isResize(sig os.Signal) bool {
	return sig == syscall.SIGWINCH
}

// ExitCode returns the conventional shell exit status for a process stopped
// by sig.
func ExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 1
}
