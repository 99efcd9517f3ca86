// Released under an MIT license. See LICENSE.

//go:build unix

package history

import (
	"os"

	"golang.org/x/sys/unix"
)

const (
	exclusive = unix.LOCK_EX
	shared    = unix.LOCK_SH
)

// lock takes an advisory lock on f. It is released when f is closed.
func lock(f *os.File, how int) error {
	return unix.Flock(int(f.Fd()), how)
}
