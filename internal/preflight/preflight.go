// Package preflight verifies filesystem preconditions before a run mutates
// anything.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"shelve/internal/faults"
)

// CheckDirectory reports nil when path exists, is a directory, and grants
// read, write, and search access. Missing or non-directory paths carry
// faults.ErrNotADirectory; permission problems carry faults.ErrProvision
// because no destination folder could be created anyway.
func CheckDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return faults.Wrap(faults.ErrNotADirectory, "validate target", fmt.Sprintf("%s not found", path), err)
	}
	if !info.IsDir() {
		return faults.Wrap(faults.ErrNotADirectory, "validate target", fmt.Sprintf("%s is not a directory", path), nil)
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return faults.Wrap(faults.ErrProvision, "validate target", fmt.Sprintf("insufficient permissions on %s", path), err)
	}
	return nil
}
