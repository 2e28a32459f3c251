// Package faults defines the error taxonomy shared by the organizer and the
// CLI shell.
//
// Fatal conditions (bad target directory, folder provisioning, lock
// contention) carry sentinel markers so callers can classify them with
// errors.Is; per-file move failures use ErrMove and are never fatal.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotADirectory = errors.New("not a directory")
	ErrProvision     = errors.New("folder provisioning error")
	ErrMove          = errors.New("file move error")
	ErrLocked        = errors.New("directory locked")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrMove
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether the error should abort the whole run rather than a
// single file's move.
func Fatal(err error) bool {
	return errors.Is(err, ErrNotADirectory) ||
		errors.Is(err, ErrProvision) ||
		errors.Is(err, ErrLocked)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "organizer failure"
	}
	return strings.Join(parts, ": ")
}
