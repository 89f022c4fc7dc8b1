package utils

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// --- Sentinel Errors for Categorization ---
var (
	ErrConfigValidation = errors.New("configuration validation error")
	ErrFilesystem       = errors.New("filesystem error") // Wraps os errors
	ErrTocOutdated      = errors.New("table of contents is out of date")
)

// WrapErrorf wraps err with formatted context, preserving the original for
// errors.Is / errors.As checks. Returns nil when err is nil.
func WrapErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// IsPipeError reports whether err was caused by the consumer of our output
// hanging up. This is a normal event in a pipeline and callers should quit
// gracefully rather than report a failure.
func IsPipeError(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
