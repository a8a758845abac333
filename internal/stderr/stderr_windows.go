//go:build windows

// Windows audio backends do not spill onto fd 2; capture is a no-op there.
package stderr

import "github.com/charmbracelet/log"

// Capture is a no-op on Windows.
func Capture(_ *log.Logger) error { return nil }

// Restore is a no-op on Windows.
func Restore() {}
