// Package resource owns the lifecycle of the in-memory audio buffer backing
// the current track. At most one handle is active at a time; a replacement is
// always created before its predecessor is released.
package resource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when a file's extension is not in the
// supported set. The check happens before any filesystem access.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// ErrReleased is returned when reading from a handle after release.
var ErrReleased = errors.New("resource handle released")

// supportedExtensions is the set of file extensions accepted for playback.
var supportedExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".wav":  true,
	".ogg":  true,
	".opus": true,
	".aac":  true,
	".wma":  true,
}

// IsSupportedFile reports whether the path has a supported audio extension.
// The comparison is case-insensitive.
func IsSupportedFile(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Extensions returns the supported extensions (with leading dot).
func Extensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	return exts
}

// Handle is a transient playable buffer for one track. It implements
// io.ReadSeekCloser so audio decoders can consume it directly. Close releases
// the buffer and is idempotent; reads after release fail with ErrReleased.
type Handle struct {
	path string
	ext  string
	r    *bytes.Reader
	size int
}

func (h *Handle) Read(p []byte) (int, error) {
	if h.r == nil {
		return 0, ErrReleased
	}
	return h.r.Read(p)
}

func (h *Handle) Seek(offset int64, whence int) (int64, error) {
	if h.r == nil {
		return 0, ErrReleased
	}
	return h.r.Seek(offset, whence)
}

// Close releases the underlying buffer. Safe to call more than once.
func (h *Handle) Close() error {
	h.r = nil
	return nil
}

// Released reports whether the handle's buffer has been dropped.
func (h *Handle) Released() bool { return h.r == nil }

// Path returns the file path the handle was materialized from.
func (h *Handle) Path() string { return h.path }

// Ext returns the lowercased file extension, including the leading dot.
func (h *Handle) Ext() string { return h.ext }

// Size returns the buffer size in bytes.
func (h *Handle) Size() int { return h.size }

// Manager materializes handles and tracks the single active one.
type Manager struct {
	active *Handle
}

// NewManager creates an empty manager with no active handle.
func NewManager() *Manager {
	return &Manager{}
}

// Materialize validates the path's extension and reads the file into a new
// handle. An unsupported extension short-circuits without touching the
// filesystem. The active handle is never modified here: callers install the
// result with Adopt once they know the load is still wanted.
func (m *Manager) Materialize(path string) (*Handle, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read audio file: %w", err)
	}

	return &Handle{
		path: path,
		ext:  ext,
		r:    bytes.NewReader(data),
		size: len(data),
	}, nil
}

// Adopt installs h as the active handle. The previous handle, if any, is
// released strictly after the new one is in place.
func (m *Manager) Adopt(h *Handle) {
	prev := m.active
	m.active = h
	if prev != nil && prev != h {
		prev.Close()
	}
}

// Active returns the current handle, or nil if none.
func (m *Manager) Active() *Handle {
	return m.active
}

// Release drops the active handle. Called at shutdown; handles are never left
// to the garbage collector alone.
func (m *Manager) Release() {
	if m.active != nil {
		m.active.Close()
		m.active = nil
	}
}

// Compile-time check that Handle satisfies the decoder input contract.
var _ io.ReadSeekCloser = (*Handle)(nil)
