//go:build !windows

// Package stderr captures output that C audio libraries (ALSA, the mp3
// decoder) write directly to file descriptor 2, bypassing os.Stderr. Left
// uncaptured, those lines corrupt the terminal layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
)

var (
	origFd    int
	pipeRead  *os.File
	pipeWrite *os.File
	active    bool
)

// Capture redirects fd 2 into a pipe and logs each captured line at debug
// level. Must run before speaker initialization. The program keeps working
// without capture if setup fails.
func Capture(logger *log.Logger) error {
	if active {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origFd, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origFd)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	active = true

	go func() {
		scanner := bufio.NewScanner(pipeRead)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				logger.Debug("audio backend", "stderr", line)
			}
		}
	}()

	return nil
}

// Restore puts fd 2 back. Call on exit so late errors stay visible.
func Restore() {
	if !active {
		return
	}
	_ = syscall.Dup2(origFd, int(os.Stderr.Fd()))
	_ = syscall.Close(origFd)
	pipeWrite.Close()
	pipeRead.Close()
	active = false
}
