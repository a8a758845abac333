// Package ingest turns batches of dropped file paths into playlist tracks.
// Unsupported files are filtered out before any metadata work; metadata for
// the surviving files is read concurrently and reassembled in input order so
// the playlist receives a single, ordered batch.
package ingest

import (
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/simonbasler/minplayer/internal/playlist"
	"github.com/simonbasler/minplayer/internal/resource"
	"github.com/simonbasler/minplayer/internal/tags"
)

// maxConcurrentReads bounds parallel metadata extraction for large drops.
const maxConcurrentReads = 8

// CollectTracks filters paths to the supported extension set, preserving
// relative order, and reads metadata for each surviving file. An empty result
// means the whole batch was filtered out; callers ignore it silently.
func CollectTracks(paths []string) []playlist.Track {
	supported := make([]string, 0, len(paths))
	for _, p := range paths {
		if resource.IsSupportedFile(p) {
			supported = append(supported, p)
		}
	}
	if len(supported) == 0 {
		return nil
	}

	tracks := make([]playlist.Track, len(supported))
	sem := make(chan struct{}, maxConcurrentReads)
	var wg sync.WaitGroup

	for i, path := range supported {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			tracks[i] = trackFromPath(path)
		}(i, path)
	}
	wg.Wait()

	var total uint64
	for _, path := range supported {
		if info, err := os.Stat(path); err == nil {
			total += uint64(info.Size())
		}
	}
	log.Debug("batch ingested",
		"tracks", len(tracks),
		"skipped", len(paths)-len(supported),
		"size", humanize.IBytes(total))

	return tracks
}

// trackFromPath builds a track from a file, falling back to filename-derived
// metadata when the tags cannot be read.
func trackFromPath(path string) playlist.Track {
	md, err := tags.Read(path)
	if err != nil {
		md = tags.Fallback(path)
	}
	return playlist.Track{
		Path:     path,
		Title:    md.Title,
		Artist:   md.Artist,
		Album:    md.Album,
		Cover:    md.Cover,
		Duration: md.Duration,
	}
}

// ParsePaths extracts file paths from text pasted into the terminal, the way
// dropped files arrive in a TUI. Paths may be newline- or space-separated,
// quoted, or file:// URIs with percent-encoding.
func ParsePaths(text string) []string {
	var paths []string
	for _, line := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	}) {
		for _, field := range splitQuoted(line) {
			if p := cleanPath(field); p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// cleanPath strips quoting and decodes file:// URIs.
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	if strings.HasPrefix(s, "file://") {
		s = strings.TrimPrefix(s, "file://")
		if decoded, err := url.PathUnescape(s); err == nil {
			s = decoded
		}
	}
	return s
}

// splitQuoted splits a line on spaces while keeping quoted segments intact,
// so paths with spaces survive when the terminal quotes them.
func splitQuoted(line string) []string {
	var fields []string
	var cur strings.Builder
	var quote rune

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
		case r == ' ':
			if cur.Len() > 0 {
				fields = append(fields, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields
}
