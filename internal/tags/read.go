// Package tags reads track metadata from audio files. Failures are non-fatal
// by design: callers fall back to filename-derived metadata via Fallback.
package tags

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// UnknownArtist is the artist shown when no tag provides one.
const UnknownArtist = "Unknown Artist"

// Metadata holds the tag fields the player displays.
type Metadata struct {
	Title    string
	Artist   string
	Album    string
	Cover    string // data URI, or empty
	Duration time.Duration
}

// Read extracts metadata from the file at path. Empty tag fields are filled
// with filename-derived defaults so the result is always displayable.
func Read(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	md := &Metadata{
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
	}
	if md.Title == "" {
		md.Title = TitleFromPath(path)
	}
	if md.Artist == "" {
		md.Artist = UnknownArtist
	}
	// Embedded art wins; otherwise fall back to an image file in the album
	// folder.
	if pic := m.Picture(); pic != nil {
		md.Cover = coverDataURI(pic.Data, pic.MIMEType)
	} else if data, mime := findFolderArt(filepath.Dir(path)); data != nil {
		md.Cover = coverDataURI(data, mime)
	}

	return md, nil
}

// Fallback builds metadata from the file path alone, used when Read fails.
func Fallback(path string) *Metadata {
	return &Metadata{
		Title:  TitleFromPath(path),
		Artist: UnknownArtist,
	}
}

// TitleFromPath derives a display title from a file name: extension stripped,
// underscore and dash separators normalized to spaces, whitespace collapsed.
func TitleFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
