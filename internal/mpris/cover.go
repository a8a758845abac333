//go:build linux

package mpris

import (
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"image"
	_ "image/jpeg" // cover art decoding
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"

	"github.com/simonbasler/minplayer/internal/playlist"
)

// maxArtSize caps cover art written for the desktop; MPRIS clients render
// thumbnails, not wall posters.
const maxArtSize = 512

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// CoverURL returns a file:// URL for the track's cover art, or "". Embedded
// art (carried as a data URI on the track) is written once to a cache file;
// otherwise common art files next to the track are used directly.
func CoverURL(t playlist.Track) string {
	if strings.HasPrefix(t.Cover, "data:") {
		if path := cacheEmbeddedArt(t.Path, t.Cover); path != "" {
			return "file://" + path
		}
	}
	if path := findAlbumArt(t.Path); path != "" {
		return "file://" + path
	}
	return ""
}

// cacheEmbeddedArt decodes a data URI and writes it as a PNG cache file keyed
// by the track path. Oversized images are scaled down.
func cacheEmbeddedArt(trackPath, dataURI string) string {
	cachePath := filepath.Join(os.TempDir(), fmt.Sprintf("minplayer-art-%x.png", hashPath(trackPath)))
	if _, err := os.Stat(cachePath); err == nil {
		return cachePath
	}

	_, b64, ok := strings.Cut(dataURI, ";base64,")
	if !ok {
		return ""
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return ""
	}

	img, _, err := image.Decode(strings.NewReader(string(raw)))
	if err != nil {
		return ""
	}
	bounds := img.Bounds()
	if bounds.Dx() > maxArtSize || bounds.Dy() > maxArtSize {
		img = resize.Thumbnail(maxArtSize, maxArtSize, img, resize.Lanczos3)
	}

	f, err := os.Create(cachePath)
	if err != nil {
		return ""
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		os.Remove(cachePath)
		return ""
	}
	return cachePath
}

// findAlbumArt looks for album art in the same directory as the track.
func findAlbumArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func hashPath(path string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	return h.Sum64()
}
