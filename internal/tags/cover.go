package tags

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
)

// coverArtFilenames lists common cover image files in album folders,
// in priority order.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
}

// coverDataURI encodes raw image bytes as a data URI for display.
func coverDataURI(data []byte, mimeType string) string {
	if len(data) == 0 {
		return ""
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// findFolderArt looks for common cover art files in the given directory.
// Returns nil data when none is found.
func findFolderArt(dir string) (data []byte, mimeType string) {
	for _, filename := range coverArtFilenames {
		data, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			continue
		}
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".png":
			return data, "image/png"
		default:
			return data, "image/jpeg"
		}
	}
	return nil, ""
}
