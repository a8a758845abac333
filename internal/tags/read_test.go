package tags

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/01_first_song.mp3", "01 first song"},
		{"/music/artist-title.flac", "artist title"},
		{"/music/Already Nice.mp3", "Already Nice"},
		{"/music/mixed_sep-file.ogg", "mixed sep file"},
		{"/music/__lots___of____underscores__.wav", "lots of underscores"},
		{"relative.mp3", "relative"},
		{"/music/noext", "noext"},
	}
	for _, tt := range tests {
		if got := TitleFromPath(tt.path); got != tt.want {
			t.Errorf("TitleFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestFallback(t *testing.T) {
	md := Fallback("/music/some_track.mp3")

	if md.Title != "some track" {
		t.Errorf("Title = %q, want %q", md.Title, "some track")
	}
	if md.Artist != UnknownArtist {
		t.Errorf("Artist = %q, want %q", md.Artist, UnknownArtist)
	}
	if md.Album != "" || md.Cover != "" {
		t.Errorf("Album/Cover = %q/%q, want empty", md.Album, md.Cover)
	}
}

func TestReadFailsOnGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.mp3")
	if err := os.WriteFile(path, []byte("this is not an audio file"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); err == nil {
		t.Error("Read succeeded on a file with no recognizable tags")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read("/nonexistent/track.mp3"); err == nil {
		t.Error("Read succeeded on a missing file")
	}
}

func TestFindFolderArt(t *testing.T) {
	dir := t.TempDir()
	if data, _ := findFolderArt(dir); data != nil {
		t.Errorf("found art in an empty dir: %q", data)
	}

	if err := os.WriteFile(filepath.Join(dir, "folder.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, mime := findFolderArt(dir)
	if string(data) != "png-bytes" || mime != "image/png" {
		t.Errorf("folder art = %q %q, want png-bytes image/png", data, mime)
	}

	// cover.* outranks folder.*
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("jpg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, mime = findFolderArt(dir)
	if string(data) != "jpg-bytes" || mime != "image/jpeg" {
		t.Errorf("folder art = %q %q, want jpg-bytes image/jpeg", data, mime)
	}
}

func TestReadFolderArtFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mp3")
	// An empty ID3v2 tag parses fine but carries no picture.
	id3 := []byte{'I', 'D', '3', 3, 0, 0, 0, 0, 0, 0, 0}
	if err := os.WriteFile(path, id3, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("jpg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	md, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if want := coverDataURI([]byte("jpg-bytes"), "image/jpeg"); md.Cover != want {
		t.Errorf("Cover = %q, want folder art %q", md.Cover, want)
	}
}

func TestCoverDataURI(t *testing.T) {
	uri := coverDataURI([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png")

	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri = %q, want data:image/png;base64, prefix", uri)
	}
	if strings.HasSuffix(uri, ",") {
		t.Error("uri has no payload")
	}
}
