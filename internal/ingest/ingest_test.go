package ingest

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not real audio"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCollectTracksFiltersAndPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	mp3 := writeFile(t, dir, "01_first-song.mp3")
	png := writeFile(t, dir, "cover.png")
	flac := writeFile(t, dir, "second.flac")
	txt := writeFile(t, dir, "notes.txt")
	wav := writeFile(t, dir, "THIRD.WAV")

	tracks := CollectTracks([]string{mp3, png, flac, txt, wav})

	if len(tracks) != 3 {
		t.Fatalf("got %d tracks, want 3", len(tracks))
	}
	wantPaths := []string{mp3, flac, wav}
	for i, want := range wantPaths {
		if tracks[i].Path != want {
			t.Errorf("tracks[%d].Path = %s, want %s", i, tracks[i].Path, want)
		}
	}
}

func TestCollectTracksFallbackMetadata(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "my_favorite-song.mp3")

	tracks := CollectTracks([]string{path})

	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
	// The file has no readable tags; the title comes from the name.
	if got := tracks[0].Title; got != "my favorite song" {
		t.Errorf("Title = %q, want %q", got, "my favorite song")
	}
	if got := tracks[0].Artist; got != "Unknown Artist" {
		t.Errorf("Artist = %q, want %q", got, "Unknown Artist")
	}
}

func TestCollectTracksAllFiltered(t *testing.T) {
	dir := t.TempDir()
	png := writeFile(t, dir, "cover.png")

	if tracks := CollectTracks([]string{png, "/tmp/readme.md"}); tracks != nil {
		t.Errorf("got %v, want nil for a fully filtered batch", tracks)
	}
}

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "newline separated",
			in:   "/music/a.mp3\n/music/b.flac\n",
			want: []string{"/music/a.mp3", "/music/b.flac"},
		},
		{
			name: "quoted path with spaces",
			in:   `"/music/My Album/track one.mp3" /music/b.mp3`,
			want: []string{"/music/My Album/track one.mp3", "/music/b.mp3"},
		},
		{
			name: "single quotes",
			in:   `'/music/it''s here.mp3'`,
			want: []string{"/music/its here.mp3"},
		},
		{
			name: "file uri with percent encoding",
			in:   "file:///music/My%20Album/a.mp3",
			want: []string{"/music/My Album/a.mp3"},
		},
		{
			name: "windows style drop with crlf",
			in:   "/music/a.mp3\r\n/music/b.mp3\r\n",
			want: []string{"/music/a.mp3", "/music/b.mp3"},
		},
		{
			name: "empty input",
			in:   "  \n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePaths(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePaths(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
