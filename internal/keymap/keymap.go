// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding for documentation.
type Binding struct {
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist"
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, "Quit application", "global"},
	{[]string{"?"}, "Show help", "global"},

	// Playback
	{[]string{"space"}, "Play/pause", "playback"},
	{[]string{"left"}, "Seek -5s", "playback"},
	{[]string{"right"}, "Seek +5s", "playback"},
	{[]string{"up"}, "Volume up", "playback"},
	{[]string{"down"}, "Volume down", "playback"},
	{[]string{"n"}, "Next track", "playback"},
	{[]string{"p"}, "Previous track", "playback"},

	// Playlist
	{[]string{"j"}, "Cursor down", "playlist"},
	{[]string{"k"}, "Cursor up", "playlist"},
	{[]string{"enter"}, "Play track under cursor", "playlist"},
	{[]string{"x"}, "Toggle selection", "playlist"},
	{[]string{"ctrl+a"}, "Select all", "playlist"},
	{[]string{"delete", "backspace"}, "Delete selected", "playlist"},
	{[]string{"esc"}, "Clear selection", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
