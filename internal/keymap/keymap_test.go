package keymap

import "testing"

func TestByContext(t *testing.T) {
	for _, context := range []string{"global", "playback", "playlist"} {
		bindings := ByContext(context)
		if len(bindings) == 0 {
			t.Errorf("no bindings for context %q", context)
		}
		for _, b := range bindings {
			if b.Context != context {
				t.Errorf("binding %v leaked into context %q", b.Keys, context)
			}
		}
	}

	if got := ByContext("unknown"); got != nil {
		t.Errorf("ByContext(unknown) = %v, want nil", got)
	}
}

func TestBindingsComplete(t *testing.T) {
	total := 0
	for _, context := range []string{"global", "playback", "playlist"} {
		total += len(ByContext(context))
	}
	if total != len(All) {
		t.Errorf("contexts cover %d bindings, want all %d", total, len(All))
	}

	for _, b := range All {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Description)
		}
		if b.Description == "" {
			t.Errorf("binding %v has no description", b.Keys)
		}
	}
}
