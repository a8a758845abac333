package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	err := errors.New("permission denied")

	if got := Format(OpInitialize, err); got != "Failed to initialize application: permission denied" {
		t.Errorf("Format = %q", got)
	}
	if got := Format(OpStateSave, nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}
