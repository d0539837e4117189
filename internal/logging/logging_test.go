package logging

import "testing"

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		if _, err := New(level); err != nil {
			t.Errorf("New(%q): %v", level, err)
		}
	}
}

func TestNewUnknownLevelFallsBack(t *testing.T) {
	logger, err := New("chatty")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger == nil {
		t.Fatal("expected a logger")
	}
}
