package tui

import (
	"strings"
	"testing"
)

func TestEditRuneAppendsPrintable(t *testing.T) {
	got := editRune("abc", "d")
	if got != "abcd" {
		t.Errorf("editRune append = %q, want %q", got, "abcd")
	}
}

func TestEditRuneBackspace(t *testing.T) {
	if got := editRune("abc", "backspace"); got != "ab" {
		t.Errorf("backspace = %q, want %q", got, "ab")
	}
	if got := editRune("", "backspace"); got != "" {
		t.Errorf("backspace on empty = %q, want empty", got)
	}
}

func TestEditRuneMultibyte(t *testing.T) {
	got := editRune("café", "backspace")
	if got != "caf" {
		t.Errorf("multibyte backspace = %q, want %q", got, "caf")
	}
	if got := editRune("caf", "é"); got != "café" {
		t.Errorf("multibyte append = %q, want %q", got, "café")
	}
}

func TestEditRuneIgnoresSpecialKeys(t *testing.T) {
	for _, key := range []string{"enter", "esc", "tab", "up", "ctrl+c"} {
		if got := editRune("abc", key); got != "abc" {
			t.Errorf("editRune(%q) = %q, want unchanged", key, got)
		}
	}
}

func TestEditRuneClampsLength(t *testing.T) {
	long := strings.Repeat("a", maxInputLen)
	if got := editRune(long, "b"); got != long {
		t.Error("input grew past maxInputLen")
	}
}

func TestTruncateToHeight(t *testing.T) {
	s := "a\nb\nc\nd\n"
	if got := truncateToHeight(s, 2); got != "a\nb\n" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncateToHeight(s, 10); got != s {
		t.Errorf("short input changed: %q", got)
	}
	if got := truncateToHeight(s, 0); got != s {
		t.Errorf("maxLines=0 changed input: %q", got)
	}
}
