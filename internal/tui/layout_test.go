package tui

import (
	"strings"
	"testing"
)

func TestRenderProgressBarWidth(t *testing.T) {
	tests := []struct {
		name   string
		ratio  float64
		filled int
	}{
		{"empty", 0, 0},
		{"half", 0.5, 10},
		{"full", 1, 20},
		{"clamped negative", -0.5, 0},
		{"clamped over one", 1.5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := renderProgressBar(tt.ratio, 20)
			if got := strings.Count(bar, "█"); got != tt.filled {
				t.Errorf("filled cells = %d, want %d", got, tt.filled)
			}
			if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != 20 {
				t.Errorf("total cells = %d, want 20", got)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1500, "1.5K"},
		{2500000, "2.50M"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateStr(t *testing.T) {
	if got := truncateStr("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncateStr("a very long string", 7); len([]rune(got)) != 7 {
		t.Errorf("got %q, want 7 runes", got)
	}
}

func TestScrollWindowBounds(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	if got := scrollWindow(lines, 0, 3); len(got) != 3 || got[0] != "a" {
		t.Errorf("top window wrong: %v", got)
	}
	if got := scrollWindow(lines, 100, 3); len(got) != 3 || got[0] != "c" {
		t.Errorf("overscroll must clamp to the bottom: %v", got)
	}
	if got := scrollWindow(lines, 0, 10); len(got) != 5 {
		t.Errorf("window larger than content must return everything: %v", got)
	}
}
