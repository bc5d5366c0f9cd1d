package ui

import (
	"strings"
	"testing"
)

func TestWidestLine(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"empty", []string{}, 0},
		{"single", []string{"hello"}, 5},
		{"with ansi", []string{"\x1b[31mred\x1b[0m"}, 3},
		{"mixed", []string{"short", "longer line", "mid"}, 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := widestLine(tt.lines); got != tt.want {
				t.Errorf("widestLine() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOverlayCentersModal(t *testing.T) {
	result := Overlay("line1\nline2\nline3\nline4\nline5", "[M]", 10, 5)
	lines := strings.Split(result, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "[M]") {
		t.Error("modal not centered on the middle line")
	}
}

func TestOverlayStripsBackgroundANSI(t *testing.T) {
	result := Overlay("\x1b[31mred\x1b[0m\n\x1b[32mgreen\x1b[0m", "X", 10, 3)
	if strings.Contains(result, "\x1b[31m") {
		t.Error("background color codes should be stripped before dimming")
	}
	if !strings.Contains(result, "X") {
		t.Error("modal content missing")
	}
}

func TestOverlayModalLargerThanBackground(t *testing.T) {
	result := Overlay("a\nb", "MODAL", 10, 5)
	lines := strings.Split(result, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(result, "MODAL") {
		t.Error("modal content missing")
	}
}

func TestOverlayRowPadsShortBackground(t *testing.T) {
	row := overlayRow("hi", "[MODAL]", 10, 7, 20)
	if !strings.Contains(row, "[MODAL]") {
		t.Error("modal segment missing")
	}
}
