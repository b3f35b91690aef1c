package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/virus-defense/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(0, 0, "hello")
	s.DrawTextColored(0, 1, "virus", core.ColorBrightRed)
	s.DrawTextColored(10, 1, "dim", core.ColorDim)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"hello", "virus", "dim"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}
