package panel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/dayplan/pkg/runner/tea/internal/theme"
)

func TestViewTruncatesToWidth(t *testing.T) {
	p := New(theme.Default().Pane)
	p.SetContent("Todos", []string{strings.Repeat("x", 80)})
	p.SetWidth(20)

	view, height := p.View()
	if height != 4 {
		t.Fatalf("expected 4 lines (border, title, body, border), got %d:\n%s", height, view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w > 20 {
			t.Fatalf("line wider than panel (%d): %q", w, line)
		}
	}
	if !strings.Contains(view, "…") {
		t.Fatalf("expected truncation tail:\n%s", view)
	}
}
