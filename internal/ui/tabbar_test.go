package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/termdeck/termdeck/internal/config"
)

func TestTabBar_EmptyRendersNothing(t *testing.T) {
	bar := NewTabBar(config.TabBarTop, config.TabBarWide)
	bar.SetSize(80, 1)

	if bar.View() != "" {
		t.Error("View() should be empty with no tabs")
	}
}

func TestTabBar_LabelsAreOrdinalPrefixed(t *testing.T) {
	bar := NewTabBar(config.TabBarTop, config.TabBarWide)
	bar.SetSize(80, 1)
	bar.SetTabs([]TabItem{
		{Title: "vim", Current: true},
		{Title: "build"},
	})

	view := ansi.Strip(bar.View())
	if !strings.Contains(view, "1:vim") {
		t.Errorf("View() missing first label: %q", view)
	}
	if !strings.Contains(view, "2:build") {
		t.Errorf("View() missing second label: %q", view)
	}
}

func TestTabBar_WideFillsWindowWidth(t *testing.T) {
	bar := NewTabBar(config.TabBarTop, config.TabBarWide)
	bar.SetSize(80, 1)
	bar.SetTabs([]TabItem{
		{Title: "one", Current: true},
		{Title: "two"},
	})

	if got := runewidth.StringWidth(ansi.Strip(bar.View())); got != 80 {
		t.Errorf("rendered width = %d, want 80", got)
	}
}

func TestTabBar_CompactCapsCellWidth(t *testing.T) {
	bar := NewTabBar(config.TabBarTop, config.TabBarCompact)
	bar.SetSize(200, 1)
	bar.SetTabs([]TabItem{
		{Title: strings.Repeat("x", 100), Current: true},
	})

	view := ansi.Strip(bar.View())
	if !strings.Contains(view, "…") {
		t.Errorf("long compact title should be truncated with an ellipsis: %q", view)
	}
}

func TestTabBar_StripsEscapeSequencesFromTitles(t *testing.T) {
	bar := NewTabBar(config.TabBarTop, config.TabBarCompact)
	bar.SetSize(80, 1)
	bar.SetTabs([]TabItem{
		{Title: "\x1b[31mred\x1b[0m", Current: true},
	})

	view := ansi.Strip(bar.View())
	if !strings.Contains(view, "1:red") {
		t.Errorf("title should be sanitized before rendering: %q", view)
	}
}

func TestTabBar_VerticalPadsToHeight(t *testing.T) {
	bar := NewTabBar(config.TabBarLeft, config.TabBarWide)
	bar.SetSize(80, 6)
	bar.SetTabs([]TabItem{
		{Title: "vim", Current: true},
		{Title: "build"},
	})

	if !bar.Vertical() {
		t.Fatal("left placement should be vertical")
	}
	if bar.Width() != SideTabBarWidth {
		t.Errorf("Width() = %d, want %d", bar.Width(), SideTabBarWidth)
	}

	lines := strings.Split(bar.View(), "\n")
	if len(lines) != 6 {
		t.Errorf("vertical bar has %d rows, want 6", len(lines))
	}
}

func TestTabBar_HorizontalGeometry(t *testing.T) {
	bar := NewTabBar(config.TabBarBottom, config.TabBarWide)
	bar.SetSize(80, 1)

	if bar.Vertical() {
		t.Error("bottom placement should not be vertical")
	}
	if bar.Width() != 80 {
		t.Errorf("Width() = %d, want 80", bar.Width())
	}
	if bar.Height() != TabBarHeight {
		t.Errorf("Height() = %d, want %d", bar.Height(), TabBarHeight)
	}
}
