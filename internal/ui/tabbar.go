package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/termdeck/termdeck/internal/config"
)

// maxCompactTabWidth bounds a tab cell under the compact sizing policy.
const maxCompactTabWidth = 24

// minTabWidth is the smallest cell a tab can be squeezed into.
const minTabWidth = 5

// TabItem is one tab as the tab bar displays it.
type TabItem struct {
	Title   string
	Current bool
}

// TabBar renders the window's tabs at the configured placement. Titles come
// from surfaces and may carry escape sequences; they are sanitized here
// before measuring or truncating.
type TabBar struct {
	width       int
	height      int
	position    config.TabBarPosition
	widthPolicy config.TabBarWidth
	tabs        []TabItem
}

// NewTabBar creates a tab bar for the given placement and sizing policy.
func NewTabBar(position config.TabBarPosition, widthPolicy config.TabBarWidth) *TabBar {
	return &TabBar{position: position, widthPolicy: widthPolicy}
}

// SetSize sets the available area. Height only matters for side placements.
func (b *TabBar) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// SetTabs replaces the displayed tabs.
func (b *TabBar) SetTabs(tabs []TabItem) {
	b.tabs = tabs
}

// Vertical reports whether the bar renders as a side column.
func (b *TabBar) Vertical() bool {
	return b.position == config.TabBarLeft || b.position == config.TabBarRight
}

// Width returns the columns the bar occupies within the window.
func (b *TabBar) Width() int {
	if b.Vertical() {
		return SideTabBarWidth
	}
	return b.width
}

// Height returns the rows the bar occupies within the window.
func (b *TabBar) Height() int {
	if b.Vertical() {
		return b.height
	}
	return TabBarHeight
}

// View renders the tab bar.
func (b *TabBar) View() string {
	if len(b.tabs) == 0 {
		return ""
	}
	if b.Vertical() {
		return b.viewVertical()
	}
	return b.viewHorizontal()
}

func (b *TabBar) viewHorizontal() string {
	cellWidth := 0
	if b.widthPolicy == config.TabBarWide {
		cellWidth = b.width / len(b.tabs)
		if cellWidth < minTabWidth {
			cellWidth = minTabWidth
		}
	}

	cells := make([]string, 0, len(b.tabs))
	for i, tab := range b.tabs {
		label := fmt.Sprintf("%d:%s", i+1, ansi.Strip(tab.Title))

		w := cellWidth
		if w == 0 {
			w = runewidth.StringWidth(label) + 2
			if w > maxCompactTabWidth {
				w = maxCompactTabWidth
			}
		}
		label = runewidth.Truncate(label, w-2, "…")

		style := TabStyle
		if tab.Current {
			style = TabCurrentStyle
		}
		cells = append(cells, style.Width(w).Render(label))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	if runewidth.StringWidth(ansi.Strip(bar)) < b.width {
		bar = lipgloss.NewStyle().Width(b.width).Render(bar)
	}
	return bar
}

func (b *TabBar) viewVertical() string {
	rows := make([]string, 0, b.height)
	for i, tab := range b.tabs {
		label := fmt.Sprintf("%d:%s", i+1, ansi.Strip(tab.Title))
		label = runewidth.Truncate(label, SideTabBarWidth-2, "…")

		style := TabStyle
		if tab.Current {
			style = TabCurrentStyle
		}
		rows = append(rows, style.Width(SideTabBarWidth).Render(label))
	}
	for len(rows) < b.height {
		rows = append(rows, strings.Repeat(" ", SideTabBarWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
