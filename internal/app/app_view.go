package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/termdeck/termdeck/internal/config"
	"github.com/termdeck/termdeck/internal/engine"
	"github.com/termdeck/termdeck/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 || m.win == nil {
		v.SetContent("Loading...")
		return v
	}

	m.updateChrome()

	content := m.viewContent()

	var view string
	if !m.chromeVisible() {
		view = lipgloss.JoinVertical(lipgloss.Left, content, m.footer.View())
	} else {
		body := content
		if m.tabBar.Vertical() {
			bar := m.tabBar.View()
			if m.win.TabBarPosition() == config.TabBarRight {
				body = lipgloss.JoinHorizontal(lipgloss.Top, content, bar)
			} else {
				body = lipgloss.JoinHorizontal(lipgloss.Top, bar, content)
			}
		}

		sections := make([]string, 0, 4)
		if m.win.TitleBarVisible() {
			sections = append(sections, m.header.View())
		}
		if !m.tabBar.Vertical() && m.win.TabBarPosition() == config.TabBarTop {
			sections = append(sections, m.tabBar.View())
		}
		sections = append(sections, body)
		if !m.tabBar.Vertical() && m.win.TabBarPosition() == config.TabBarBottom {
			sections = append(sections, m.tabBar.View())
		}
		sections = append(sections, m.footer.View())

		view = lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		v.SetContent(m.modal.View(m.width, m.height))
		return v
	}

	v.SetContent(view)
	return v
}

// updateChrome refreshes the chrome components from the presented window.
func (m *Model) updateChrome() {
	nb := m.win.Notebook()

	m.header.SetTitle(m.win.Title())
	m.header.SetTabPosition(nb.CurrentIndex()+1, nb.Len())
	m.header.SetFullscreen(m.win.Fullscreen())

	items := make([]ui.TabItem, nb.Len())
	for i, t := range nb.Tabs() {
		items[i] = ui.TabItem{Title: t.Title(), Current: i == nb.CurrentIndex()}
	}
	m.tabBar.SetTabs(items)

	hasSplits := false
	if t := nb.Current(); t != nil {
		hasSplits = len(t.Surfaces()) > 1
	}
	m.footer.SetContext(m.modal.IsVisible(), hasSplits)
}

// viewContent renders the current tab's surfaces as panes. The engine owns
// the terminal cells; the panes frame each surface with its title and
// working directory.
func (m *Model) viewContent() string {
	contentW := m.width
	contentH := m.height - ui.FooterHeight
	if m.chromeVisible() {
		if m.win.TitleBarVisible() {
			contentH -= ui.HeaderHeight
		}
		if m.tabBar.Vertical() {
			contentW -= ui.SideTabBarWidth
		} else {
			contentH -= ui.TabBarHeight
		}
	}
	if contentW < 1 {
		contentW = 1
	}
	if contentH < 1 {
		contentH = 1
	}

	t := m.win.Notebook().Current()
	if t == nil {
		return lipgloss.Place(contentW, contentH, lipgloss.Center, lipgloss.Center, "No tabs")
	}

	surfaces := t.Surfaces()
	focused := t.FocusedSurface()

	paneW := contentW / len(surfaces)
	panes := make([]string, 0, len(surfaces))
	for _, s := range surfaces {
		panes = append(panes, m.viewPane(s, s == focused, paneW, contentH))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func (m *Model) viewPane(s engine.Surface, focused bool, w, h int) string {
	style := ui.PanelStyle
	if focused {
		style = ui.PanelFocusedStyle
	}

	label := s.Title()
	if dir := s.WorkingDirectory(); dir != "" {
		label += "\n" + dir
	}

	inner := lipgloss.Place(w-2, h-2, lipgloss.Center, lipgloss.Center, label)
	return style.Width(w - 2).Height(h - 2).Render(inner)
}
