package app

import (
	"io"

	tea "charm.land/bubbletea/v2"

	"github.com/termdeck/termdeck/internal/action"
	"github.com/termdeck/termdeck/internal/keys"
	"github.com/termdeck/termdeck/internal/logger"
	"github.com/termdeck/termdeck/internal/notification"
	"github.com/termdeck/termdeck/internal/ui"
	"github.com/termdeck/termdeck/internal/ui/modals"
	"github.com/termdeck/termdeck/internal/window"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		model, cmd := m.handleKeyPress(msg)
		cmds = append(cmds, cmd)
		m = model

	case SurfaceExitedMsg:
		cmds = append(cmds, m.handleSurfaceExited(msg))
		cmds = append(cmds, m.listenForSurfaceExit())

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired()
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		m.flashTicking = false
	}

	// Arm the dismiss timer for any flash set while handling this message.
	if m.footer.HasFlash() && !m.flashTicking {
		m.flashTicking = true
		cmds = append(cmds, ui.FlashTick())
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress routes a key press: modal first, then window-level
// shortcuts, then raw input to the focused surface.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}
	if m.win == nil {
		return m, nil
	}

	key := msg.String()

	if ordinal := keys.OrdinalForAltKey(key); ordinal > 0 {
		m.win.Notebook().GotoNth(ordinal)
		m.updateSizes()
		return m, nil
	}

	switch key {
	case keys.CtrlT:
		m.win.HandleAction(action.NewTab)
		m.updateSizes()
		return m, nil

	case keys.CtrlN:
		return m, m.openNewWindow()

	case keys.CtrlW:
		if t := m.win.Notebook().Current(); t != nil {
			m.win.CloseTab(t)
		}
		return m, m.syncPresentedWindow()

	case keys.CtrlQ:
		if m.win.RequestClose() == window.CloseDecisionPromptRequired {
			m.modal.Show(modals.NewConfirmCloseState(m.win.Title(), window.ClosePromptMessage))
			return m, nil
		}
		return m, m.syncPresentedWindow()

	case keys.CtrlPgUp:
		m.win.Notebook().GotoPrevious()
		return m, nil

	case keys.CtrlPgDown:
		m.win.Notebook().GotoNext()
		return m, nil

	case keys.CtrlK:
		m.modal.Show(modals.NewSwitcherState(m.switcherTabs()))
		return m, nil

	case keys.CtrlR:
		current := ""
		if t := m.win.Notebook().Current(); t != nil {
			current = t.Title()
		}
		m.modal.Show(modals.NewRenameTabState(current))
		return m, nil

	case "ctrl+o":
		m.modal.Show(m.newSettingsState())
		return m, nil

	case keys.CtrlShiftC:
		m.win.DispatchAction(action.CopyToClipboard)
		return m, nil

	case keys.CtrlShiftV:
		m.win.DispatchAction(action.PasteFromClipboard)
		return m, nil

	case keys.CtrlShiftRight:
		m.win.HandleAction(action.SplitRight)
		m.updateSizes()
		return m, nil

	case keys.CtrlShiftDown:
		m.win.HandleAction(action.SplitDown)
		m.updateSizes()
		return m, nil

	case keys.Tab:
		if t := m.win.Notebook().Current(); t != nil && len(t.Surfaces()) > 1 {
			t.FocusNextSurface()
			return m, nil
		}

	case "f11":
		m.win.ToggleFullscreen()
		m.updateSizes()
		return m, nil

	case "f10":
		m.win.ToggleDecorations()
		m.updateSizes()
		return m, nil
	}

	m.forwardKey(msg)
	return m, nil
}

// forwardKey sends the key to the focused surface as the byte sequence a
// terminal would produce. Chrome shortcuts never reach here.
func (m *Model) forwardKey(msg tea.KeyPressMsg) {
	s := m.win.FocusedSurface()
	if s == nil {
		return
	}
	w, ok := s.(io.Writer)
	if !ok {
		return
	}
	if seq := keySequence(msg); len(seq) > 0 {
		w.Write(seq)
	}
}

// keySequence encodes a key press for a PTY. Text keys pass through as
// typed; editing and cursor keys use their xterm sequences.
func keySequence(msg tea.KeyPressMsg) []byte {
	if msg.Mod&tea.ModCtrl != 0 && msg.Code >= 'a' && msg.Code <= 'z' {
		return []byte{byte(msg.Code) & 0x1f}
	}

	switch msg.Code {
	case tea.KeyEnter:
		return []byte("\r")
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte("\t")
	case tea.KeyEscape:
		return []byte{0x1b}
	case tea.KeyUp:
		return []byte("\x1b[A")
	case tea.KeyDown:
		return []byte("\x1b[B")
	case tea.KeyRight:
		return []byte("\x1b[C")
	case tea.KeyLeft:
		return []byte("\x1b[D")
	case tea.KeyHome:
		return []byte("\x1b[H")
	case tea.KeyEnd:
		return []byte("\x1b[F")
	case tea.KeyDelete:
		return []byte("\x1b[3~")
	case tea.KeyPgUp:
		return []byte("\x1b[5~")
	case tea.KeyPgDown:
		return []byte("\x1b[6~")
	}

	if msg.Text != "" {
		return []byte(msg.Text)
	}
	return nil
}

// openNewWindow creates a window with one tab and presents it.
func (m *Model) openNewWindow() tea.Cmd {
	w, err := m.ctrl.CreateWindow()
	if err != nil {
		logger.Error("App: new window failed: %v", err)
		m.footer.SetFlash("Could not open window", ui.FlashError)
		return nil
	}
	if _, err := w.NewTab(m.win.FocusedSurface()); err != nil {
		logger.Error("App: new window tab failed: %v", err)
		m.ctrl.DestroyWindow(w)
		m.footer.SetFlash("Could not open window", ui.FlashError)
		return nil
	}
	m.attachWindow(w)
	return nil
}

// syncPresentedWindow keeps a live window on screen. When the presented
// window is gone it falls back to the most recently created one, and quits
// once the registry is empty.
func (m *Model) syncPresentedWindow() tea.Cmd {
	if m.win != nil && !m.win.Destroyed() {
		return nil
	}

	// A prompt raised for the departed window has nothing left to decide.
	m.modal.Hide()

	windows := m.ctrl.Registry().Windows()
	if len(windows) == 0 {
		return tea.Quit
	}
	m.attachWindow(windows[len(windows)-1])
	return nil
}

// handleSurfaceExited removes the dead surface from whichever window owns it
// and notifies when the affected tab was out of view.
func (m *Model) handleSurfaceExited(msg SurfaceExitedMsg) tea.Cmd {
	for _, w := range m.ctrl.Registry().Windows() {
		tabTitle, wasCurrent, found := w.SurfaceExited(msg.SurfaceID)
		if !found {
			continue
		}

		background := w != m.win || !wasCurrent
		if background && m.config.GetNotificationsEnabled() {
			if err := notification.SurfaceExited(tabTitle); err != nil {
				logger.Warn("App: notification failed: %v", err)
			}
		}
		m.updateSizes()
		return m.syncPresentedWindow()
	}

	logger.Debug("App: exit notice for unknown surface %s", msg.SurfaceID)
	return nil
}

// switcherTabs snapshots the notebook for the tab switcher.
func (m *Model) switcherTabs() []modals.SwitcherTab {
	tabs := m.win.Notebook().Tabs()
	items := make([]modals.SwitcherTab, len(tabs))
	for i, t := range tabs {
		items[i] = modals.SwitcherTab{Title: t.Title(), Ordinal: i + 1}
	}
	return items
}

func (m *Model) newSettingsState() *modals.SettingsState {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	displayNames := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
		displayNames[i] = ui.GetTheme(n).Name
	}

	return modals.NewSettingsState(
		themes, displayNames, string(ui.CurrentThemeName()),
		string(m.config.GetTabBarPosition()), string(m.config.GetTabBarWidth()),
		m.config.GetConfirmClose(), m.config.GetNotificationsEnabled(),
	)
}

// updateSizes propagates the screen size to the chrome and resizes every
// surface in the presented window to the content area.
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 || m.win == nil {
		return
	}

	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)

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

	if m.tabBar.Vertical() {
		m.tabBar.SetSize(ui.SideTabBarWidth, contentH)
	} else {
		m.tabBar.SetSize(m.width, ui.TabBarHeight)
	}

	if t := m.win.Notebook().Current(); t != nil {
		surfaces := t.Surfaces()
		cols, rows := contentW, contentH
		// Splits share the area evenly enough for the child processes.
		if n := len(surfaces); n > 1 {
			cols = contentW / n
		}
		for _, s := range surfaces {
			if err := s.Resize(cols, rows); err != nil {
				logger.Debug("App: resize failed for %s: %v", s.ID(), err)
			}
		}
	}
}

// chromeVisible reports whether the header and tab bar regions are drawn.
// Fullscreen gives the whole screen to the content.
func (m *Model) chromeVisible() bool {
	return m.win != nil && !m.win.Fullscreen()
}
