package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/termdeck/termdeck/internal/config"
	"github.com/termdeck/termdeck/internal/keys"
	"github.com/termdeck/termdeck/internal/logger"
	"github.com/termdeck/termdeck/internal/ui"
	"github.com/termdeck/termdeck/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on
// the modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.ConfirmCloseState:
		return m.handleConfirmCloseModal(key, msg, s)
	case *modals.SwitcherState:
		return m.handleSwitcherModal(key, msg, s)
	case *modals.RenameTabState:
		return m.handleRenameTabModal(key, msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	}

	// Unknown state: delegate and hope it knows what it's doing
	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// handleConfirmCloseModal resolves the close-confirmation prompt. The window
// may have been destroyed through another path while the prompt was up;
// ConfirmClose treats that response as stale and ignores it.
func (m *Model) handleConfirmCloseModal(key string, msg tea.KeyPressMsg, s *modals.ConfirmCloseState) (*Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		m.modal.Hide()
		m.win.ConfirmClose(s.Confirmed())
		return m, m.syncPresentedWindow()

	case keys.Escape:
		m.modal.Hide()
		m.win.ConfirmClose(false)
		return m, nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func (m *Model) handleSwitcherModal(key string, msg tea.KeyPressMsg, s *modals.SwitcherState) (*Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		ordinal, ok := s.Selected()
		if !ok {
			m.modal.SetError("No matching tabs")
			return m, nil
		}
		m.modal.Hide()
		m.win.Notebook().GotoNth(ordinal)
		m.updateSizes()
		return m, nil

	case keys.Escape:
		m.modal.Hide()
		return m, nil
	}

	m.modal.SetError("")
	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

func (m *Model) handleRenameTabModal(key string, msg tea.KeyPressMsg, s *modals.RenameTabState) (*Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		title := s.Value()
		m.modal.Hide()
		if t := m.win.Notebook().Current(); t != nil {
			t.SetTitle(title)
		}
		return m, nil

	case keys.Escape:
		m.modal.Hide()
		return m, nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// handleSettingsModal saves on Enter and reverts any theme preview on Escape.
// Tab bar placement and width apply to windows created after the save; the
// presented window keeps the flags it was constructed with.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, s *modals.SettingsState) (*Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		m.config.SetTheme(s.GetSelectedTheme())
		ui.SetThemeByName(s.GetSelectedTheme())
		m.config.SetTabBarPosition(config.TabBarPosition(s.GetTabBarPosition()))
		m.config.SetTabBarWidth(config.TabBarWidth(s.GetTabBarWidth()))
		m.config.SetConfirmClose(s.GetConfirmClose())
		m.config.SetNotificationsEnabled(s.GetNotificationsEnabled())

		if err := m.config.Save(); err != nil {
			// Settings applied to the running process; the modal stays up
			// so the persistence failure is seen.
			logger.Error("App: settings save failed: %v", err)
			m.modal.SetError("Could not save settings")
			return m, nil
		}
		m.modal.Hide()
		m.footer.SetFlash("Settings saved", ui.FlashSuccess)
		return m, nil

	case keys.Escape:
		if s.ThemeChanged() {
			ui.SetThemeByName(s.OriginalTheme)
		}
		m.modal.Hide()
		return m, nil
	}

	m.modal.SetError("")
	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)

	// Live theme preview while the select moves.
	if ui.CurrentThemeName() != ui.ThemeName(s.GetSelectedTheme()) {
		ui.SetThemeByName(s.GetSelectedTheme())
	}
	return m, cmd
}
