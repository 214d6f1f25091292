package modals

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// RenameTabState - State for the rename tab modal
// =============================================================================

// RenameTabState pins a user-assigned title on the current tab. Submitting an
// empty value clears the pin so the title follows the focused surface again.
type RenameTabState struct {
	Input        textinput.Model
	CurrentTitle string
}

func (*RenameTabState) modalState() {}

func (s *RenameTabState) Title() string { return "Rename Tab" }

func (s *RenameTabState) Help() string {
	return "Enter to rename, Esc to cancel; empty restores the automatic title"
}

func (s *RenameTabState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	current := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginBottom(1).
		Render("Current: " + TruncateString(s.CurrentTitle, ModalInputWidth))

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, current, s.Input.View(), help)
}

func (s *RenameTabState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// Value returns the entered title, trimmed of surrounding whitespace by the
// caller's policy; empty means "clear the pin".
func (s *RenameTabState) Value() string {
	return s.Input.Value()
}

// NewRenameTabState creates a new RenameTabState seeded with the tab's
// current title.
func NewRenameTabState(currentTitle string) *RenameTabState {
	input := textinput.New()
	input.Placeholder = currentTitle
	input.CharLimit = ModalInputCharLimit
	input.SetWidth(ModalInputWidth)
	input.Focus()

	return &RenameTabState{
		Input:        input,
		CurrentTitle: currentTitle,
	}
}
