package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/termdeck/termdeck/internal/keys"
)

// =============================================================================
// ConfirmCloseState - State for the window close confirmation modal
// =============================================================================

// ConfirmCloseState asks whether to close a window with live sessions. The
// negative option is the default; confirming takes an explicit selection
// change so a reflexive Enter never destroys sessions.
type ConfirmCloseState struct {
	WindowTitle   string
	Message       string
	Options       []string
	SelectedIndex int
}

func (*ConfirmCloseState) modalState() {}

func (s *ConfirmCloseState) Title() string { return "Close Window?" }

func (s *ConfirmCloseState) Help() string {
	return "up/down to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmCloseState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	windowLabel := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(s.WindowTitle)

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render(s.Message)

	var optionList string
	for i, opt := range s.Options {
		style := ListItemStyle
		prefix := "  "
		if i == s.SelectedIndex {
			style = ListSelectedStyle
			prefix = "> "
		}
		if i == 1 {
			// The destructive choice stays visually marked either way.
			style = style.Foreground(ColorError)
		}
		optionList += style.Render(prefix+opt) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, windowLabel, message, optionList, help)
}

func (s *ConfirmCloseState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Confirmed returns true if the user selected the destructive choice.
func (s *ConfirmCloseState) Confirmed() bool {
	return s.SelectedIndex == 1 // "Close window" is index 1
}

// NewConfirmCloseState creates a new ConfirmCloseState with the safe option
// preselected.
func NewConfirmCloseState(windowTitle, message string) *ConfirmCloseState {
	return &ConfirmCloseState{
		WindowTitle:   windowTitle,
		Message:       message,
		Options:       []string{"Keep window open", "Close window"},
		SelectedIndex: 0,
	}
}
