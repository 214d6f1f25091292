package modals

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/termdeck/termdeck/internal/keys"
)

// SwitcherMaxVisible caps the tabs shown in the switcher list.
const SwitcherMaxVisible = 8

// =============================================================================
// SwitcherState - State for the fuzzy tab switcher modal
// =============================================================================

// SwitcherTab is one selectable entry: a tab title and its 1-based ordinal in
// the notebook.
type SwitcherTab struct {
	Title   string
	Ordinal int
}

// SwitcherState filters the window's tabs by fuzzy match as the user types.
type SwitcherState struct {
	Input         textinput.Model
	Tabs          []SwitcherTab
	Filtered      []SwitcherTab
	SelectedIndex int
}

func (*SwitcherState) modalState() {}

func (s *SwitcherState) Title() string { return "Switch Tab" }

func (s *SwitcherState) Help() string {
	return "type to filter, up/down to select, Enter to switch, Esc to cancel"
}

func (s *SwitcherState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	input := s.Input.View()

	visible := s.Filtered
	if len(visible) > SwitcherMaxVisible {
		visible = visible[:SwitcherMaxVisible]
	}

	var list string
	if len(visible) == 0 {
		list = lipgloss.NewStyle().Foreground(ColorTextMuted).Render("  no matching tabs") + "\n"
	} else {
		labels := make([]string, len(visible))
		for i, tab := range visible {
			labels[i] = fmt.Sprintf("%d:%s", tab.Ordinal, TruncateString(tab.Title, ModalInputWidth-6))
		}
		list = RenderSelectableList(labels, s.SelectedIndex)
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, input, list, help)
}

func (s *SwitcherState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
			return s, nil
		case keys.Down:
			if s.SelectedIndex < len(s.Filtered)-1 {
				s.SelectedIndex++
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	s.refilter()
	return s, cmd
}

// refilter recomputes the filtered list against the current query, keeping
// notebook order among the matches.
func (s *SwitcherState) refilter() {
	query := strings.TrimSpace(s.Input.Value())
	if query == "" {
		s.Filtered = append([]SwitcherTab(nil), s.Tabs...)
		s.clampSelection()
		return
	}

	labels := make([]string, len(s.Tabs))
	for i, tab := range s.Tabs {
		labels[i] = tab.Title
	}

	matched := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(query, labels) {
		matched[rank.OriginalIndex] = struct{}{}
	}

	s.Filtered = s.Filtered[:0]
	for i, tab := range s.Tabs {
		if _, ok := matched[i]; ok {
			s.Filtered = append(s.Filtered, tab)
		}
	}
	s.clampSelection()
}

func (s *SwitcherState) clampSelection() {
	if s.SelectedIndex >= len(s.Filtered) {
		s.SelectedIndex = len(s.Filtered) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// Selected returns the 1-based notebook ordinal of the highlighted tab.
// ok is false when nothing matches the query.
func (s *SwitcherState) Selected() (ordinal int, ok bool) {
	if len(s.Filtered) == 0 || s.SelectedIndex >= len(s.Filtered) {
		return 0, false
	}
	return s.Filtered[s.SelectedIndex].Ordinal, true
}

// NewSwitcherState creates a new SwitcherState over the window's tabs.
func NewSwitcherState(tabs []SwitcherTab) *SwitcherState {
	input := textinput.New()
	input.Placeholder = "tab title"
	input.CharLimit = ModalInputCharLimit
	input.SetWidth(ModalInputWidth)
	input.Focus()

	s := &SwitcherState{
		Input: input,
		Tabs:  tabs,
	}
	s.refilter()
	return s
}
