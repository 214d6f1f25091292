package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func switcherTabs() []SwitcherTab {
	return []SwitcherTab{
		{Title: "vim", Ordinal: 1},
		{Title: "build", Ordinal: 2},
		{Title: "server logs", Ordinal: 3},
	}
}

func typeInto(state *SwitcherState, text string) {
	for _, r := range text {
		state.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestNewSwitcherState_ShowsAllTabs(t *testing.T) {
	state := NewSwitcherState(switcherTabs())

	if len(state.Filtered) != 3 {
		t.Fatalf("Filtered has %d entries, want 3", len(state.Filtered))
	}
	ordinal, ok := state.Selected()
	if !ok || ordinal != 1 {
		t.Errorf("Selected() = (%d, %v), want the first tab", ordinal, ok)
	}
}

func TestSwitcherState_FuzzyFilter(t *testing.T) {
	state := NewSwitcherState(switcherTabs())

	typeInto(state, "vm")

	if len(state.Filtered) != 1 {
		t.Fatalf("Filtered has %d entries, want 1: %v", len(state.Filtered), state.Filtered)
	}
	ordinal, ok := state.Selected()
	if !ok || ordinal != 1 {
		t.Errorf("Selected() = (%d, %v), want vim's ordinal", ordinal, ok)
	}
}

func TestSwitcherState_NoMatches(t *testing.T) {
	state := NewSwitcherState(switcherTabs())

	typeInto(state, "zzz")

	if len(state.Filtered) != 0 {
		t.Fatalf("Filtered has %d entries, want 0", len(state.Filtered))
	}
	if _, ok := state.Selected(); ok {
		t.Error("Selected() should report false with no matches")
	}
	if state.Render() == "" {
		t.Error("Render() should still produce output with no matches")
	}
}

func TestSwitcherState_RenderMarksSelection(t *testing.T) {
	state := NewSwitcherState(switcherTabs())
	state.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	view := ansi.Strip(state.Render())
	if !strings.Contains(view, "> 2:build") {
		t.Errorf("Render() missing the selection marker on the highlighted tab:\n%s", view)
	}
	if !strings.Contains(view, "  1:vim") {
		t.Errorf("Render() missing the unselected entry:\n%s", view)
	}
}

func TestSwitcherState_NavigationClamps(t *testing.T) {
	state := NewSwitcherState(switcherTabs())

	state.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	state.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	state.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	ordinal, _ := state.Selected()
	if ordinal != 3 {
		t.Errorf("Selected() ordinal = %d, want clamp at the last match", ordinal)
	}

	state.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	state.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	state.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	ordinal, _ = state.Selected()
	if ordinal != 1 {
		t.Errorf("Selected() ordinal = %d, want clamp at the first match", ordinal)
	}
}

func TestSwitcherState_SelectionClampsWhenFilterShrinks(t *testing.T) {
	state := NewSwitcherState(switcherTabs())
	state.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	state.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	typeInto(state, "build")

	ordinal, ok := state.Selected()
	if !ok {
		t.Fatal("Selected() should find the remaining match")
	}
	if ordinal != 2 {
		t.Errorf("Selected() ordinal = %d, want build's ordinal", ordinal)
	}
}
