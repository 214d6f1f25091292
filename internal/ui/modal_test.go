package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/termdeck/termdeck/internal/ui/modals"
)

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()

	if m.IsVisible() {
		t.Error("a fresh modal must not be visible")
	}
	if m.View(80, 24) != "" {
		t.Error("a hidden modal renders nothing")
	}

	m.Show(modals.NewConfirmCloseState("dev", "Close this window?"))
	if !m.IsVisible() {
		t.Error("Show() should make the modal visible")
	}

	m.Hide()
	if m.IsVisible() {
		t.Error("Hide() should dismiss the modal")
	}
}

func TestModal_ErrorRendersInline(t *testing.T) {
	m := NewModal()
	m.Show(modals.NewConfirmCloseState("dev", "Close this window?"))

	m.SetError("Could not save settings")
	if got := m.GetError(); got != "Could not save settings" {
		t.Fatalf("GetError() = %q", got)
	}

	view := ansi.Strip(m.View(100, 30))
	if !strings.Contains(view, "Could not save settings") {
		t.Error("the error should be rendered inside the modal")
	}

	m.SetError("")
	view = ansi.Strip(m.View(100, 30))
	if strings.Contains(view, "Could not save settings") {
		t.Error("a cleared error must leave the view")
	}
}

func TestModal_HideDropsError(t *testing.T) {
	m := NewModal()
	m.Show(modals.NewConfirmCloseState("dev", "Close this window?"))
	m.SetError("stale")

	m.Hide()
	if m.GetError() != "" {
		t.Error("hiding must drop the error")
	}

	m.Show(modals.NewConfirmCloseState("dev", "Close this window?"))
	if m.GetError() != "" {
		t.Error("a freshly shown modal starts without an error")
	}
}
