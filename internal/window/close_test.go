package window

import (
	"testing"

	"github.com/termdeck/termdeck/internal/engine"
)

func TestRequestClose_NoConfirmationDestroysImmediately(t *testing.T) {
	ctrl, _, w := newTestWindow(t, 2)

	if got := w.RequestClose(); got != CloseDecisionDestroyed {
		t.Fatalf("RequestClose() = %v, want immediate destruction", got)
	}
	if !w.Destroyed() {
		t.Error("window should be destroyed")
	}
	if ctrl.Registry().Len() != 0 {
		t.Error("destroyed window should leave the registry")
	}
}

func TestRequestClose_AnyConfirmingSurfacePrompts(t *testing.T) {
	_, eng, w := newTestWindow(t, 3)
	eng.created[1].confirm = true

	if got := w.RequestClose(); got != CloseDecisionPromptRequired {
		t.Fatalf("RequestClose() = %v, want a prompt", got)
	}
	if w.CloseState() != CloseAwaitingResponse {
		t.Errorf("CloseState() = %v, want awaiting response", w.CloseState())
	}
	if w.Destroyed() {
		t.Error("no teardown may happen while the prompt is pending")
	}
}

func TestConfirmClose_NoLeavesWindowUntouched(t *testing.T) {
	_, eng, w := newTestWindow(t, 3)
	eng.created[0].confirm = true
	w.Notebook().GotoNth(2)
	tabsBefore := append([]*Tab(nil), w.Notebook().Tabs()...)

	w.RequestClose()
	if destroyed := w.ConfirmClose(false); destroyed {
		t.Fatal("answering no must not destroy the window")
	}

	if w.CloseState() != CloseIdle {
		t.Errorf("CloseState() = %v, want idle", w.CloseState())
	}
	if w.Notebook().Len() != 3 {
		t.Errorf("Len() = %d, tabs must be unchanged", w.Notebook().Len())
	}
	if w.Notebook().CurrentIndex() != 1 {
		t.Errorf("CurrentIndex() = %d, selection must be unchanged", w.Notebook().CurrentIndex())
	}
	for i, tab := range w.Notebook().Tabs() {
		if tab != tabsBefore[i] {
			t.Errorf("tab %d changed identity across a declined close", i)
		}
	}
	for _, s := range eng.created {
		if s.closed {
			t.Error("no surface may be torn down by a declined close")
		}
	}
}

func TestConfirmClose_YesDestroysWindowAndTabs(t *testing.T) {
	ctrl, eng, w := newTestWindow(t, 2)
	eng.created[0].confirm = true

	w.RequestClose()
	if destroyed := w.ConfirmClose(true); !destroyed {
		t.Fatal("answering yes must destroy the window")
	}

	if !w.Destroyed() {
		t.Error("window should be destroyed")
	}
	if ctrl.Registry().Len() != 0 {
		t.Error("destroyed window should leave the registry")
	}
	for _, s := range eng.created {
		if !s.closed {
			t.Error("every surface must be torn down on confirmed close")
		}
	}
}

func TestConfirmClose_WithoutPendingPromptIsNoOp(t *testing.T) {
	_, _, w := newTestWindow(t, 1)

	if w.ConfirmClose(true) {
		t.Error("a response with no pending prompt must be a no-op")
	}
	if w.Destroyed() {
		t.Error("window must stay open")
	}
}

func TestConfirmClose_InvalidatedByExternalDestroy(t *testing.T) {
	ctrl, eng, w := newTestWindow(t, 1)
	eng.created[0].confirm = true

	w.RequestClose()
	// Window torn down through another path while the prompt is pending.
	ctrl.DestroyWindow(w)

	if w.ConfirmClose(true) {
		t.Error("a prompt response after external destroy must be a no-op")
	}
	if w.ConfirmClose(false) {
		t.Error("a prompt response after external destroy must be a no-op")
	}
}

func TestRequestClose_WhilePromptPendingKeepsPrompt(t *testing.T) {
	_, eng, w := newTestWindow(t, 1)
	eng.created[0].confirm = true

	w.RequestClose()
	if got := w.RequestClose(); got != CloseDecisionPromptRequired {
		t.Errorf("repeated RequestClose() = %v, want the pending prompt kept", got)
	}
	if w.CloseState() != CloseAwaitingResponse {
		t.Errorf("CloseState() = %v, want awaiting response", w.CloseState())
	}
}

func TestRequestClose_SkipsPromptAfterConfirmDisabled(t *testing.T) {
	ctrl, eng, w := newTestWindow(t, 2)
	eng.created[0].confirm = true

	if got := w.RequestClose(); got != CloseDecisionPromptRequired {
		t.Fatalf("RequestClose() = %v, want a prompt while confirmation is on", got)
	}
	w.ConfirmClose(false)

	// Confirmation turned off between close requests, as the settings
	// modal does. The next request must re-query the surfaces.
	eng.created[0].confirm = false
	if got := w.RequestClose(); got != CloseDecisionDestroyed {
		t.Fatalf("RequestClose() = %v, want immediate destruction once confirmation is off", got)
	}
	if ctrl.Registry().Len() != 0 {
		t.Error("destroyed window should leave the registry")
	}
}

func TestRequestClose_EmptyWindowDestroys(t *testing.T) {
	ctrl, _ := newTestController(t)
	w, _ := ctrl.CreateWindow()

	if got := w.RequestClose(); got != CloseDecisionDestroyed {
		t.Errorf("RequestClose() = %v, an empty window has nothing to confirm", got)
	}
}

func TestRequestClose_ConfirmChecksEverySurfaceInSplits(t *testing.T) {
	_, eng, w := newTestWindow(t, 1)
	w.Notebook().Current().Split(engine.SplitHorizontal, newFakeSurface())
	// Only the split's second surface requires confirmation.
	tab := w.Notebook().Current()
	tab.Surfaces()[1].(*fakeSurface).confirm = true
	_ = eng

	if got := w.RequestClose(); got != CloseDecisionPromptRequired {
		t.Errorf("RequestClose() = %v, every surface in every tab must be checked", got)
	}
}

func TestCloseState_String(t *testing.T) {
	tests := []struct {
		state CloseState
		want  string
	}{
		{CloseIdle, "idle"},
		{CloseEvaluating, "evaluating"},
		{CloseAwaitingResponse, "awaiting response"},
		{CloseClosing, "closing"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
