package window

// CloseState is the per-window close-confirmation state.
type CloseState int

const (
	// CloseIdle: window open, accepting events.
	CloseIdle CloseState = iota
	// CloseEvaluating: a close request is being evaluated against every
	// surface in the window. Transient within one event.
	CloseEvaluating
	// CloseAwaitingResponse: a confirmation prompt is pending. The event
	// loop keeps running; the prompt has no timeout.
	CloseAwaitingResponse
	// CloseClosing: terminal state, the window is being destroyed.
	CloseClosing
)

func (s CloseState) String() string {
	switch s {
	case CloseEvaluating:
		return "evaluating"
	case CloseAwaitingResponse:
		return "awaiting response"
	case CloseClosing:
		return "closing"
	default:
		return "idle"
	}
}

// CloseDecision is the outcome of a close request.
type CloseDecision int

const (
	// CloseDecisionDestroyed: no surface required confirmation; the
	// window was destroyed immediately.
	CloseDecisionDestroyed CloseDecision = iota
	// CloseDecisionPromptRequired: at least one surface requires
	// confirmation; the caller must present the prompt and report the
	// answer via ConfirmClose.
	CloseDecisionPromptRequired
)

// ClosePromptMessage is the question presented while awaiting the user's
// response. The affirmative choice is destructive; the negative choice is
// the default.
const ClosePromptMessage = "Close this window? All terminal sessions in this window will be terminated."

type closeWorkflow struct {
	state CloseState
}

// CloseState returns the window's close-confirmation state.
func (w *Window) CloseState() CloseState {
	return w.close.state
}

// RequestClose starts the close workflow. Every surface reachable through
// every tab is asked whether it needs quit confirmation; if none do, the
// window is destroyed before this returns. A request while a prompt is
// already pending keeps the pending prompt.
func (w *Window) RequestClose() CloseDecision {
	if w.destroyed {
		return CloseDecisionDestroyed
	}
	if w.close.state == CloseAwaitingResponse {
		return CloseDecisionPromptRequired
	}

	w.close.state = CloseEvaluating
	for _, t := range w.notebook.Tabs() {
		for _, s := range t.Surfaces() {
			if s.NeedsConfirmQuit() {
				w.close.state = CloseAwaitingResponse
				w.log.Debug("close requires confirmation", "surface_id", s.ID())
				return CloseDecisionPromptRequired
			}
		}
	}

	w.ctrl.DestroyWindow(w)
	return CloseDecisionDestroyed
}

// ConfirmClose resolves a pending prompt. "Yes" destroys the window; "no"
// returns it to idle with every tab and selection untouched. A response with
// no pending prompt, including one arriving after the window was destroyed
// through another path, is a no-op. Reports whether the window was destroyed.
func (w *Window) ConfirmClose(confirmed bool) bool {
	if w.destroyed || w.close.state != CloseAwaitingResponse {
		return false
	}

	if !confirmed {
		w.close.state = CloseIdle
		w.log.Debug("close declined")
		return false
	}

	w.ctrl.DestroyWindow(w)
	return true
}
