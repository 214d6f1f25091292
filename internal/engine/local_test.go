package engine

import "testing"

func TestScanOSCTitle(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		want  string
		found bool
	}{
		{"no sequence", "plain output", "", false},
		{"osc 0 bel", "\x1b]0;my title\x07", "my title", true},
		{"osc 2 bel", "\x1b]2;editor\x07", "editor", true},
		{"osc 0 st", "\x1b]0;my title\x1b\\", "my title", true},
		{"last wins", "\x1b]0;old\x07text\x1b]0;new\x07", "new", true},
		{"unterminated", "\x1b]0;partial", "", false},
		{"empty title", "\x1b]0;\x07", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := scanOSCTitle([]byte(tt.data))
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocalSurface_NeedsConfirmQuit(t *testing.T) {
	always := func(v bool) func() bool {
		return func() bool { return v }
	}
	confirming := NewLocalEngine(LocalEngineOptions{ConfirmClose: always(true)})
	quiet := NewLocalEngine(LocalEngineOptions{ConfirmClose: always(false)})
	unset := NewLocalEngine(LocalEngineOptions{})

	tests := []struct {
		name   string
		engine *LocalEngine
		exited bool
		closed bool
		want   bool
	}{
		{"live process with confirm", confirming, false, false, true},
		{"exited process", confirming, true, false, false},
		{"closed surface", confirming, false, true, false},
		{"confirm disabled", quiet, false, false, false},
		{"no confirm getter", unset, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &LocalSurface{engine: tt.engine, exited: tt.exited, closed: tt.closed}
			if got := s.NeedsConfirmQuit(); got != tt.want {
				t.Errorf("NeedsConfirmQuit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalSurface_NeedsConfirmQuitTracksSetting(t *testing.T) {
	enabled := true
	engine := NewLocalEngine(LocalEngineOptions{ConfirmClose: func() bool { return enabled }})
	s := &LocalSurface{engine: engine}

	if !s.NeedsConfirmQuit() {
		t.Fatal("NeedsConfirmQuit() = false with confirmation enabled")
	}

	enabled = false
	if s.NeedsConfirmQuit() {
		t.Error("NeedsConfirmQuit() = true after the setting was turned off")
	}

	enabled = true
	if !s.NeedsConfirmQuit() {
		t.Error("NeedsConfirmQuit() = false after the setting was turned back on")
	}
}

func TestLocalSurface_UnsupportedBindingActions(t *testing.T) {
	engine := NewLocalEngine(LocalEngineOptions{})
	s := &LocalSurface{engine: engine}

	for _, action := range []BindingAction{
		BindingNewTab,
		BindingNewWindow,
		BindingSplitRight,
		BindingSplitDown,
		BindingToggleInspector,
		BindingCopyToClipboard,    // no CopyText configured
		BindingPasteFromClipboard, // no PasteText configured
	} {
		if err := s.PerformBindingAction(action); err != ErrActionUnsupported {
			t.Errorf("PerformBindingAction(%s) = %v, want ErrActionUnsupported", action, err)
		}
	}
}
