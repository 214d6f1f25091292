package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType categorizes a flash message for icon and color selection.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash stays up without an explicit duration.
const DefaultFlashDuration = 4 * time.Second

// FlashTickMsg drives the flash auto-dismiss timer.
type FlashTickMsg struct{}

// FlashTick returns a command that fires a FlashTickMsg after a short delay.
// The app keeps ticking while a flash is visible and clears it once expired.
func FlashTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return FlashTickMsg{}
	})
}

// FlashMessage is a transient footer message.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

func (f *FlashMessage) icon() string {
	switch f.Type {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

func (f *FlashMessage) tint() color.Color {
	switch f.Type {
	case FlashError:
		return ColorError
	case FlashWarning:
		return ColorWarning
	case FlashSuccess:
		return ColorSuccess
	default:
		return ColorInfo
	}
}

// Footer represents the bottom footer bar with keybindings. A flash message,
// when present, replaces the keybindings until it expires.
type Footer struct {
	width        int
	bindings     []KeyBinding
	modalVisible bool
	hasSplits    bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "ctrl+t", Desc: "new tab"},
			{Key: "ctrl+n", Desc: "new window"},
			{Key: "ctrl+pgup/dn", Desc: "switch tab"},
			{Key: "ctrl+k", Desc: "find tab"},
			{Key: "ctrl+w", Desc: "close"},
			{Key: "ctrl+q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(modalVisible, hasSplits bool) {
	f.modalVisible = modalVisible
	f.hasSplits = hasSplits
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message with the default duration.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message with an explicit duration.
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// HasFlash reports whether a flash message is visible.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearFlash removes the flash message immediately.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// ClearIfExpired removes the flash message once its duration has passed.
// Reports whether it was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	// Flash messages take priority over keybindings
	if f.flashMessage != nil {
		style := lipgloss.NewStyle().Foreground(f.flashMessage.tint()).Bold(true)
		content := style.Render(f.flashMessage.icon() + " " + f.flashMessage.Text)
		return FooterStyle.Width(f.width).Render(content)
	}

	var parts []string

	if f.modalVisible {
		modalBindings := []KeyBinding{
			{Key: "enter", Desc: "confirm"},
			{Key: "esc", Desc: "cancel"},
		}
		for _, b := range modalBindings {
			parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
		}
	} else {
		for _, b := range f.bindings {
			parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
		}
		if f.hasSplits {
			parts = append(parts, FooterKeyStyle.Render("tab")+FooterDescStyle.Render(": next pane"))
		}
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}
