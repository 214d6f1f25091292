package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Header represents the window title bar.
type Header struct {
	width      int
	title      string
	tabIndex   int // 1-based position of the current tab
	tabCount   int
	fullscreen bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the window title to display
func (h *Header) SetTitle(title string) {
	h.title = title
}

// SetTabPosition sets the current tab ordinal and total for the right side.
func (h *Header) SetTabPosition(index, count int) {
	h.tabIndex = index
	h.tabCount = count
}

// SetFullscreen toggles the fullscreen indicator.
func (h *Header) SetFullscreen(fullscreen bool) {
	h.fullscreen = fullscreen
}

// View renders the header
func (h *Header) View() string {
	left := " " + h.title
	var right string
	if h.tabCount > 0 {
		right = fmt.Sprintf("%d/%d", h.tabIndex, h.tabCount)
	}
	if h.fullscreen {
		right += " ⛶"
	}
	if right != "" {
		right += " "
	}

	padding := h.width - runewidth.StringWidth(left) - runewidth.StringWidth(right) - 2
	if padding < 0 {
		padding = 0
	}

	return HeaderStyle.Width(h.width).Render(left + strings.Repeat(" ", padding) + right)
}
