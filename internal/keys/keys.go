// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "1", "y", "?" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}.String()    // "up"
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}.String()  // "down"
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}.String()  // "left"
	Right = tea.KeyPressMsg{Code: tea.KeyRight}.String() // "right"
	Home  = tea.KeyPressMsg{Code: tea.KeyHome}.String()  // "home"
	End   = tea.KeyPressMsg{Code: tea.KeyEnd}.String()   // "end"
)

// Action keys
var (
	Enter    = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab      = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Space    = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Escape   = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC          = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()                // "ctrl+c"
	CtrlD          = (tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}).String()                // "ctrl+d"
	CtrlT          = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String()                // "ctrl+t"
	CtrlW          = (tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}).String()                // "ctrl+w"
	CtrlN          = (tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}).String()                // "ctrl+n"
	CtrlQ          = (tea.KeyPressMsg{Code: 'q', Mod: tea.ModCtrl}).String()                // "ctrl+q"
	CtrlK          = (tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl}).String()                // "ctrl+k"
	CtrlR          = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String()                // "ctrl+r"
	CtrlShiftC     = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl | tea.ModShift}).String() // "ctrl+shift+c"
	CtrlShiftV     = (tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl | tea.ModShift}).String() // "ctrl+shift+v"
	CtrlShiftRight = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl | tea.ModShift}).String()
	CtrlShiftDown  = (tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl | tea.ModShift}).String()
	CtrlPgUp       = (tea.KeyPressMsg{Code: tea.KeyPgUp, Mod: tea.ModCtrl}).String()   // "ctrl+pgup"
	CtrlPgDown     = (tea.KeyPressMsg{Code: tea.KeyPgDown, Mod: tea.ModCtrl}).String() // "ctrl+pgdown"
)

// Alt combinations (tab selection by ordinal)
var (
	Alt1 = (tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt}).String() // "alt+1"
	Alt2 = (tea.KeyPressMsg{Code: '2', Mod: tea.ModAlt}).String() // "alt+2"
	Alt3 = (tea.KeyPressMsg{Code: '3', Mod: tea.ModAlt}).String() // "alt+3"
	Alt4 = (tea.KeyPressMsg{Code: '4', Mod: tea.ModAlt}).String() // "alt+4"
	Alt5 = (tea.KeyPressMsg{Code: '5', Mod: tea.ModAlt}).String() // "alt+5"
	Alt6 = (tea.KeyPressMsg{Code: '6', Mod: tea.ModAlt}).String() // "alt+6"
	Alt7 = (tea.KeyPressMsg{Code: '7', Mod: tea.ModAlt}).String() // "alt+7"
	Alt8 = (tea.KeyPressMsg{Code: '8', Mod: tea.ModAlt}).String() // "alt+8"
	Alt9 = (tea.KeyPressMsg{Code: '9', Mod: tea.ModAlt}).String() // "alt+9"
)

// OrdinalForAltKey returns the 1-based tab ordinal for an alt+digit key string,
// or 0 when the key is not an alt+digit binding. Ordinal 0 never selects a tab.
func OrdinalForAltKey(key string) int {
	alts := []string{Alt1, Alt2, Alt3, Alt4, Alt5, Alt6, Alt7, Alt8, Alt9}
	for i, k := range alts {
		if key == k {
			return i + 1
		}
	}
	return 0
}
