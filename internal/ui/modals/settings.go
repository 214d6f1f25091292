package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SettingsState - State for the settings modal
// =============================================================================

const (
	optionConfirmClose  = "confirm-close"
	optionNotifications = "notifications"
)

// SettingsState edits the persisted configuration through a huh form. The
// caller reads the values back on Enter and writes them to the config.
type SettingsState struct {
	// Bound form values
	selectedTheme  string
	OriginalTheme  string // To detect if theme changed
	tabBarPosition string
	tabBarWidth    string

	// MultiSelect bindings
	generalOptions []string

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "tab/shift+tab to move, Enter to save, Esc to cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetSelectedTheme returns the chosen theme name.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged reports whether the theme differs from when the modal opened.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetTabBarPosition returns the chosen tab bar placement.
func (s *SettingsState) GetTabBarPosition() string {
	return s.tabBarPosition
}

// GetTabBarWidth returns the chosen tab sizing policy.
func (s *SettingsState) GetTabBarWidth() string {
	return s.tabBarWidth
}

// GetConfirmClose returns whether close confirmation is enabled.
func (s *SettingsState) GetConfirmClose() bool {
	for _, opt := range s.generalOptions {
		if opt == optionConfirmClose {
			return true
		}
	}
	return false
}

// GetNotificationsEnabled returns whether desktop notifications are enabled.
func (s *SettingsState) GetNotificationsEnabled() bool {
	for _, opt := range s.generalOptions {
		if opt == optionNotifications {
			return true
		}
	}
	return false
}

// NewSettingsState creates a new SettingsState with the current settings values.
func NewSettingsState(themes []string, themeDisplayNames []string, currentTheme string,
	tabBarPosition, tabBarWidth string,
	confirmClose, notificationsEnabled bool) *SettingsState {

	s := &SettingsState{
		selectedTheme:  currentTheme,
		OriginalTheme:  currentTheme,
		tabBarPosition: tabBarPosition,
		tabBarWidth:    tabBarWidth,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Confirm closing live sessions", optionConfirmClose).
			Selected(confirmClose),
		huh.NewOption("Desktop notifications", optionNotifications).
			Selected(notificationsEnabled),
	}
	if confirmClose {
		s.generalOptions = append(s.generalOptions, optionConfirmClose)
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewSelect[string]().
			Title("Tab bar position").
			Description("Side placements need the enhanced chrome variant").
			Options(
				huh.NewOption("Top", "top"),
				huh.NewOption("Bottom", "bottom"),
				huh.NewOption("Left", "left"),
				huh.NewOption("Right", "right"),
			).
			Value(&s.tabBarPosition),
		huh.NewSelect[string]().
			Title("Tab width").
			Options(
				huh.NewOption("Wide", "wide"),
				huh.NewOption("Compact", "compact"),
			).
			Value(&s.tabBarWidth),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(generalOpts...).
			Height(len(generalOpts)).
			Value(&s.generalOptions),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)

	initHuhForm(s.form)
	return s
}
