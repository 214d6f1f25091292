// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants
const (
	// HeaderHeight is the height of the title bar in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// TabBarHeight is the height of a horizontal tab bar in lines
	TabBarHeight = 1

	// SideTabBarWidth is the column width of a vertical tab bar
	SideTabBarWidth = 20

	// DefaultWidth is the fallback width before the first resize event
	DefaultWidth = 80

	// DefaultHeight is the fallback height before the first resize event
	DefaultHeight = 24
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
