package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorPrice     = lipgloss.Color("78")  // Green
	colorRating    = lipgloss.Color("214") // Gold
)

// Header style for the top bar.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// SelectedItem style for the currently highlighted product row.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// NormalItem style for unselected product rows.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// CategoryBadge style for product category badges.
var CategoryBadge = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1).
	MarginRight(1)

// PriceStyle for product prices.
var PriceStyle = lipgloss.NewStyle().
	Foreground(colorPrice)

// RatingStyle for star ratings.
var RatingStyle = lipgloss.NewStyle().
	Foreground(colorRating)

// MetaItem style for secondary row text.
var MetaItem = lipgloss.NewStyle().
	Foreground(colorMuted)

// SkeletonRow style for loading placeholders.
var SkeletonRow = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// HelpStyle for help and empty-state text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// FilterBar style for the control bar above the list.
var FilterBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// FilterLabel style for active filter values.
var FilterLabel = lipgloss.NewStyle().
	Foreground(colorHighlight)

// DetailTitle style for the product title on the detail screen.
var DetailTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	MarginBottom(1)

// DetailLabel style for field labels on the detail screen.
var DetailLabel = lipgloss.NewStyle().
	Foreground(colorSecondary)

// DetailBody style for the description text.
var DetailBody = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252"))
