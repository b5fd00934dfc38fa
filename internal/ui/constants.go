// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// FooterHeight is the status line under the carousel.
	FooterHeight = 1

	// HeaderHeight is the deck title line.
	HeaderHeight = 1

	// NotificationHeight is the line reserved for transient messages.
	NotificationHeight = 1

	// CardBorder is the width and height consumed by a card border.
	CardBorder = 2

	// CardPadding is the horizontal padding inside a card border.
	CardPadding = 2

	// MinCardWidth is the narrowest card drawn with a border; narrower cards
	// show the title only.
	MinCardWidth = 8

	// MinCardHeight is the lowest card drawn with a border.
	MinCardHeight = 4
)
