package ui

import "github.com/mattn/go-runewidth"

// Pre-calculated string widths for commonly used strings
var (
	EllipsisWidth = runewidth.StringWidth("...")
	BulletWidth   = runewidth.StringWidth("▶ ")
)

// Glyphs
const (
	BellIcon      = "🔔"
	LikeIcon      = "👍"
	DislikeIcon   = "👎"
	CursorGlyph   = "▏"
	SelectedGlyph = "▶ "
	Separator     = " • "
)
