package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconDelete   = "🗑️"
)

// Window sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 220
)

// Status line behavior
const (
	StatusAutoHide = 4 * time.Second
)
