package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
)

type model struct {
	width      int
	height     int
	config     *Config
	drums      *DrumRegistry
	feed       *Feed
	agg        Aggregation
	content    ContentMode
	refresh    int
	panels     []*panel
	selected   int
	mode       uiMode
	help       bool
	helpScroll int
	input      textinput.Model
	keys       keyMap
	animating  bool
	sound      *clickPlayer
	now        func() time.Time

	errorMessage   string
	successMessage string
}

// refreshMsg asks every feed and clock panel to repaint.
type refreshMsg time.Time

// frameMsg advances the animation of every board.
type frameMsg time.Time
