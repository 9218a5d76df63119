package main

import (
	"strings"
	"time"
)

// panel is one labelled board on screen.
type panel struct {
	name   string
	unit   string
	series int // index into the feed, -1 when the panel has no series
	clock  bool

	board *Board
	amPm  *Board

	pinned  bool // a manual message overrides the feed
	message string

	undoStack []messageChange
	redoStack []messageChange
}

func newSeriesPanel(s Series, index int, opts EngineOptions, width int) *panel {
	return &panel{
		name:   s.Name,
		unit:   s.Unit,
		series: index,
		board:  NewBoard(opts, width),
	}
}

func newClockPanel(opts EngineOptions) *panel {
	return &panel{
		series: -1,
		clock:  true,
		board:  NewBoard(opts, 0),
		amPm:   NewBoard(opts, 0),
	}
}

func newMessagePanel(message string, opts EngineOptions, width int) *panel {
	return &panel{
		series:  -1,
		board:   NewBoard(opts, width),
		pinned:  true,
		message: message,
	}
}

// text computes what the panel should show at now. The second result is
// the AM/PM text for clocks.
func (p *panel) text(m *model, now time.Time) (string, string) {
	cfg := m.config
	switch {
	case p.pinned:
		return m.boardText(p.message), ""
	case p.clock:
		opts := cfg.clockOptions()
		text, amPm := clockString(opts, now)
		if cfg.ShowName {
			p.name = zoneLabel(opts.Location, now)
		}
		return text, amPm
	case p.series >= 0 && m.feed != nil && p.series < len(m.feed.Series):
		s := m.feed.Series[p.series]
		value := composeValue(s, s.window(m.refresh), m.agg, m.content, cfg.Rounding)
		return m.boardText(FormatValue(value, cfg.Rounding, cfg.DigitCount)), ""
	}
	return "", ""
}

// paint pushes the panel's current text to its boards.
func (p *panel) paint(m *model, skip bool, now time.Time) {
	text, amPm := p.text(m, now)
	p.board.Update(text, skip, now)
	if p.amPm != nil {
		p.amPm.Update(amPm, skip, now)
	}
}

func (p *panel) busy() bool {
	if p.board.Busy() {
		return true
	}
	return p.amPm != nil && p.amPm.Busy()
}

func (p *panel) advance(now time.Time) int {
	n := p.board.Advance(now)
	if p.amPm != nil {
		n += p.amPm.Advance(now)
	}
	return n
}

func (p *panel) setOptions(opts EngineOptions) {
	p.board.SetOptions(opts)
	if p.amPm != nil {
		p.amPm.SetOptions(opts)
	}
}

func (p *panel) teardown() {
	p.board.Teardown()
	if p.amPm != nil {
		p.amPm.Teardown()
	}
}

// boardText applies the text folding that happens before the engine sees
// the characters.
func (m *model) boardText(s string) string {
	if m.config.Upcase {
		s = strings.ToUpper(s)
	}
	return s
}
