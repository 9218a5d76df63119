package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "rc file to read instead of ~/.splitflaprc")
	feedPath := flag.String("feed", "", "YAML feed file for data mode")
	modeFlag := flag.String("mode", "", "data or clock")
	text := flag.String("text", "", "show a fixed message instead of the feed")
	sound := flag.Bool("sound", false, "play a click for every flap")
	debug := flag.Bool("debug", false, "log to splitflap.log")
	flag.Parse()

	if *debug || os.Getenv("SPLITFLAP_DEBUG") != "" {
		f, err := tea.LogToFile("splitflap.log", "splitflap")
		if err != nil {
			fmt.Fprintf(os.Stderr, "splitflap: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	config := loadConfig(*configPath)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "feed":
			config.FeedPath = flagPath(*feedPath)
		case "mode":
			if strings.EqualFold(*modeFlag, "clock") {
				config.Mode = ModeClock
			} else {
				config.Mode = ModeData
			}
		case "text":
			config.Text = *text
		case "sound":
			config.Sound = *sound
		}
	})

	feed := defaultFeed()
	if config.FeedPath != "" {
		var err error
		if feed, err = loadFeed(config.FeedPath); err != nil {
			fmt.Fprintf(os.Stderr, "splitflap: %v\n", err)
			os.Exit(1)
		}
	}

	m := newModel(config, feed, time.Now)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("program exited: %v", err)
		fmt.Fprintf(os.Stderr, "splitflap: %v\n", err)
		os.Exit(1)
	}
}

func newModel(config *Config, feed *Feed, now func() time.Time) model {
	input := textinput.New()
	input.Prompt = "Message: "
	input.CharLimit = 64

	m := model{
		config: config,
		drums:  NewDrumRegistry(),
		feed:   feed,
		keys:   defaultKeyMap,
		input:  input,
		sound:  newClickPlayer(config.Sound),
		now:    now,
	}

	if feed != nil {
		m.agg = feed.Aggregation
		m.content = feed.Content
	}
	if config.Aggregation != "" {
		if agg, err := parseAggregation(config.Aggregation); err == nil {
			m.agg = agg
		} else {
			log.Printf("config: %v", err)
		}
	}
	if config.Content != "" {
		if content, err := parseContentMode(config.Content); err == nil {
			m.content = content
		} else {
			log.Printf("config: %v", err)
		}
	}

	opts := config.engineOptions(m.drums)
	switch {
	case config.Mode == ModeClock:
		m.panels = []*panel{newClockPanel(opts)}
	case config.Text != "":
		m.panels = []*panel{newMessagePanel(config.Text, opts, config.DigitCount)}
	case feed != nil:
		for i, s := range feed.Series {
			m.panels = append(m.panels, newSeriesPanel(s, i, opts, config.DigitCount))
		}
	}

	start := m.now()
	for _, p := range m.panels {
		p.paint(&m, true, start)
	}
	return m
}

func (m model) Init() tea.Cmd {
	return refreshTick(m.interval())
}

func refreshTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// interval is the time between feed refreshes.
func (m *model) interval() time.Duration {
	switch {
	case m.config.Mode == ModeClock:
		return clockInterval
	case m.config.Interval > 0:
		return m.config.Interval
	case m.feed != nil && m.feed.Interval > 0:
		return m.feed.Interval
	}
	return defaultInterval
}

// startFrames starts the frame loop if a board has work and the loop is
// not already running.
func (m *model) startFrames() tea.Cmd {
	if m.animating || !m.anyBusy() {
		return nil
	}
	m.animating = true
	return frameTick()
}

func (m *model) anyBusy() bool {
	for _, p := range m.panels {
		if p.busy() {
			return true
		}
	}
	return false
}

// repaint pushes fresh text to one panel and makes sure frames run.
func (m *model) repaint(p *panel) tea.Cmd {
	p.paint(m, false, m.now())
	return m.startFrames()
}

func (m *model) teardown() {
	for _, p := range m.panels {
		p.teardown()
	}
	m.animating = false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		if m.input.Width < 1 {
			m.input.Width = 1
		}
		return m, nil

	case refreshMsg:
		m.refresh++
		now := time.Time(msg)
		for _, p := range m.panels {
			if !p.pinned {
				p.paint(&m, false, now)
			}
		}
		cmd := m.startFrames()
		return m, tea.Batch(refreshTick(m.interval()), cmd)

	case frameMsg:
		now := time.Time(msg)
		flips := 0
		for _, p := range m.panels {
			flips += p.advance(now)
		}
		m.sound.Click(flips)
		if m.anyBusy() {
			return m, frameTick()
		}
		m.animating = false
		return m, nil

	case tea.KeyMsg:
		if m.mode == uiEditing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = uiNormal
		m.input.Blur()
		p := m.selectedPanel()
		if p == nil {
			return m, nil
		}
		m.recordMessage(p, true, cleanClipboardText(m.input.Value()))
		m.successMessage = "Message shown"
		cmd := m.repaint(p)
		return m, cmd
	case key.Matches(msg, m.keys.Cancel):
		m.mode = uiNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.teardown()
		m.sound.Close()
		return m, tea.Quit
	}

	if m.help {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Cancel):
			m.help = false
			m.helpScroll = 0
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.handleNavigation(msg)
		}
		return m, nil
	}

	m.errorMessage = ""
	m.successMessage = ""

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help = true
		m.helpScroll = 0

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.handleNavigation(msg)

	case key.Matches(msg, m.keys.Edit):
		p := m.selectedPanel()
		if p == nil {
			return m, nil
		}
		m.mode = uiEditing
		m.input.SetValue(strings.TrimSpace(p.board.Target()))
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Resume):
		p := m.selectedPanel()
		if p == nil || !p.pinned {
			return m, nil
		}
		if p.series < 0 && !p.clock {
			m.errorMessage = "No feed behind this board"
			return m, nil
		}
		m.recordMessage(p, false, p.message)
		m.successMessage = "Feed resumed"
		cmd := m.repaint(p)
		return m, cmd

	case key.Matches(msg, m.keys.Undo):
		if !m.undo() {
			m.successMessage = "Nothing to undo"
			return m, nil
		}
		cmd := m.repaint(m.selectedPanel())
		return m, cmd

	case key.Matches(msg, m.keys.Redo):
		if !m.redo() {
			m.successMessage = "Nothing to redo"
			return m, nil
		}
		cmd := m.repaint(m.selectedPanel())
		return m, cmd

	case key.Matches(msg, m.keys.Copy):
		p := m.selectedPanel()
		if p == nil {
			return m, nil
		}
		if err := writeClipboardText(strings.TrimSpace(p.board.Text())); err != nil {
			log.Printf("clipboard write: %v", err)
			m.errorMessage = fmt.Sprintf("Error copying: %s", err.Error())
			return m, nil
		}
		m.successMessage = "Copied board to clipboard"

	case key.Matches(msg, m.keys.Paste):
		p := m.selectedPanel()
		if p == nil {
			return m, nil
		}
		raw, err := readClipboardText()
		if err != nil {
			log.Printf("clipboard read: %v", err)
			m.errorMessage = fmt.Sprintf("Error pasting: %s", err.Error())
			return m, nil
		}
		text := cleanClipboardText(raw)
		if text == "" {
			m.errorMessage = "Clipboard is empty"
			return m, nil
		}
		m.recordMessage(p, true, text)
		cmd := m.repaint(p)
		return m, cmd

	case key.Matches(msg, m.keys.ToggleNumeric):
		m.config.ForceNumeric = !m.config.ForceNumeric
		opts := m.config.engineOptions(m.drums)
		now := m.now()
		for _, p := range m.panels {
			p.setOptions(opts)
			p.paint(&m, true, now)
		}
		if m.config.ForceNumeric {
			m.successMessage = "Strict numeric drum on"
		} else {
			m.successMessage = "Strict numeric drum off"
		}

	case key.Matches(msg, m.keys.Mute):
		want := !m.sound.Enabled()
		m.sound.SetEnabled(want)
		m.config.Sound = m.sound.Enabled()
		switch {
		case want && !m.sound.Enabled():
			m.errorMessage = "Sound unavailable"
		case want:
			m.successMessage = "Sound on"
		default:
			m.successMessage = "Sound off"
		}

	case key.Matches(msg, m.keys.ExportPNG):
		m.export("splitflap.png", m.exportPNG)

	case key.Matches(msg, m.keys.ExportText):
		m.export("splitflap.txt", m.exportText)
	}
	return m, nil
}

func (m *model) export(filename string, write func(string) error) {
	path := m.config.GetSavePath(filename)
	if err := write(path); err != nil {
		log.Printf("export %s: %v", path, err)
		m.errorMessage = fmt.Sprintf("Error exporting: %s", err.Error())
		return
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	m.successMessage = fmt.Sprintf("Exported to %s", absPath)
}
