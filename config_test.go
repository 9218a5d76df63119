package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	rc := `# split-flap settings
mode = clock
speed = 0.3
spin_speed = -1
rounding=2
Digit_Count = 8
force_numeric = yes
upcase = off
interval = 5s
content = name
aggregation = mean
clock_12h = true
clock_separator = DOT
clock_date_format = dd/mm/yyyy
clock_timezone = Europe/Paris
save_directory = ~/flaps
this line is ignored
`
	config := defaultConfig()
	parseConfig(strings.NewReader(rc), config, "/home/flap")

	if config.Mode != ModeClock {
		t.Errorf("Mode = %d, want clock", config.Mode)
	}
	if config.NormalSpeed != 0.3 {
		t.Errorf("NormalSpeed = %v, want 0.3", config.NormalSpeed)
	}
	if config.SpinSpeed != defaultSpinSpeed {
		t.Errorf("SpinSpeed = %v, want default %v", config.SpinSpeed, defaultSpinSpeed)
	}
	if config.Rounding != 2 || config.DigitCount != 8 {
		t.Errorf("Rounding, DigitCount = %d, %d; want 2, 8", config.Rounding, config.DigitCount)
	}
	if !config.ForceNumeric || config.Upcase {
		t.Errorf("ForceNumeric, Upcase = %v, %v; want true, false", config.ForceNumeric, config.Upcase)
	}
	if config.Interval != 5*time.Second {
		t.Errorf("Interval = %v, want 5s", config.Interval)
	}
	if config.Content != "name" || config.Aggregation != "mean" {
		t.Errorf("Content, Aggregation = %q, %q", config.Content, config.Aggregation)
	}
	if !config.Clock12h || config.ClockSeparator != "dot" || config.ClockDateFormat != "DD/MM/YYYY" {
		t.Errorf("clock settings = %v, %q, %q", config.Clock12h, config.ClockSeparator, config.ClockDateFormat)
	}
	if config.ClockTimezone != "Europe/Paris" {
		t.Errorf("ClockTimezone = %q", config.ClockTimezone)
	}
	if config.SaveDirectory != "/home/flap/flaps" {
		t.Errorf("SaveDirectory = %q, want /home/flap/flaps", config.SaveDirectory)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := defaultConfig()
	if config.Mode != ModeData || !config.Upcase || !config.ShowName || !config.ClockSeconds {
		t.Errorf("unexpected defaults: %+v", config)
	}
	opts := config.engineOptions(nil)
	if opts.NormalSpeed != defaultNormalSpeed || opts.SpinSpeed != defaultSpinSpeed {
		t.Errorf("engine speeds = %v, %v", opts.NormalSpeed, opts.SpinSpeed)
	}
}

func TestLoadConfigFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rc")
	if err := os.WriteFile(path, []byte("sound = 1\ntext = hello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	config := loadConfig(path)
	if !config.Sound || config.Text != "hello" {
		t.Errorf("Sound, Text = %v, %q", config.Sound, config.Text)
	}

	missing := loadConfig(filepath.Join(t.TempDir(), "nope"))
	if missing.DigitCount != defaultDigitCount {
		t.Errorf("missing file should leave defaults, got DigitCount %d", missing.DigitCount)
	}
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	if got := config.GetSavePath("board.png"); got != "board.png" {
		t.Errorf("GetSavePath without directory = %q", got)
	}

	dir := filepath.Join(t.TempDir(), "exports")
	config.SaveDirectory = dir
	if got := config.GetSavePath("board.png"); got != filepath.Join(dir, "board.png") {
		t.Errorf("GetSavePath = %q", got)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("save directory not created: %v", err)
	}
}

func TestFlagPathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got, want := flagPath("~/board.yaml"), filepath.Join(home, "board.yaml"); got != want {
		t.Errorf("flagPath = %q, want %q", got, want)
	}
}

func TestClockOptionsTimezone(t *testing.T) {
	config := defaultConfig()
	config.ClockTimezone = "UTC"
	if opts := config.clockOptions(); opts.Location == nil || opts.Location.String() != "UTC" {
		t.Errorf("Location = %v, want UTC", opts.Location)
	}

	config.ClockTimezone = "Nowhere/Special"
	if opts := config.clockOptions(); opts.Location != nil {
		t.Errorf("unknown zone should leave Location nil, got %v", opts.Location)
	}
}
