package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	SaveDirectory string

	Mode         Mode
	NormalSpeed  float64
	SpinSpeed    float64
	Rounding     int
	DigitCount   int
	ForceNumeric bool
	Upcase       bool
	Sound        bool

	FeedPath    string
	Text        string
	Interval    time.Duration // zero keeps the feed's interval
	Content     string        // empty keeps the feed's content mode
	Aggregation string        // empty keeps the feed's aggregation
	ShowName    bool
	ShowUnit    bool

	Clock12h        bool
	ClockSeconds    bool
	ClockSeparator  string
	ClockDateFormat string
	ClockWeekday    bool
	ClockTimezone   string
}

func defaultConfig() *Config {
	return &Config{
		Mode:           ModeData,
		NormalSpeed:    defaultNormalSpeed,
		SpinSpeed:      defaultSpinSpeed,
		Rounding:       defaultRounding,
		DigitCount:     defaultDigitCount,
		Upcase:         true,
		ShowName:       true,
		ShowUnit:       true,
		ClockSeconds:   true,
		ClockSeparator: "colon",
	}
}

// loadConfig reads ~/.splitflaprc, or path when it is not empty. A missing
// or unreadable file leaves the defaults in place.
func loadConfig(path string) *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}
	if path == "" {
		if homeDir == "" {
			return config
		}
		path = filepath.Join(homeDir, ".splitflaprc")
	}

	file, err := os.Open(path)
	if err != nil {
		return config
	}
	defer file.Close()

	parseConfig(file, config, homeDir)
	return config
}

func parseConfig(r io.Reader, config *Config, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "mode":
			if strings.EqualFold(value, "clock") {
				config.Mode = ModeClock
			} else {
				config.Mode = ModeData
			}
		case "speed", "normal_speed":
			setFloat(&config.NormalSpeed, key, value)
		case "spinspeed", "spin_speed":
			setFloat(&config.SpinSpeed, key, value)
		case "rounding", "decimals":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.Rounding = n
			} else {
				log.Printf("config: ignoring %s = %q", key, value)
			}
		case "digitcount", "digit_count", "width":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.DigitCount = n
			} else {
				log.Printf("config: ignoring %s = %q", key, value)
			}
		case "forcenumeric", "force_numeric":
			config.ForceNumeric = parseBool(value)
		case "upcase", "uppercase":
			config.Upcase = parseBool(value)
		case "sound":
			config.Sound = parseBool(value)
		case "feed":
			config.FeedPath = expandPath(value, homeDir)
		case "text", "message":
			config.Text = value
		case "interval", "refresh":
			if d, err := time.ParseDuration(value); err == nil && d > 0 {
				config.Interval = d
			} else {
				log.Printf("config: ignoring %s = %q", key, value)
			}
		case "content", "display_content":
			config.Content = value
		case "aggregation", "value_aggregation":
			config.Aggregation = value
		case "showname", "show_name":
			config.ShowName = parseBool(value)
		case "showunit", "show_unit":
			config.ShowUnit = parseBool(value)
		case "clock12h", "clock_12h":
			config.Clock12h = parseBool(value)
		case "clockseconds", "clock_seconds":
			config.ClockSeconds = parseBool(value)
		case "clockseparator", "clock_separator":
			config.ClockSeparator = strings.ToLower(value)
		case "clockdateformat", "clock_date_format":
			config.ClockDateFormat = strings.ToUpper(value)
		case "clockweekday", "clock_weekday":
			config.ClockWeekday = parseBool(value)
		case "clocktimezone", "clock_timezone", "timezone":
			config.ClockTimezone = value
		}
	}
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

func (c *Config) engineOptions(drums *DrumRegistry) EngineOptions {
	return EngineOptions{
		Mode:         c.Mode,
		ForceNumeric: c.ForceNumeric,
		NormalSpeed:  c.NormalSpeed,
		SpinSpeed:    c.SpinSpeed,
		Drums:        drums,
	}
}

func (c *Config) clockOptions() ClockOptions {
	opts := ClockOptions{
		Hour12:     c.Clock12h,
		Seconds:    c.ClockSeconds,
		Separator:  c.ClockSeparator,
		DateFormat: c.ClockDateFormat,
		Weekday:    c.ClockWeekday,
	}
	if c.ClockTimezone != "" {
		loc, err := time.LoadLocation(c.ClockTimezone)
		if err != nil {
			log.Printf("config: unknown timezone %q: %v", c.ClockTimezone, err)
		} else {
			opts.Location = loc
		}
	}
	return opts
}

// flagPath expands a path given on the command line.
func flagPath(value string) string {
	homeDir, _ := os.UserHomeDir()
	return expandPath(value, homeDir)
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func setFloat(dst *float64, key, value string) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		log.Printf("config: ignoring %s = %q", key, value)
		return
	}
	*dst = f
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		return true
	}
	return false
}
