package main

import (
	"fmt"
	"strings"
	"time"
)

// ClockOptions controls the clock text.
type ClockOptions struct {
	Hour12     bool
	Seconds    bool
	Separator  string // colon, dot, dash, space or none
	DateFormat string // DD/MM/YYYY, MM/DD/YYYY, YYYY-MM-DD, DD.MM.YYYY or empty
	Weekday    bool
	Location   *time.Location
}

var clockSeparators = map[string]string{
	"colon": ":",
	"dot":   ".",
	"dash":  "-",
	"space": " ",
	"none":  "",
}

// clockString renders t as board text. In 12 hour mode the day period is
// returned separately so it can get its own tiles.
func clockString(opts ClockOptions, t time.Time) (string, string) {
	if opts.Location != nil {
		t = t.In(opts.Location)
	}

	hour := t.Hour()
	var h, amPm string
	if opts.Hour12 {
		amPm = "AM"
		if hour >= 12 {
			amPm = "PM"
		}
		hour %= 12
		if hour == 0 {
			hour = 12
		}
		h = fmt.Sprintf("%2d", hour)
	} else {
		h = fmt.Sprintf("%02d", hour)
	}

	sep, ok := clockSeparators[opts.Separator]
	if !ok {
		sep = ":"
	}

	timeStr := h + sep + fmt.Sprintf("%02d", t.Minute())
	if opts.Seconds {
		timeStr += sep + fmt.Sprintf("%02d", t.Second())
	}

	var parts []string
	if d := clockDate(opts.DateFormat, t); d != "" {
		parts = append(parts, d)
	}
	if opts.Weekday {
		parts = append(parts, t.Weekday().String()[:3])
	}
	parts = append(parts, timeStr)

	return strings.Join(parts, contentJoin), amPm
}

func clockDate(format string, t time.Time) string {
	y := fmt.Sprintf("%04d", t.Year())
	m := fmt.Sprintf("%02d", int(t.Month()))
	d := fmt.Sprintf("%02d", t.Day())
	switch format {
	case "DD/MM/YYYY":
		return d + "/" + m + "/" + y
	case "MM/DD/YYYY":
		return m + "/" + d + "/" + y
	case "YYYY-MM-DD":
		return y + "-" + m + "-" + d
	case "DD.MM.YYYY":
		return d + "." + m + "." + y
	}
	return ""
}

// zoneLabel is the short zone name shown above a clock.
func zoneLabel(loc *time.Location, t time.Time) string {
	if loc != nil {
		t = t.In(loc)
	}
	name, _ := t.Zone()
	if name == "" {
		return "Local"
	}
	return name
}
