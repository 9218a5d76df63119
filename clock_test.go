package main

import (
	"testing"
	"time"
)

func TestClockString(t *testing.T) {
	afternoon := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	midnight := time.Date(2024, 3, 5, 0, 5, 0, 0, time.UTC)

	tests := []struct {
		name     string
		opts     ClockOptions
		at       time.Time
		wantText string
		wantAmPm string
	}{
		{"24h with seconds", ClockOptions{Seconds: true, Separator: "colon"}, afternoon, "14:07:09", ""},
		{"12h dot", ClockOptions{Hour12: true, Separator: "dot"}, afternoon, " 2.07", "PM"},
		{"12h midnight", ClockOptions{Hour12: true, Separator: "colon"}, midnight, "12:05", "AM"},
		{"no separator", ClockOptions{Separator: "none"}, afternoon, "1407", ""},
		{"unknown separator", ClockOptions{Separator: "pipe"}, afternoon, "14:07", ""},
		{"date and weekday", ClockOptions{Separator: "colon", DateFormat: "YYYY-MM-DD", Weekday: true}, afternoon, "2024-03-05   Tue   14:07", ""},
		{"european date", ClockOptions{Separator: "colon", DateFormat: "DD.MM.YYYY"}, afternoon, "05.03.2024   14:07", ""},
		{"other zone", ClockOptions{Separator: "colon", Location: time.FixedZone("X", 3600)}, afternoon, "15:07", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, amPm := clockString(tt.opts, tt.at)
			if text != tt.wantText || amPm != tt.wantAmPm {
				t.Errorf("clockString() = %q, %q; want %q, %q", text, amPm, tt.wantText, tt.wantAmPm)
			}
		})
	}
}

func TestClockDateFormats(t *testing.T) {
	at := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	tests := map[string]string{
		"DD/MM/YYYY": "05/03/2024",
		"MM/DD/YYYY": "03/05/2024",
		"YYYY-MM-DD": "2024-03-05",
		"DD.MM.YYYY": "05.03.2024",
		"":           "",
		"YY":         "",
	}
	for format, want := range tests {
		if got := clockDate(format, at); got != want {
			t.Errorf("clockDate(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestZoneLabel(t *testing.T) {
	at := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	if got := zoneLabel(nil, at); got != "UTC" {
		t.Errorf("zoneLabel(nil) = %q, want UTC", got)
	}
	if got := zoneLabel(time.FixedZone("CET", 3600), at); got != "CET" {
		t.Errorf("zoneLabel(CET) = %q, want CET", got)
	}
	if got := zoneLabel(time.FixedZone("", 0), at); got != "Local" {
		t.Errorf("zoneLabel(unnamed) = %q, want Local", got)
	}
}
