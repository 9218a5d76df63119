package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleFeed = `
interval: 2s
content: name_value
aggregation: max
series:
  - name: TEMP
    unit: "°C"
    values: [1, 2.5, null]
  - name: GATE
    values: ["A1", "B2"]
`

func TestParseFeed(t *testing.T) {
	feed, err := parseFeed([]byte(sampleFeed))
	if err != nil {
		t.Fatalf("parseFeed: %v", err)
	}
	if feed.Interval != 2*time.Second {
		t.Errorf("Interval = %v, want 2s", feed.Interval)
	}
	if feed.Content != ContentNameValue || feed.Aggregation != AggMax {
		t.Errorf("Content, Aggregation = %d, %d", feed.Content, feed.Aggregation)
	}
	if len(feed.Series) != 2 {
		t.Fatalf("got %d series, want 2", len(feed.Series))
	}
	temp := feed.Series[0]
	if temp.Name != "TEMP" || temp.Unit != "°C" {
		t.Errorf("series = %q %q", temp.Name, temp.Unit)
	}
	if len(temp.Values) != 3 || temp.Values[0] != 1 || temp.Values[1] != 2.5 || temp.Values[2] != nil {
		t.Errorf("Values = %#v", temp.Values)
	}
}

func TestParseFeedDefaults(t *testing.T) {
	feed, err := parseFeed([]byte("series:\n  - name: X\n    values: [1]\n"))
	if err != nil {
		t.Fatalf("parseFeed: %v", err)
	}
	if feed.Interval != defaultInterval || feed.Content != ContentValue || feed.Aggregation != AggLast {
		t.Errorf("defaults = %v, %d, %d", feed.Interval, feed.Content, feed.Aggregation)
	}
}

func TestParseFeedErrors(t *testing.T) {
	tests := map[string]string{
		"no series":        "interval: 1s\n",
		"bad interval":     "interval: soon\nseries:\n  - name: X\n",
		"negative":         "interval: -1s\nseries:\n  - name: X\n",
		"bad content":      "content: both\nseries:\n  - name: X\n",
		"bad aggregation":  "aggregation: median\nseries:\n  - name: X\n",
		"not yaml mapping": "- 1\n- 2\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parseFeed([]byte(data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	if err := os.WriteFile(path, []byte(sampleFeed), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFeed(path); err != nil {
		t.Errorf("loadFeed: %v", err)
	}

	_, err := loadFeed(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read feed") {
		t.Errorf("loadFeed(missing) error = %v", err)
	}
}

func TestSeriesWindow(t *testing.T) {
	s := Series{Values: []any{"a", "b", "c"}}
	tests := []struct {
		refresh int
		want    int
	}{
		{0, 1},
		{1, 2},
		{2, 3},
		{3, 1},
		{7, 2},
	}
	for _, tt := range tests {
		if got := len(s.window(tt.refresh)); got != tt.want {
			t.Errorf("window(%d) has %d values, want %d", tt.refresh, got, tt.want)
		}
	}
	if got := (Series{}).window(3); got != nil {
		t.Errorf("empty series window = %v, want nil", got)
	}
}

func TestComposeValue(t *testing.T) {
	s := Series{Name: "TEMP"}
	tests := []struct {
		name    string
		window  []any
		content ContentMode
		want    any
	}{
		{"value keeps number", []any{21.456}, ContentValue, 21.456},
		{"placeholder", []any{nil}, ContentValue, "---"},
		{"name only", []any{1}, ContentName, "TEMP"},
		{"name and value", []any{21.456}, ContentNameValue, "TEMP   21.5"},
		{"value and name", []any{"OK"}, ContentValueName, "OK   TEMP"},
		{"name and placeholder", nil, ContentNameValue, "TEMP   ---"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := composeValue(s, tt.window, AggLast, tt.content, 1); got != tt.want {
				t.Errorf("composeValue() = %v, want %v", got, tt.want)
			}
		})
	}
}
