package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Series is one named stream of values shown on its own board.
type Series struct {
	Name   string
	Unit   string
	Values []any
}

// Feed is the data source for data mode. Every refresh reveals one more
// value of each series.
type Feed struct {
	Interval    time.Duration
	Content     ContentMode
	Aggregation Aggregation
	Series      []Series
}

type feedFile struct {
	Interval    string `yaml:"interval"`
	Content     string `yaml:"content"`
	Aggregation string `yaml:"aggregation"`
	Series      []struct {
		Name   string `yaml:"name"`
		Unit   string `yaml:"unit"`
		Values []any  `yaml:"values"`
	} `yaml:"series"`
}

func loadFeed(filename string) (*Feed, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	feed, err := parseFeed(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return feed, nil
}

func parseFeed(data []byte) (*Feed, error) {
	var raw feedFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	if len(raw.Series) == 0 {
		return nil, fmt.Errorf("feed has no series")
	}

	feed := &Feed{Interval: defaultInterval}
	if raw.Interval != "" {
		d, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return nil, fmt.Errorf("interval: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("interval must be positive, got %s", raw.Interval)
		}
		feed.Interval = d
	}

	var err error
	if feed.Content, err = parseContentMode(raw.Content); err != nil {
		return nil, err
	}
	if feed.Aggregation, err = parseAggregation(raw.Aggregation); err != nil {
		return nil, err
	}

	for _, s := range raw.Series {
		feed.Series = append(feed.Series, Series{Name: s.Name, Unit: s.Unit, Values: s.Values})
	}
	return feed, nil
}

// defaultFeed is shown when no feed file is configured.
func defaultFeed() *Feed {
	return &Feed{
		Interval:    defaultInterval,
		Content:     ContentNameValue,
		Aggregation: AggLast,
		Series: []Series{
			{Name: "LHR", Values: []any{"ON TIME", "BOARDING", "GATE 12", "CLOSED"}},
			{Name: "CDG", Values: []any{"DELAYED", "DELAYED", "14:35", "BOARDING"}},
			{Name: "TEMP", Unit: "°C", Values: []any{21.4, 21.9, nil, 23.15, 22.6}},
		},
	}
}

// window returns the values visible after the given number of refreshes.
// The window grows by one value per refresh and wraps once it covers the
// whole series.
func (s Series) window(refresh int) []any {
	if len(s.Values) == 0 {
		return nil
	}
	n := refresh%len(s.Values) + 1
	return s.Values[:n]
}

// composeValue reduces a window and combines it with the series name. The
// result goes through FormatValue before it reaches the board.
func composeValue(s Series, window []any, agg Aggregation, content ContentMode, rounding int) any {
	var base any = reduceValues(window, agg)
	if base == nil {
		base = placeholderValue
	}

	display := fmt.Sprint(base)
	if f, ok := toFloat(base); ok {
		display = formatNumber(f, rounding)
	}

	switch content {
	case ContentName:
		return s.Name
	case ContentNameValue:
		return s.Name + contentJoin + display
	case ContentValueName:
		return display + contentJoin + s.Name
	default:
		return base
	}
}

func parseContentMode(s string) (ContentMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "value":
		return ContentValue, nil
	case "name":
		return ContentName, nil
	case "name_value", "namevalue":
		return ContentNameValue, nil
	case "value_name", "valuename":
		return ContentValueName, nil
	}
	return ContentValue, fmt.Errorf("unknown content mode %q", s)
}
