package main

import (
	"math"
	"testing"
)

func TestReduceValues(t *testing.T) {
	values := []any{nil, 3, 1.5, "x", nil, 7}
	tests := []struct {
		agg  Aggregation
		want any
	}{
		{AggLast, 7},
		{AggLastNotNull, 7},
		{AggFirst, nil},
		{AggFirstNotNull, 3},
		{AggMin, 1.5},
		{AggMax, 7.0},
		{AggSum, 11.5},
		{AggMean, 11.5 / 3},
		{AggCount, 6},
	}
	for _, tt := range tests {
		if got := reduceValues(values, tt.agg); got != tt.want {
			t.Errorf("reduceValues(%d) = %v (%T), want %v (%T)", tt.agg, got, got, tt.want, tt.want)
		}
	}
}

func TestReduceValuesEdgeCases(t *testing.T) {
	if got := reduceValues(nil, AggLast); got != nil {
		t.Errorf("empty window = %v, want nil", got)
	}
	if got := reduceValues([]any{"a", nil}, AggSum); got != 0.0 {
		t.Errorf("sum without numbers = %v, want 0", got)
	}
	if got := reduceValues([]any{"a"}, AggMean); got != nil {
		t.Errorf("mean without numbers = %v, want nil", got)
	}
	if got := reduceValues([]any{"a", nil}, AggLastNotNull); got != "a" {
		t.Errorf("lastNotNull = %v, want a", got)
	}
	if got := reduceValues([]any{math.NaN(), 2.0}, AggMin); got != 2.0 {
		t.Errorf("min skipping NaN = %v, want 2", got)
	}
	if got := reduceValues([]any{math.Inf(1), 2.0}, AggMax); got != math.Inf(1) {
		t.Errorf("max with +Inf = %v, want +Inf", got)
	}
	if got := reduceValues([]any{math.Inf(-1), 2.0, math.NaN()}, AggMin); got != math.Inf(-1) {
		t.Errorf("min with -Inf = %v, want -Inf", got)
	}
}

func TestParseAggregation(t *testing.T) {
	tests := map[string]Aggregation{
		"":             AggLast,
		"last":         AggLast,
		"lastNotNull":  AggLastNotNull,
		"first":        AggFirst,
		"FIRSTNOTNULL": AggFirstNotNull,
		"min":          AggMin,
		"max":          AggMax,
		"avg":          AggMean,
		" sum ":        AggSum,
		"count":        AggCount,
	}
	for in, want := range tests {
		got, err := parseAggregation(in)
		if err != nil {
			t.Errorf("parseAggregation(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("parseAggregation(%q) = %d, want %d", in, got, want)
		}
	}
	if _, err := parseAggregation("median"); err == nil {
		t.Error("expected an error for an unknown aggregation")
	}
}
