package main

import (
	"fmt"
	"math"
	"strings"
)

func parseAggregation(s string) (Aggregation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return AggLast, nil
	case "lastnotnull", "last_not_null":
		return AggLastNotNull, nil
	case "first":
		return AggFirst, nil
	case "firstnotnull", "first_not_null":
		return AggFirstNotNull, nil
	case "min":
		return AggMin, nil
	case "max":
		return AggMax, nil
	case "mean", "avg", "average":
		return AggMean, nil
	case "sum":
		return AggSum, nil
	case "count":
		return AggCount, nil
	}
	return AggLast, fmt.Errorf("unknown aggregation %q", s)
}

// reduceValues collapses a series window to the value shown on the board.
// NaN is skipped by min, max, mean and sum. Infinities take part.
func reduceValues(values []any, agg Aggregation) any {
	if len(values) == 0 {
		return nil
	}

	var nums []float64
	for _, v := range values {
		if f, ok := toFloat(v); ok && !math.IsNaN(f) {
			nums = append(nums, f)
		}
	}

	switch agg {
	case AggFirst:
		return values[0]
	case AggFirstNotNull:
		for _, v := range values {
			if v != nil {
				return v
			}
		}
		return nil
	case AggLastNotNull:
		for i := len(values) - 1; i >= 0; i-- {
			if values[i] != nil {
				return values[i]
			}
		}
		return nil
	case AggMin:
		if len(nums) == 0 {
			return nil
		}
		m := nums[0]
		for _, f := range nums[1:] {
			m = math.Min(m, f)
		}
		return m
	case AggMax:
		if len(nums) == 0 {
			return nil
		}
		m := nums[0]
		for _, f := range nums[1:] {
			m = math.Max(m, f)
		}
		return m
	case AggSum:
		sum := 0.0
		for _, f := range nums {
			sum += f
		}
		return sum
	case AggMean:
		if len(nums) == 0 {
			return nil
		}
		sum := 0.0
		for _, f := range nums {
			sum += f
		}
		return sum / float64(len(nums))
	case AggCount:
		return len(values)
	default:
		return values[len(values)-1]
	}
}
