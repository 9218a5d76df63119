package main

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatValue renders v as board text left-padded to at least minWidth
// runes. Numbers use fixed-point notation with rounding decimals; a
// negative rounding means the default of one decimal. nil renders empty.
func FormatValue(v any, rounding, minWidth int) string {
	var s string
	if f, ok := toFloat(v); ok {
		s = formatNumber(f, rounding)
	} else {
		switch t := v.(type) {
		case nil:
		case string:
			s = t
		case fmt.Stringer:
			s = t.String()
		default:
			s = fmt.Sprint(t)
		}
	}
	return padLeft(s, minWidth)
}

// formatNumber renders f with exactly rounding decimals. Ties in the exact
// binary value round away from zero, so 2.5 gives "3" but 1.005 (stored
// just below the tie) gives "1.00" at two decimals.
func formatNumber(f float64, rounding int) string {
	if rounding < 0 {
		rounding = defaultRounding
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', rounding, 64)
	}

	// A float64 has at most 1074 fractional decimal digits, so this is exact.
	exact := new(big.Float).SetFloat64(math.Abs(f)).Text('f', 1100)
	intPart, frac, _ := strings.Cut(exact, ".")
	if len(frac) < rounding+1 {
		frac += strings.Repeat("0", rounding+1-len(frac))
	}

	digits := []byte(intPart + frac[:rounding])
	if frac[rounding] >= '5' {
		digits = incrementDecimal(digits)
	}

	s := string(digits)
	if rounding > 0 {
		s = s[:len(s)-rounding] + "." + s[len(s)-rounding:]
	}
	if f < 0 {
		s = "-" + s
	}
	return s
}

// incrementDecimal adds one to a string of decimal digits.
func incrementDecimal(digits []byte) []byte {
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return digits
		}
		digits[i] = '0'
	}
	return append([]byte{'1'}, digits...)
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// toFloat reports whether v is one of Go's numeric kinds.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
