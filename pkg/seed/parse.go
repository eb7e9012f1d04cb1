package seed

import (
	"strconv"
	"strings"
)

const (
	defaultServingsMin = 2
	defaultServingsMax = 4
)

// leadingNumber parses the numeric prefix of s ("1.5k" -> 1.5, "30 мин" -> 30).
func leadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	seenDot := false
scan:
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			end = i + 1
		case r == '.' && !seenDot:
			seenDot = true
		default:
			break scan
		}
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func leadingInt(s string) int {
	n, ok := leadingNumber(s)
	if !ok {
		return 0
	}
	return int(n)
}

// ParseViews turns catalog view counts like "10k" or "950" into numbers.
func ParseViews(s string) int64 {
	n, ok := leadingNumber(s)
	if !ok {
		return 0
	}
	if strings.ContainsAny(s, "kK") {
		n *= 1000
	}
	return int64(n)
}

// ParsePortions reads "2-3 хүн" style ranges. A single number is used for both
// bounds, anything unreadable falls back to 2-4.
func ParsePortions(s string) (int, int) {
	if strings.TrimSpace(s) == "" {
		return defaultServingsMin, defaultServingsMax
	}
	parts := strings.SplitN(s, "-", 2)

	lo := leadingInt(parts[0])
	if lo <= 0 {
		lo = defaultServingsMin
	}

	hi := 0
	if len(parts) == 2 {
		hi = leadingInt(parts[1])
	}
	if hi <= 0 {
		hi = leadingInt(parts[0])
	}
	if hi <= 0 {
		hi = defaultServingsMax
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
