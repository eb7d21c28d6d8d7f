// Package timeutil parses relative day offsets such as "+3d" or "-1w2d".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays       = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// IsOffset reports whether input looks like a signed offset, the form
// ParseOffset accepts.
func IsOffset(input string) bool {
	s := strings.TrimSpace(input)
	return len(s) > 1 && (s[0] == '+' || s[0] == '-')
}

// ParseOffset turns a signed offset like "+3d", "-1w" or "+1w2d" into a
// number of calendar days. The sign is required.
func ParseOffset(input string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if !IsOffset(s) {
		return 0, fmt.Errorf("invalid offset %q, want +Nd or -Nw", input)
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}

	remaining := s[1:]
	total := 0
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		days, ok := unitDays[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total += value * days
		remaining = remaining[len(matches[0]):]
	}
	return sign * total, nil
}

// FormatOffset renders days using week and day tokens, e.g. "+1w2d".
func FormatOffset(days int) string {
	if days == 0 {
		return "+0d"
	}
	sign := "+"
	if days < 0 {
		sign, days = "-", -days
	}
	var b strings.Builder
	b.WriteString(sign)
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}
