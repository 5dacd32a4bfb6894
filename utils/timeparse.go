package utils

import (
	"fmt"
	"strings"
	"time"
)

// Clock layouts accepted by NormalizeClockTime, tried in order.
var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"15.04",
}

// NormalizeClockTime reduces a stored time value to canonical "HH:mm".
// Accepts 24h ("14:30", "14:30:00"), 12h ("2:30 PM", "02:30pm"), ISO-embedded
// ("2024-01-05T14:30:00Z") and space-delimited datetime ("2024-01-05 14:30:00")
// inputs, since bookings arrive from several intake surfaces.
func NormalizeClockTime(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty time value")
	}

	// ISO-embedded: take the clock portion after 'T'.
	if idx := strings.Index(s, "T"); idx > 0 && strings.Contains(s[:idx], "-") {
		s = strings.TrimRight(s[idx+1:], "Z")
	}

	// Space-delimited datetime: "2024-01-05 14:30:00".
	if fields := strings.Fields(s); len(fields) > 1 && strings.Contains(fields[0], "-") {
		s = strings.Join(fields[1:], " ")
	}

	s = strings.ToUpper(strings.TrimSpace(s))

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("unrecognized time value %q", raw)
}

// SameClockTime reports whether two stored time values refer to the same
// "HH:mm" slot, tolerating format differences. Unparseable values never match.
func SameClockTime(a, b string) bool {
	na, errA := NormalizeClockTime(a)
	nb, errB := NormalizeClockTime(b)
	if errA != nil || errB != nil {
		return false
	}
	return na == nb
}
