// Package timecode converts between player clock strings (hh:mm:ss or mm:ss) and millisecond counts.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedTimeError reports a clock string that cannot be converted to milliseconds.
type MalformedTimeError struct {
	Text   string
	Reason string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time %q: %s", e.Text, e.Reason)
}

// Parse converts a clock string into milliseconds.
// The rightmost segment holds seconds, the next one minutes and an optional leftmost one hours.
func Parse(text string) (int64, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, &MalformedTimeError{Text: text, Reason: fmt.Sprintf("expected 2 or 3 segments, got %d", len(parts))}
	}

	// seconds, minutes, hours
	weights := []int64{1, 60, 3600}

	var total int64
	for i := 0; i < len(parts); i++ {
		segment := parts[len(parts)-1-i]
		if segment == "" {
			return 0, &MalformedTimeError{Text: text, Reason: "empty segment"}
		}

		n, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return 0, &MalformedTimeError{Text: text, Reason: fmt.Sprintf("segment %q is not a number", segment)}
		}

		total += int64(n) * weights[i]
	}

	return total * 1000, nil
}

// StripLeadingZeroHour removes a leading "00:" hour segment so short media reads as mm:ss.
func StripLeadingZeroHour(text string) string {
	if strings.Count(text, ":") == 2 && strings.HasPrefix(text, "00:") {
		return text[len("00:"):]
	}
	return text
}

// Format renders milliseconds as hh:mm:ss, dropping the hour segment when it is zero.
func Format(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	seconds := ms / 1000
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	if h == 0 {
		return fmt.Sprintf("%02d:%02d", m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
