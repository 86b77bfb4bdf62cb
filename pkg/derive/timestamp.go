package derive

import (
	"strings"
	"time"
)

// layouts are tried in order when parsing creation timestamps.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// Timestamp is a parsed creation time. The zero value is Invalid and orders
// before every valid time.
type Timestamp struct {
	time  time.Time
	valid bool
}

// ParseTimestamp parses an API timestamp string.
// Unparsable or empty input yields an invalid Timestamp rather than an error.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{time: t, valid: true}
		}
	}
	return Timestamp{}
}

// Valid reports whether the timestamp was parsed successfully.
func (t Timestamp) Valid() bool {
	return t.valid
}

// Time returns the parsed time, or the zero time when invalid.
func (t Timestamp) Time() time.Time {
	return t.time
}

// Compare returns -1, 0 or +1 ordering t against u, with invalid timestamps
// ordered as the earliest possible time and equal to each other.
func (t Timestamp) Compare(u Timestamp) int {
	switch {
	case !t.valid && !u.valid:
		return 0
	case !t.valid:
		return -1
	case !u.valid:
		return 1
	default:
		return t.time.Compare(u.time)
	}
}
