package adapters

import (
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

var clockLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseClockOverride parses an operator supplied "now" in local time
// unless the value carries its own offset.
func ParseClockOverride(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range clockLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("unrecognized time " + trimmed + ", expected RFC3339 or YYYY-MM-DD[ HH:MM]")
}

// FixedClock returns a clock frozen at value, or time.Now when value is
// empty.
func FixedClock(value string) (func() time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Now, nil
	}
	fixed, err := ParseClockOverride(value)
	if err != nil {
		return nil, err
	}
	return func() time.Time { return fixed }, nil
}
