package types

import "time"

type WindowDay struct {
	Date  time.Time
	ISO   string
	Items []string
	State DayState
}

// MenuWindow holds exactly one entry per selected school day.
type MenuWindow struct {
	Days []WindowDay
}

func (w MenuWindow) ISODates() []string {
	out := make([]string, 0, len(w.Days))
	for _, day := range w.Days {
		out = append(out, day.ISO)
	}
	return out
}

func (w MenuWindow) Items() map[string][]string {
	out := make(map[string][]string, len(w.Days))
	for _, day := range w.Days {
		out[day.ISO] = day.Items
	}
	return out
}
