package core

import (
	"time"

	"schoolmenu/internal/types"
)

const PendingText = "Not yet published"
const MenuNotAvailableText = "Menu not available"

const isoDateLayout = "2006-01-02"

// NextSchoolDays walks forward from today (inclusive) and collects n
// Monday-Friday dates. Holidays are not known.
func NextSchoolDays(today time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	out := make([]time.Time, 0, n)
	cur := startOfDay(today)
	for len(out) < n {
		if cur.Weekday() != time.Saturday && cur.Weekday() != time.Sunday {
			out = append(out, cur)
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return out
}

// ProjectWindow maps each selected day onto the fetched menu. A day without
// data is pending when the fetch succeeded; after a failed fetch every day
// is unavailable, since pending would claim a successful fetch.
func ProjectWindow(today time.Time, days []time.Time, menu types.Menu, fetchOK bool) types.MenuWindow {
	window := types.MenuWindow{Days: make([]types.WindowDay, 0, len(days))}
	todayStart := startOfDay(today)
	for _, day := range days {
		entry := types.WindowDay{
			Date:  day,
			ISO:   day.Format(isoDateLayout),
			Items: []string{},
			State: types.DayStateUnavailable,
		}
		if fetchOK {
			if items, ok := menu.Lookup(entry.ISO); ok {
				entry.Items = append([]string(nil), items...)
				entry.State = types.DayStatePublished
			} else if !startOfDay(day).Before(todayStart) {
				entry.Items = []string{PendingText}
				entry.State = types.DayStatePending
			}
		}
		window.Days = append(window.Days, entry)
	}
	return window
}

// DegradedMenu is the stand-in menu used when fetching failed.
func DegradedMenu(today time.Time) types.Menu {
	return types.Menu{{Date: today.Format(isoDateLayout), Items: []string{MenuNotAvailableText}}}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
