package core

import (
	"strconv"
	"strings"

	"schoolmenu/internal/types"
)

const (
	MinDays     = 1
	MaxDays     = 5
	DefaultDays = 3
)

const (
	DefaultTitle           = "School Lunch Menu"
	DefaultPrimaryColor    = "#323296"
	DefaultTextColor       = "#000000"
	DefaultBackgroundColor = "#ffffff"
)

var fontSizes = map[string]float64{
	"x-small": 0.6,
	"smaller": 0.7,
	"small":   0.8,
	"normal":  1.0,
	"large":   1.2,
	"larger":  1.4,
	"x-large": 1.6,
}

var truthyValues = map[string]struct{}{
	"1":    {},
	"true": {},
	"yes":  {},
	"on":   {},
}

// ParseSettings turns the raw settings mapping into typed settings. Only a
// missing schoolId or menuName is an error; every other bad value falls
// back to its default so stored configuration can never block rendering.
func ParseSettings(raw map[string]string) (types.Settings, error) {
	get := func(key string, fallback string) string {
		if value, ok := raw[key]; ok {
			return value
		}
		return fallback
	}

	schoolID := strings.TrimSpace(get("schoolId", ""))
	if schoolID == "" {
		return types.Settings{}, types.NewConfigError("schoolId is required")
	}
	menuName := strings.TrimSpace(get("menuName", ""))
	if menuName == "" {
		return types.Settings{}, types.NewConfigError("menuName is required")
	}

	title := strings.TrimSpace(get("customTitle", DefaultTitle))
	if title == "" {
		title = DefaultTitle
	}
	timestampFlag, ok := raw["showTimestamp"]
	if !ok {
		timestampFlag = get("displayRefreshTime", "true")
	}

	return types.Settings{
		DistrictID:      strings.TrimSpace(get("districtId", "")),
		SchoolID:        schoolID,
		MenuName:        menuName,
		Days:            parseDays(get("numDays", "")),
		Title:           title,
		ShowDate:        parseFlag(get("showDate", "true")),
		FontScale:       FontScale(get("fontSize", "normal")),
		PrimaryColor:    get("primaryColor", DefaultPrimaryColor),
		TextColor:       get("textColor", DefaultTextColor),
		BackgroundColor: get("backgroundColor", DefaultBackgroundColor),
		ShowTimestamp:   parseFlag(timestampFlag),
	}, nil
}

// FontScale maps a font-size keyword to its multiplier. Keywords match
// exactly; anything else, including "Large", scales by 1.0.
func FontScale(keyword string) float64 {
	if scale, ok := fontSizes[keyword]; ok {
		return scale
	}
	return 1.0
}

func parseDays(value string) int {
	days, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || days < MinDays || days > MaxDays {
		return DefaultDays
	}
	return days
}

func parseFlag(value string) bool {
	_, ok := truthyValues[strings.ToLower(strings.TrimSpace(value))]
	return ok
}
