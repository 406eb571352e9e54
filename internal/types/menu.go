package types

import "sort"

type MenuIdentity struct {
	DistrictID string
	SiteID     string
	MenuName   string
}

type Site struct {
	ID   string
	Name string
}

type MenuType struct {
	ID   string
	Name string
}

// RawMenuItem is a provider item as decoded from the wire. Month is
// 0-indexed when present; Day keeps its raw text so malformed values can be
// skipped by the fetcher instead of failing the decode.
type RawMenuItem struct {
	Day         string
	HasDay      bool
	Month       *int
	Year        *int
	ProductName string
}

type MenuDay struct {
	Date  string   `yaml:"date" json:"date"`
	Items []string `yaml:"items" json:"items"`
}

// Menu is ordered by date ascending with unique dates.
type Menu []MenuDay

func (m Menu) Len() int {
	return len(m)
}

func (m Menu) Dates() []string {
	dates := make([]string, 0, len(m))
	for _, day := range m {
		dates = append(dates, day.Date)
	}
	return dates
}

func (m Menu) Lookup(date string) ([]string, bool) {
	idx := sort.Search(len(m), func(i int) bool {
		return m[i].Date >= date
	})
	if idx < len(m) && m[idx].Date == date {
		return m[idx].Items, true
	}
	return nil, false
}
