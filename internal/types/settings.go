package types

// Settings is the typed form of one render request's raw configuration.
type Settings struct {
	DistrictID      string
	SchoolID        string
	MenuName        string
	Days            int
	Title           string
	ShowDate        bool
	FontScale       float64
	PrimaryColor    string
	TextColor       string
	BackgroundColor string
	ShowTimestamp   bool
}

func (s Settings) Identity() MenuIdentity {
	return MenuIdentity{
		DistrictID: s.DistrictID,
		SiteID:     s.SchoolID,
		MenuName:   s.MenuName,
	}
}
