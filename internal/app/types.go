package app

import "schoolmenu/internal/types"

// SourceOptions selects the GraphQL provider. Zero values fall back to the
// public endpoint and a 30 second timeout.
type SourceOptions struct {
	Endpoint        string
	TimeoutSec      int
	PublishLocation string
}

type DeviceOptions struct {
	Width       int
	Height      int
	Orientation string
}

type RenderRequest struct {
	SettingsPath string
	// Overrides replace individual raw settings; empty values are ignored.
	Overrides   map[string]string
	Source      SourceOptions
	Device      DeviceOptions
	FilterItems []string
	OutputDir   string
}

type RenderResult struct {
	RequestID  string
	Settings   types.Settings
	Menu       types.Menu
	FetchOK    bool
	Window     types.MenuWindow
	Params     types.RenderParams
	Dimensions types.Dimensions
	Image      []byte
}

type FetchRequest struct {
	DistrictID  string
	SiteID      string
	MenuName    string
	Source      SourceOptions
	FilterItems []string
}

type FetchResult struct {
	Menu types.Menu
}

type MenuTypesRequest struct {
	SiteID string
	Source SourceOptions
}

type MenuTypesResult struct {
	MenuTypes []types.MenuType
}

type SitesRequest struct {
	DistrictID string
	Source     SourceOptions
}

type SitesResult struct {
	Sites []types.Site
}
