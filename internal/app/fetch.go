package app

import (
	"context"
	"strings"

	"schoolmenu/internal/core"
	"schoolmenu/internal/types"
)

// Fetch resolves and returns the filtered menu without rendering. Unlike
// Render it surfaces pipeline errors to the caller.
func (s Service) Fetch(ctx context.Context, req FetchRequest) (FetchResult, error) {
	ctx, _ = withRequestID(ctx)
	siteID := strings.TrimSpace(req.SiteID)
	if siteID == "" {
		return FetchResult{}, types.NewConfigError("school id is required")
	}
	menuName := strings.TrimSpace(req.MenuName)
	if menuName == "" {
		return FetchResult{}, types.NewConfigError("menu name is required")
	}

	fetcher := core.NewMenuFetcher(s.menuSource(req.Source), itemFilter(req.FilterItems), s.now)
	menu, err := fetcher.Fetch(ctx, core.FetchRequest{
		Identity: types.MenuIdentity{
			DistrictID: strings.TrimSpace(req.DistrictID),
			SiteID:     siteID,
			MenuName:   menuName,
		},
		PublishLocation: publishLocation(req.Source.PublishLocation),
	})
	if err != nil {
		return FetchResult{}, err
	}
	return FetchResult{Menu: menu}, nil
}

// MenuTypes lists the menu names a site publishes, for discovering a valid
// menu name.
func (s Service) MenuTypes(ctx context.Context, req MenuTypesRequest) (MenuTypesResult, error) {
	ctx, _ = withRequestID(ctx)
	siteID := strings.TrimSpace(req.SiteID)
	if siteID == "" {
		return MenuTypesResult{}, types.NewConfigError("school id is required")
	}
	menuTypes, err := s.menuSource(req.Source).MenuTypes(ctx, siteID, publishLocation(req.Source.PublishLocation))
	if err != nil {
		return MenuTypesResult{}, err
	}
	return MenuTypesResult{MenuTypes: menuTypes}, nil
}

func (s Service) Sites(ctx context.Context, req SitesRequest) (SitesResult, error) {
	ctx, _ = withRequestID(ctx)
	districtID := strings.TrimSpace(req.DistrictID)
	if districtID == "" {
		return SitesResult{}, types.NewConfigError("district id is required")
	}
	sites, err := s.menuSource(req.Source).OrganizationSites(ctx, districtID)
	if err != nil {
		return SitesResult{}, err
	}
	if len(sites) == 0 {
		return SitesResult{}, types.NewNotFoundError("organization "+districtID+" has no sites", nil)
	}
	return SitesResult{Sites: sites}, nil
}
