package ports

import (
	"context"

	"schoolmenu/internal/types"
)

// MenuSourcePort exposes the three provider queries the pipeline needs.
// month is 0-indexed, matching the provider.
type MenuSourcePort interface {
	OrganizationSites(ctx context.Context, districtID string) ([]types.Site, error)
	MenuTypes(ctx context.Context, siteID string, location types.PublishLocation) ([]types.MenuType, error)
	MenuItems(ctx context.Context, menuTypeID string, month int, year int) ([]types.RawMenuItem, error)
}
