package core

import (
	"context"
	"fmt"

	"schoolmenu/internal/types"
)

type itemsCall struct {
	menuTypeID string
	month      int
	year       int
}

type testMenuSource struct {
	sites     []types.Site
	menuTypes []types.MenuType
	// items is keyed by "<month>/<year>" using the 0-indexed provider month.
	items map[string][]types.RawMenuItem

	sitesErr error
	typesErr error
	itemsErr error

	siteCalls  int
	itemsCalls []itemsCall
}

func (s *testMenuSource) OrganizationSites(_ context.Context, _ string) ([]types.Site, error) {
	s.siteCalls++
	return s.sites, s.sitesErr
}

func (s *testMenuSource) MenuTypes(_ context.Context, _ string, _ types.PublishLocation) ([]types.MenuType, error) {
	return s.menuTypes, s.typesErr
}

func (s *testMenuSource) MenuItems(_ context.Context, menuTypeID string, month int, year int) ([]types.RawMenuItem, error) {
	s.itemsCalls = append(s.itemsCalls, itemsCall{menuTypeID: menuTypeID, month: month, year: year})
	if s.itemsErr != nil {
		return nil, s.itemsErr
	}
	return s.items[fmt.Sprintf("%d/%d", month, year)], nil
}

func dayItem(day string, name string) types.RawMenuItem {
	return types.RawMenuItem{Day: day, HasDay: true, ProductName: name}
}

func intPtr(v int) *int {
	return &v
}
