package core

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schoolmenu/internal/policies"
	"schoolmenu/internal/ports"
	"schoolmenu/internal/types"
)

// lateMonthDay is the day-of-month after which the following month is
// fetched as well; providers publish on a rolling basis.
const lateMonthDay = 20

type FetchRequest struct {
	Identity        types.MenuIdentity
	PublishLocation types.PublishLocation
}

type MonthRef struct {
	Month time.Month
	Year  int
}

// ProviderMonth is the 0-indexed month the provider expects.
func (m MonthRef) ProviderMonth() int {
	return int(m.Month) - 1
}

type MenuFetcher struct {
	Source    ports.MenuSourcePort
	Validator SiteValidator
	Resolver  MenuTypeResolver
	Filter    ports.ItemFilterPort
	Clock     func() time.Time
}

func NewMenuFetcher(source ports.MenuSourcePort, filter ports.ItemFilterPort, clock func() time.Time) MenuFetcher {
	if filter == nil {
		filter = policies.NewItemFilterPolicy(nil)
	}
	if clock == nil {
		clock = time.Now
	}
	return MenuFetcher{
		Source:    source,
		Validator: NewSiteValidator(source),
		Resolver:  NewMenuTypeResolver(source),
		Filter:    filter,
		Clock:     clock,
	}
}

func (f MenuFetcher) Fetch(ctx context.Context, req FetchRequest) (types.Menu, error) {
	assert.NotEmpty(ctx, req.Identity.SiteID, "site id must be set")
	assert.NotEmpty(ctx, req.Identity.MenuName, "menu name must be set")
	if f.Source == nil || f.Filter == nil || f.Clock == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("menu fetcher requires source, filter and clock")
	}
	location := req.PublishLocation
	if strings.TrimSpace(string(location)) == "" {
		location = types.PublishLocationWebsite
	}

	if req.Identity.DistrictID != "" {
		if err := f.Validator.Validate(ctx, req.Identity.DistrictID, req.Identity.SiteID); err != nil {
			return nil, err
		}
	}
	menuTypeID, err := f.Resolver.Resolve(ctx, req.Identity.SiteID, req.Identity.MenuName, location)
	if err != nil {
		return nil, err
	}

	byDate := map[string][]string{}
	for _, month := range MonthsToFetch(f.Clock()) {
		items, err := f.Source.MenuItems(ctx, menuTypeID, month.ProviderMonth(), month.Year)
		if err != nil {
			return nil, err
		}
		kept := 0
		for _, item := range items {
			dateKey, ok := itemDateKey(item, month)
			if !ok {
				continue
			}
			if item.ProductName == "" || f.Filter.IsFiltered(item.ProductName) {
				continue
			}
			byDate[dateKey] = append(byDate[dateKey], item.ProductName)
			kept++
		}
		log.Ctx(ctx).Debug().
			Str("menu_type_id", menuTypeID).
			Int("month", int(month.Month)).
			Int("year", month.Year).
			Int("items", len(items)).
			Int("kept", kept).
			Msg("menu month fetched")
	}
	return orderMenu(byDate), nil
}

// MonthsToFetch returns the current month and, late in the month, the
// following one.
func MonthsToFetch(today time.Time) []MonthRef {
	months := []MonthRef{{Month: today.Month(), Year: today.Year()}}
	if today.Day() > lateMonthDay {
		next := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, today.Location())
		months = append(months, MonthRef{Month: next.Month(), Year: next.Year()})
	}
	return months
}

func itemDateKey(item types.RawMenuItem, queried MonthRef) (string, bool) {
	if !item.HasDay {
		return "", false
	}
	day, err := strconv.Atoi(strings.TrimSpace(item.Day))
	if err != nil {
		return "", false
	}
	month := int(queried.Month)
	if item.Month != nil {
		month = *item.Month + 1
	}
	year := queried.Year
	if item.Year != nil && *item.Year != 0 {
		year = *item.Year
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func orderMenu(byDate map[string][]string) types.Menu {
	dates := make([]string, 0, len(byDate))
	for date, items := range byDate {
		if len(items) == 0 {
			continue
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)
	menu := make(types.Menu, 0, len(dates))
	for _, date := range dates {
		menu = append(menu, types.MenuDay{Date: date, Items: byDate[date]})
	}
	return menu
}
