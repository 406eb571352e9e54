package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"schoolmenu/internal/ports"
	"schoolmenu/internal/shared"
	"schoolmenu/internal/types"
)

type MenuSourceGraphQLAdapter struct {
	Client ports.GraphQLPort
}

func NewMenuSourceGraphQLAdapter(client ports.GraphQLPort) MenuSourceGraphQLAdapter {
	return MenuSourceGraphQLAdapter{Client: client}
}

func OrganizationSitesQuery(districtID string) string {
	return fmt.Sprintf("{  organization(id:%s) { id sites { id name } }}", shared.QuoteGraphQL(districtID))
}

func MenuTypesQuery(siteID string, location types.PublishLocation) string {
	return fmt.Sprintf(
		"{  menuTypes(site:{depth_0_id:%s}, publish_location:%s) { id name }}",
		shared.QuoteGraphQL(siteID),
		shared.QuoteGraphQL(string(location)),
	)
}

func MenuItemsQuery(menuTypeID string, month int, year int) string {
	return fmt.Sprintf(
		"{  menuType(id:%s) { menu(month:%d, year:%d) { items { day month year product { name } } } }}",
		shared.QuoteGraphQL(menuTypeID),
		month,
		year,
	)
}

type organizationPayload struct {
	ID    flexString `json:"id"`
	Sites []struct {
		ID   flexString `json:"id"`
		Name flexString `json:"name"`
	} `json:"sites"`
}

type menuTypePayload struct {
	ID   flexString `json:"id"`
	Name flexString `json:"name"`
}

type menuTypeMenuPayload struct {
	Menu *struct {
		Items []menuItemPayload `json:"items"`
	} `json:"menu"`
}

type menuItemPayload struct {
	Day     json.RawMessage `json:"day"`
	Month   json.RawMessage `json:"month"`
	Year    json.RawMessage `json:"year"`
	Product *struct {
		Name flexString `json:"name"`
	} `json:"product"`
}

func (a MenuSourceGraphQLAdapter) OrganizationSites(ctx context.Context, districtID string) ([]types.Site, error) {
	data, err := a.execute(ctx, OrganizationSitesQuery(districtID))
	if err != nil {
		return nil, err
	}
	var org *organizationPayload
	if err := decodeField(data, "organization", &org); err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	sites := make([]types.Site, 0, len(org.Sites))
	for _, site := range org.Sites {
		sites = append(sites, types.Site{ID: string(site.ID), Name: string(site.Name)})
	}
	return sites, nil
}

func (a MenuSourceGraphQLAdapter) MenuTypes(ctx context.Context, siteID string, location types.PublishLocation) ([]types.MenuType, error) {
	data, err := a.execute(ctx, MenuTypesQuery(siteID, location))
	if err != nil {
		return nil, err
	}
	var payload []menuTypePayload
	if err := decodeField(data, "menuTypes", &payload); err != nil {
		return nil, err
	}
	menuTypes := make([]types.MenuType, 0, len(payload))
	for _, mt := range payload {
		menuTypes = append(menuTypes, types.MenuType{ID: string(mt.ID), Name: string(mt.Name)})
	}
	return menuTypes, nil
}

func (a MenuSourceGraphQLAdapter) MenuItems(ctx context.Context, menuTypeID string, month int, year int) ([]types.RawMenuItem, error) {
	data, err := a.execute(ctx, MenuItemsQuery(menuTypeID, month, year))
	if err != nil {
		return nil, err
	}
	var payload *menuTypeMenuPayload
	if err := decodeField(data, "menuType", &payload); err != nil {
		return nil, err
	}
	if payload == nil || payload.Menu == nil {
		return nil, nil
	}
	items := make([]types.RawMenuItem, 0, len(payload.Menu.Items))
	for _, raw := range payload.Menu.Items {
		items = append(items, toRawMenuItem(raw))
	}
	return items, nil
}

func (a MenuSourceGraphQLAdapter) execute(ctx context.Context, query string) (map[string]json.RawMessage, error) {
	if a.Client == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("menu source requires a graphql client")
	}
	return a.Client.Execute(ctx, query)
}

func decodeField(data map[string]json.RawMessage, field string, out any) error {
	raw, ok := data[field]
	if !ok || isJSONNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return types.NewTransportError(fmt.Sprintf("malformed %s payload", field), err)
	}
	return nil
}

func toRawMenuItem(raw menuItemPayload) types.RawMenuItem {
	item := types.RawMenuItem{}
	item.Day, item.HasDay = rawDayText(raw.Day)
	if month, ok := jsonWholeNumber(raw.Month); ok {
		item.Month = &month
	}
	if year, ok := jsonYear(raw.Year); ok {
		item.Year = &year
	}
	if raw.Product != nil {
		item.ProductName = string(raw.Product.Name)
	}
	return item
}

// rawDayText keeps the day as text; numbers are truncated toward zero the
// way an integer cast would.
func rawDayText(raw json.RawMessage) (string, bool) {
	if isJSONNull(raw) {
		return "", false
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text, true
	}
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		if math.IsInf(number, 0) || math.IsNaN(number) {
			return "", true
		}
		return strconv.FormatInt(int64(math.Trunc(number)), 10), true
	}
	return strings.TrimSpace(string(raw)), true
}

// jsonWholeNumber accepts only integer JSON literals; 2.0 and 2e0 are
// rejected.
func jsonWholeNumber(raw json.RawMessage) (int, bool) {
	if isJSONNull(raw) {
		return 0, false
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] == '"' || bytes.ContainsAny(trimmed, ".eE") {
		return 0, false
	}
	number, err := strconv.ParseInt(string(trimmed), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(number), true
}

// jsonYear treats zero, null, and non-numeric values as absent.
func jsonYear(raw json.RawMessage) (int, bool) {
	if year, ok := jsonWholeNumber(raw); ok {
		return year, year != 0
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || year == 0 {
		return 0, false
	}
	return year, true
}

// flexString decodes ids and names that the provider may send as strings or
// numbers.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*s = ""
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = flexString(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*s = flexString(number.String())
	return nil
}
