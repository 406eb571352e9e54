package adapters

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolmenu/internal/types"
)

type graphQLStub struct {
	queries  []string
	response string
	err      error
}

func (s *graphQLStub) Execute(_ context.Context, query string) (map[string]json.RawMessage, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	data := map[string]json.RawMessage{}
	if s.response != "" {
		if err := json.Unmarshal([]byte(s.response), &data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func intPtr(v int) *int {
	return &v
}

func TestMenuSourceQueries(t *testing.T) {
	assert.Equal(t,
		`{  organization(id:"1212122355243477") { id sites { id name } }}`,
		OrganizationSitesQuery("1212122355243477"),
	)
	assert.Equal(t,
		`{  menuTypes(site:{depth_0_id:"894"}, publish_location:"website") { id name }}`,
		MenuTypesQuery("894", types.PublishLocationWebsite),
	)
	assert.Equal(t,
		`{  menuType(id:"mt-1") { menu(month:0, year:2026) { items { day month year product { name } } } }}`,
		MenuItemsQuery("mt-1", 0, 2026),
	)
	assert.Equal(t,
		`{  organization(id:"x\"y") { id sites { id name } }}`,
		OrganizationSitesQuery(`x"y`),
	)
}

func TestMenuSourceOrganizationSites(t *testing.T) {
	stub := &graphQLStub{response: `{"organization":{"id":"d1","sites":[{"id":"894","name":"Elm"},{"id":901,"name":"Oak"}]}}`}
	adapter := NewMenuSourceGraphQLAdapter(stub)

	sites, err := adapter.OrganizationSites(t.Context(), "d1")
	require.NoError(t, err)
	want := []types.Site{{ID: "894", Name: "Elm"}, {ID: "901", Name: "Oak"}}
	if diff := cmp.Diff(want, sites); diff != "" {
		t.Fatalf("unexpected sites (-want +got):\n%s", diff)
	}
	require.Len(t, stub.queries, 1)
	assert.Equal(t, OrganizationSitesQuery("d1"), stub.queries[0])
}

func TestMenuSourceOrganizationMissing(t *testing.T) {
	for _, response := range []string{`{}`, `{"organization":null}`} {
		adapter := NewMenuSourceGraphQLAdapter(&graphQLStub{response: response})
		sites, err := adapter.OrganizationSites(t.Context(), "d1")
		require.NoError(t, err)
		assert.Empty(t, sites)
	}
}

func TestMenuSourceMenuTypes(t *testing.T) {
	stub := &graphQLStub{response: `{"menuTypes":[{"id":"a","name":"Lunch Elementary Schools"},{"id":"b","name":null}]}`}
	adapter := NewMenuSourceGraphQLAdapter(stub)

	menuTypes, err := adapter.MenuTypes(t.Context(), "894", types.PublishLocationWebsite)
	require.NoError(t, err)
	want := []types.MenuType{{ID: "a", Name: "Lunch Elementary Schools"}, {ID: "b", Name: ""}}
	if diff := cmp.Diff(want, menuTypes); diff != "" {
		t.Fatalf("unexpected menu types (-want +got):\n%s", diff)
	}
}

func TestMenuSourceMenuItemsDecoding(t *testing.T) {
	stub := &graphQLStub{response: `{"menuType":{"menu":{"items":[
		{"day":3,"month":2,"year":2026,"product":{"name":"Tacos"}},
		{"day":"4","product":{"name":"Pizza"}},
		{"day":"abc","month":"2","year":0,"product":{"name":"Soup"}},
		{"day":null,"product":null},
		{"day":5.7,"month":1.5,"year":"2027","product":{"name":"Pasta"}}
	]}}}`}
	adapter := NewMenuSourceGraphQLAdapter(stub)

	items, err := adapter.MenuItems(t.Context(), "mt-1", 2, 2026)
	require.NoError(t, err)
	want := []types.RawMenuItem{
		{Day: "3", HasDay: true, Month: intPtr(2), Year: intPtr(2026), ProductName: "Tacos"},
		{Day: "4", HasDay: true, ProductName: "Pizza"},
		{Day: "abc", HasDay: true, ProductName: "Soup"},
		{},
		{Day: "5", HasDay: true, Year: intPtr(2027), ProductName: "Pasta"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	assert.Equal(t, MenuItemsQuery("mt-1", 2, 2026), stub.queries[0])
}

func TestMenuSourceItemMonthMustBeIntegerLiteral(t *testing.T) {
	stub := &graphQLStub{response: `{"menuType":{"menu":{"items":[
		{"day":"1","month":2.0,"year":2026.0,"product":{"name":"Float"}},
		{"day":"2","month":2e0,"product":{"name":"Exponent"}},
		{"day":"3","month":-0.0,"product":{"name":"NegativeZero"}},
		{"day":"4","month":3,"year":2026,"product":{"name":"Integer"}}
	]}}}`}
	items, err := NewMenuSourceGraphQLAdapter(stub).MenuItems(t.Context(), "mt-1", 2, 2026)
	require.NoError(t, err)
	want := []types.RawMenuItem{
		{Day: "1", HasDay: true, ProductName: "Float"},
		{Day: "2", HasDay: true, ProductName: "Exponent"},
		{Day: "3", HasDay: true, ProductName: "NegativeZero"},
		{Day: "4", HasDay: true, Month: intPtr(3), Year: intPtr(2026), ProductName: "Integer"},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestMenuSourceMenuItemsEmpty(t *testing.T) {
	for _, response := range []string{`{}`, `{"menuType":null}`, `{"menuType":{"menu":null}}`, `{"menuType":{"menu":{"items":null}}}`} {
		adapter := NewMenuSourceGraphQLAdapter(&graphQLStub{response: response})
		items, err := adapter.MenuItems(t.Context(), "mt-1", 0, 2026)
		require.NoError(t, err, response)
		assert.Empty(t, items, response)
	}
}

func TestMenuSourceMalformedPayload(t *testing.T) {
	adapter := NewMenuSourceGraphQLAdapter(&graphQLStub{response: `{"menuTypes":{"id":"a"}}`})
	_, err := adapter.MenuTypes(t.Context(), "894", types.PublishLocationWebsite)
	require.Error(t, err)
	assert.Equal(t, types.ErrorKindTransport, types.KindOf(err))
}

func TestMenuSourcePropagatesClientErrors(t *testing.T) {
	clientErr := types.NewAPIError(`[{"message":"nope"}]`)
	adapter := NewMenuSourceGraphQLAdapter(&graphQLStub{err: clientErr})
	_, err := adapter.OrganizationSites(t.Context(), "d1")
	require.ErrorIs(t, err, clientErr)
}
