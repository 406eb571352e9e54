package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"schoolmenu/internal/types"
)

func TestMatchMenuType(t *testing.T) {
	lunchFamily := []types.MenuType{
		{ID: "1", Name: "Lunch"},
		{ID: "2", Name: "Lunch Elementary Schools"},
		{ID: "3", Name: "Breakfast"},
	}
	tests := []struct {
		name       string
		candidates []types.MenuType
		target     string
		wantID     string
		wantKind   types.ErrorKind
	}{
		{name: "exact wins over overlapping names", candidates: lunchFamily, target: "Lunch", wantID: "1"},
		{name: "exact ignores case and spacing", candidates: lunchFamily, target: "  lunch   ELEMENTARY schools ", wantID: "2"},
		{name: "unique substring", candidates: lunchFamily, target: "elementary", wantID: "2"},
		{name: "substring ambiguity", candidates: []types.MenuType{{ID: "1", Name: "Lunch A"}, {ID: "2", Name: "Lunch B"}}, target: "lunch", wantKind: types.ErrorKindAmbiguity},
		{name: "duplicate exact", candidates: []types.MenuType{{ID: "1", Name: "Lunch"}, {ID: "2", Name: "lunch"}}, target: "Lunch", wantKind: types.ErrorKindAmbiguity},
		{name: "no match", candidates: lunchFamily, target: "Dinner", wantKind: types.ErrorKindNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MatchMenuType(tc.candidates, tc.target)
			if tc.wantKind != "" {
				require.Error(t, err)
				require.Equal(t, tc.wantKind, types.KindOf(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantID, got.ID)
		})
	}
}

func TestMatchMenuTypeIndependentOfOrder(t *testing.T) {
	candidates := []types.MenuType{
		{ID: "1", Name: "Lunch"},
		{ID: "2", Name: "Lunch Elementary Schools"},
		{ID: "3", Name: "Lunch Middle Schools"},
		{ID: "4", Name: "Breakfast"},
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]types.MenuType(nil), candidates...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := MatchMenuType(shuffled, "lunch")
		require.NoError(t, err)
		require.Equal(t, "1", got.ID)

		got, err = MatchMenuType(shuffled, "middle")
		require.NoError(t, err)
		require.Equal(t, "3", got.ID)
	}
}

func TestMatchMenuTypeErrorCandidates(t *testing.T) {
	candidates := []types.MenuType{{ID: "1", Name: "Lunch A"}, {ID: "2", Name: "Lunch B"}, {ID: "3", Name: "Snack"}}
	_, err := MatchMenuType(candidates, "lunch")
	var menuErr *types.MenuError
	require.ErrorAs(t, err, &menuErr)
	require.Equal(t, []string{"Lunch A", "Lunch B"}, menuErr.Candidates)

	_, err = MatchMenuType(candidates, "dinner")
	require.ErrorAs(t, err, &menuErr)
	require.Equal(t, []string{"Lunch A", "Lunch B", "Snack"}, menuErr.Candidates)
}

func TestMenuTypeResolverEmptyList(t *testing.T) {
	_, err := NewMenuTypeResolver(&testMenuSource{}).Resolve(t.Context(), "894", "Lunch", types.PublishLocationWebsite)
	require.Equal(t, types.ErrorKindNotFound, types.KindOf(err))
}

func TestMenuTypeResolverResolve(t *testing.T) {
	source := &testMenuSource{menuTypes: []types.MenuType{{ID: "77", Name: "Lunch Elementary Schools"}}}
	id, err := NewMenuTypeResolver(source).Resolve(t.Context(), "894", "Lunch Elementary Schools", types.PublishLocationWebsite)
	require.NoError(t, err)
	require.Equal(t, "77", id)
}
