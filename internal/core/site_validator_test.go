package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"schoolmenu/internal/types"
)

func TestSiteValidatorSkipsBlankDistrict(t *testing.T) {
	source := &testMenuSource{}
	err := NewSiteValidator(source).Validate(t.Context(), "  ", "894")
	require.NoError(t, err)
	require.Zero(t, source.siteCalls)
}

func TestSiteValidatorAcceptsKnownSite(t *testing.T) {
	source := &testMenuSource{sites: []types.Site{{ID: "894", Name: "Oak"}, {ID: "895", Name: "Elm"}}}
	require.NoError(t, NewSiteValidator(source).Validate(t.Context(), "d1", "895"))
	require.Equal(t, 1, source.siteCalls)
}

func TestSiteValidatorRejectsUnknownSite(t *testing.T) {
	source := &testMenuSource{sites: []types.Site{{ID: "902", Name: "Pine"}, {ID: "894", Name: "Oak"}}}
	err := NewSiteValidator(source).Validate(t.Context(), "d1", "999")
	require.Error(t, err)
	require.Equal(t, types.ErrorKindValidation, types.KindOf(err))

	var menuErr *types.MenuError
	require.ErrorAs(t, err, &menuErr)
	require.Equal(t, []string{"894", "902"}, menuErr.Candidates)
	require.Contains(t, err.Error(), "999")
}

func TestSiteValidatorPropagatesSourceError(t *testing.T) {
	source := &testMenuSource{sitesErr: types.NewTransportError("boom", nil)}
	err := NewSiteValidator(source).Validate(t.Context(), "d1", "894")
	require.Equal(t, types.ErrorKindTransport, types.KindOf(err))
}
