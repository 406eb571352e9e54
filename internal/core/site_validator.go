package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schoolmenu/internal/ports"
	"schoolmenu/internal/types"
)

type SiteValidator struct {
	Source ports.MenuSourcePort
}

func NewSiteValidator(source ports.MenuSourcePort) SiteValidator {
	return SiteValidator{Source: source}
}

// Validate confirms siteID is one of the district's top-level sites. An
// empty districtID skips the check entirely.
func (v SiteValidator) Validate(ctx context.Context, districtID string, siteID string) error {
	if strings.TrimSpace(districtID) == "" {
		return nil
	}
	if v.Source == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("site validator requires a menu source port")
	}
	sites, err := v.Source.OrganizationSites(ctx, districtID)
	if err != nil {
		return err
	}
	ids := make(map[string]struct{}, len(sites))
	for _, site := range sites {
		ids[site.ID] = struct{}{}
	}
	if _, ok := ids[siteID]; ok {
		log.Ctx(ctx).Debug().Str("district", districtID).Str("site", siteID).Msg("site validated")
		return nil
	}
	available := make([]string, 0, len(ids))
	for id := range ids {
		available = append(available, id)
	}
	sort.Strings(available)
	return types.NewValidationError(
		fmt.Sprintf("school id %s not found in organization %s, available: %v", siteID, districtID, available),
		available,
	)
}
