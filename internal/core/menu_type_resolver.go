package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schoolmenu/internal/ports"
	"schoolmenu/internal/shared"
	"schoolmenu/internal/types"
)

type MenuTypeResolver struct {
	Source ports.MenuSourcePort
}

func NewMenuTypeResolver(source ports.MenuSourcePort) MenuTypeResolver {
	return MenuTypeResolver{Source: source}
}

func (r MenuTypeResolver) Resolve(ctx context.Context, siteID string, menuName string, location types.PublishLocation) (string, error) {
	if r.Source == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("menu type resolver requires a menu source port")
	}
	menuTypes, err := r.Source.MenuTypes(ctx, siteID, location)
	if err != nil {
		return "", err
	}
	if len(menuTypes) == 0 {
		return "", types.NewNotFoundError(
			fmt.Sprintf("no menu types returned for site %s at %s; cannot resolve menu name", siteID, location),
			nil,
		)
	}
	match, err := MatchMenuType(menuTypes, menuName)
	if err != nil {
		return "", err
	}
	log.Ctx(ctx).Debug().
		Str("menu_name", menuName).
		Str("menu_type_id", match.ID).
		Str("menu_type_name", match.Name).
		Msg("menu type resolved")
	return match.ID, nil
}

// MatchMenuType picks the candidate whose normalized name equals the
// normalized target. Without an exact hit it falls back to substring
// containment, which must single out exactly one candidate.
func MatchMenuType(candidates []types.MenuType, menuName string) (types.MenuType, error) {
	target := shared.NormalizeName(menuName)

	var exact []types.MenuType
	for _, candidate := range candidates {
		if shared.NormalizeName(candidate.Name) == target {
			exact = append(exact, candidate)
		}
	}
	switch {
	case len(exact) == 1:
		return exact[0], nil
	case len(exact) > 1:
		return types.MenuType{}, types.NewAmbiguityError(
			fmt.Sprintf("ambiguous menu name '%s' (multiple exact matches)", menuName),
			menuTypeNames(exact),
		)
	}

	var partial []types.MenuType
	for _, candidate := range candidates {
		if strings.Contains(shared.NormalizeName(candidate.Name), target) {
			partial = append(partial, candidate)
		}
	}
	switch len(partial) {
	case 1:
		return partial[0], nil
	case 0:
		available := menuTypeNames(candidates)
		return types.MenuType{}, types.NewNotFoundError(
			fmt.Sprintf("menu name '%s' not found, available: %v", menuName, available),
			available,
		)
	default:
		matching := menuTypeNames(partial)
		return types.MenuType{}, types.NewAmbiguityError(
			fmt.Sprintf("ambiguous menu name '%s', candidates: %v", menuName, matching),
			matching,
		)
	}
}

func menuTypeNames(menuTypes []types.MenuType) []string {
	names := make([]string, 0, len(menuTypes))
	for _, mt := range menuTypes {
		names = append(names, mt.Name)
	}
	return names
}
