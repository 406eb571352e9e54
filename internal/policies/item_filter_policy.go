package policies

import (
	"schoolmenu/internal/shared"
)

// defaultFilteredItems are ubiquitous accompaniments hidden from every
// rendered menu. Matching is on the normalized name.
var defaultFilteredItems = []string{
	"Garden Bar:",
	"organic fresh fruits and veggies",
	"straus organic 1% milk",
	"non-fat milk",
}

var defaultFilterSet = compileFilterSet(defaultFilteredItems, nil)

type ItemFilterPolicy struct {
	filtered map[string]struct{}
}

// NewItemFilterPolicy returns the fixed boilerplate filter, widened by any
// extra names. With no extras the shared read-only set is reused.
func NewItemFilterPolicy(extra []string) ItemFilterPolicy {
	if len(extra) == 0 {
		return ItemFilterPolicy{filtered: defaultFilterSet}
	}
	return ItemFilterPolicy{filtered: compileFilterSet(defaultFilteredItems, extra)}
}

func (p ItemFilterPolicy) IsFiltered(name string) bool {
	_, ok := p.filtered[shared.NormalizeName(name)]
	return ok
}

func DefaultFilteredItems() []string {
	out := make([]string, len(defaultFilteredItems))
	copy(out, defaultFilteredItems)
	return out
}

func compileFilterSet(base []string, extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(base)+len(extra))
	for _, group := range [][]string{base, extra} {
		for _, item := range group {
			normalized := shared.NormalizeName(item)
			if normalized == "" {
				continue
			}
			set[normalized] = struct{}{}
		}
	}
	return set
}
