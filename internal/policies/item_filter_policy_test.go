package policies

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemFilterPolicyDefaults(t *testing.T) {
	policy := NewItemFilterPolicy(nil)

	filtered := []string{
		"organic fresh fruits and veggies",
		"  Organic Fresh   Fruits AND Veggies ",
		"ORGANIC FRESH FRUITS AND VEGGIES",
		"Organic\tFresh\nFruits and Veggies",
		"Garden Bar:",
		"garden   BAR:",
		"Straus Organic 1% Milk",
		"Non-Fat Milk",
	}
	for _, name := range filtered {
		assert.True(t, policy.IsFiltered(name), "expected %q to be filtered", name)
	}

	kept := []string{
		"Garden Bar",
		"organic fresh fruits",
		"Chocolate Non-Fat Milk",
		"Cheese Pizza",
		"",
	}
	for _, name := range kept {
		assert.False(t, policy.IsFiltered(name), "expected %q to be kept", name)
	}
}

func TestItemFilterPolicyExtras(t *testing.T) {
	policy := NewItemFilterPolicy([]string{"  Ketchup Packet ", "   "})

	assert.True(t, policy.IsFiltered("ketchup packet"))
	assert.True(t, policy.IsFiltered("Non-Fat Milk"))
	assert.False(t, policy.IsFiltered(""))

	assert.False(t, NewItemFilterPolicy(nil).IsFiltered("Ketchup Packet"), "extras must not leak into the default set")
}

func TestDefaultFilteredItemsIsCopy(t *testing.T) {
	items := DefaultFilteredItems()
	items[0] = "changed"
	assert.Equal(t, "Garden Bar:", DefaultFilteredItems()[0])
}
