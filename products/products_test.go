package products

import (
	"testing"
)

func TestBuildProductUpdate(t *testing.T) {
	in := map[string]any{
		"name":               "Handwoven Stole",
		"price":              1450.0,
		"originalPrice":      1800.0,
		"fairTradeCertified": true,
		"ecoFriendly":        true,
		"artisanStory":       "Third-generation weaver",
	}

	set := buildProductUpdate(in)

	// Every camelCase json key must land under its bson field name, so the
	// stored document round-trips through the struct tags.
	want := map[string]any{
		"name":               "Handwoven Stole",
		"price":              1450.0,
		"originalprice":      1800.0,
		"fairtradecertified": true,
		"ecofriendly":        true,
		"artisanstory":       "Third-generation weaver",
	}
	if len(set) != len(want) {
		t.Fatalf("set has %d fields, want %d: %v", len(set), len(want), set)
	}
	for key, value := range want {
		if got, ok := set[key]; !ok || got != value {
			t.Errorf("set[%q] = %v (present=%v), want %v", key, got, ok, value)
		}
	}
	for _, camel := range []string{"originalPrice", "fairTradeCertified", "ecoFriendly", "artisanStory"} {
		if _, ok := set[camel]; ok {
			t.Errorf("camelCase key %q leaked into the update document", camel)
		}
	}
}

func TestBuildProductUpdateDropsProtectedFields(t *testing.T) {
	in := map[string]any{
		"productid":     "pForged",
		"artist":        "uAttacker",
		"sold":          9999,
		"averageRating": 5.0,
		"averagerating": 5.0,
		"reviews":       []any{},
		"createdat":     "2020-01-01",
		"quantity":      3,
	}

	set := buildProductUpdate(in)

	if len(set) != 1 {
		t.Fatalf("set = %v, want only quantity to survive", set)
	}
	if got := set["quantity"]; got != 3 {
		t.Errorf("set[quantity] = %v, want 3", got)
	}
}

func TestBuildProductUpdateEmptyBody(t *testing.T) {
	if set := buildProductUpdate(map[string]any{"unknown": 1}); len(set) != 0 {
		t.Errorf("set = %v, want empty for unknown-only body", set)
	}
}
