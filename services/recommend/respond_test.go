package recommend

import (
	"testing"

	"eventify/models"
)

func TestEngineRespond(t *testing.T) {
	engine := NewEngine(testCatalog(), testKeywords())

	cases := []struct {
		name      string
		text      string
		kind      models.ResponseKind
		items     []string
		message   string
		isPackage bool
	}{
		{
			name:    "single category listing",
			text:    "show me venues",
			kind:    models.KindListing,
			items:   []string{"1a", "1c", "1d"},
			message: "Here are all available services in Venues:",
		},
		{
			name:    "single category with budget",
			text:    "venues under 1000",
			kind:    models.KindListing,
			items:   []string{"1a"},
			message: "Here are all available services in Venues under €1000:",
		},
		{
			name:    "single category nothing affordable",
			text:    "venues for 100",
			kind:    models.KindNone,
			message: "No available services found for Venues under €100.",
		},
		{
			name:      "several categories without budget",
			text:      "I need a DJ and a venue",
			kind:      models.KindPackage,
			items:     []string{"1d", "3b"},
			message:   "Here's a 1-item-per-category package:",
			isPackage: true,
		},
		{
			name:      "several categories with budget",
			text:      "venue and catering under 2000",
			kind:      models.KindPackage,
			items:     []string{"1a", "2c"},
			message:   "Here's a 1-item-per-category package under €2000:",
			isPackage: true,
		},
		{
			name:    "several categories nothing fits",
			text:    "venue and catering with 600",
			kind:    models.KindNone,
			message: "Sorry, I couldn't find any available items under these categories within your €600.",
		},
		{
			name:      "budget only",
			text:      "I have 2000 euros",
			kind:      models.KindPackage,
			items:     []string{"1a", "2a", "3a", "4c", "5c"},
			message:   "Based on your budget of €2000, here is a single-item package from all our categories:",
			isPackage: true,
		},
		{
			name:    "budget only nothing fits",
			text:    "only 10 to spend",
			kind:    models.KindNone,
			message: "Sorry, I couldn't find any services under €10.",
		},
		{
			name:      "top picks",
			text:      "hello there",
			kind:      models.KindPackage,
			items:     []string{"1d", "2c", "3b", "4c", "5c"},
			message:   "Here are our top picks from all categories:",
			isPackage: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.Respond(tc.text)
			if got.Kind != tc.kind {
				t.Fatalf("kind = %s, want %s", got.Kind, tc.kind)
			}
			if !equalIDs(got.Items, tc.items...) {
				t.Fatalf("items = %v, want %v", ids(got.Items), tc.items)
			}
			if got.Message != tc.message {
				t.Fatalf("message = %q, want %q", got.Message, tc.message)
			}
			if got.IsPackage != tc.isPackage {
				t.Fatalf("isPackage = %v, want %v", got.IsPackage, tc.isPackage)
			}
		})
	}
}

func TestEngineRespondDelegatesWhenCatalogIsEmpty(t *testing.T) {
	engine := NewEngine(nil, testKeywords())
	got := engine.Respond("tell me a joke")
	if got.Kind != models.KindDelegate {
		t.Fatalf("expected delegate, got %s", got.Kind)
	}
}

func TestEngineRespondTotals(t *testing.T) {
	engine := NewEngine(testCatalog(), testKeywords())
	got := engine.Respond("venue and catering under 2000")
	if got.Total != 1900 {
		t.Fatalf("expected total 1900, got %d", got.Total)
	}
}

func TestCategoriesByName(t *testing.T) {
	engine := NewEngine(testCatalog(), testKeywords())
	got := engine.CategoriesByName("Venues", "Nope", "Transportation Services")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "5" {
		t.Fatalf("unexpected categories %+v", got)
	}
}
