package recommend

import "testing"

func TestExtractBudget(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		want   int64
		wantOK bool
	}{
		{"plain amount", "I have 2000 euros", 2000, true},
		{"no digits", "no numbers here", 0, false},
		{"thousands separator", "budget of 1.500 for the party", 1500, true},
		{"first run wins", "under 2000 for 50 guests", 2000, true},
		{"guest count first", "50 guests, budget 2000", 50, true},
		{"currency prefix", "€750 tops", 750, true},
		{"overflow", "99999999999999999999999", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractBudget(tc.text)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("ExtractBudget(%q) = %d, %v; want %d, %v", tc.text, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestMatchCategories(t *testing.T) {
	catalog := testCatalog()
	table := testKeywords()

	t.Run("keyword scan order", func(t *testing.T) {
		got := MatchCategories("I need a DJ and a venue", table, catalog)
		if len(got) != 2 || got[0].Name != "Venues" || got[1].Name != "Entertainment Providers" {
			t.Fatalf("unexpected categories: %+v", got)
		}
	})

	t.Run("duplicates suppressed", func(t *testing.T) {
		got := MatchCategories("photo and video of the venues venue", table, catalog)
		if len(got) != 2 || got[0].Name != "Venues" || got[1].Name != "Photographers & Videographers" {
			t.Fatalf("unexpected categories: %+v", got)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := MatchCategories("CATERING please", table, catalog)
		if len(got) != 1 || got[0].ID != "2" {
			t.Fatalf("unexpected categories: %+v", got)
		}
	})

	t.Run("unknown table entry ignored", func(t *testing.T) {
		got := MatchCategories("florist", append(table, testKeywordsFlorist()), catalog)
		if len(got) != 0 {
			t.Fatalf("expected no categories, got %+v", got)
		}
	})

	t.Run("nothing matched", func(t *testing.T) {
		if got := MatchCategories("hello there", table, catalog); len(got) != 0 {
			t.Fatalf("expected no categories, got %+v", got)
		}
	})
}

func TestParseIntent(t *testing.T) {
	intent := ParseIntent("venue and catering under 2000", testKeywords(), testCatalog())
	if intent.Budget != 2000 {
		t.Fatalf("expected budget 2000, got %d", intent.Budget)
	}
	if len(intent.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(intent.Categories))
	}
}
