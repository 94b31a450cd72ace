package recommend

import (
	"testing"

	"eventify/models"
)

func TestParsePrice(t *testing.T) {
	cases := map[string]int64{
		"€500":          500,
		"€2500 per day": 2500,
		"€1.500":        1500,
		"free":          0,
		"":              0,
	}
	for in, want := range cases {
		if got := ParsePrice(in); got != want {
			t.Errorf("ParsePrice(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestAvailableServices(t *testing.T) {
	venues := models.Category{ID: "1", Name: "Venues", Services: []models.Service{
		svc("A", "Hall A", "€500", models.Available),
		svc("B", "Hall B", "€2000", models.Available),
		svc("C", "Hall C", "€300", models.Unavailable),
	}}

	t.Run("budget filters", func(t *testing.T) {
		got := AvailableServices(venues, 1000)
		if !equalIDs(got, "A") {
			t.Fatalf("expected [A], got %v", ids(got))
		}
	})

	t.Run("no budget keeps every available service", func(t *testing.T) {
		got := AvailableServices(venues, 0)
		if !equalIDs(got, "A", "B") {
			t.Fatalf("expected [A B], got %v", ids(got))
		}
	})

	t.Run("availability ignores case", func(t *testing.T) {
		stored := models.Category{ID: "1", Name: "Venues", Services: []models.Service{
			svc("A", "Hall A", "€500", "available"),
			svc("B", "Hall B", "€400", "UNAVAILABLE"),
		}}
		got := AvailableServices(stored, 1000)
		if !equalIDs(got, "A") {
			t.Fatalf("expected [A], got %v", ids(got))
		}
	})

	t.Run("invariant holds across the catalog", func(t *testing.T) {
		for _, cat := range testCatalog() {
			for _, budget := range []int64{0, 50, 400, 1500, 100000} {
				for _, s := range AvailableServices(cat, budget) {
					if !s.IsAvailable() {
						t.Fatalf("unavailable service %s returned", s.ID)
					}
					if budget > 0 && ParsePrice(s.Price) > budget {
						t.Fatalf("service %s priced %s exceeds budget %d", s.ID, s.Price, budget)
					}
				}
			}
		}
	})
}

func TestBestSingleItem(t *testing.T) {
	venues := models.Category{ID: "1", Name: "Venues", Services: []models.Service{
		svc("A", "Hall A", "€500", models.Available),
		svc("B", "Hall B", "€2000", models.Available),
	}}

	if got, ok := BestSingleItem(venues, 1000); !ok || got.ID != "A" {
		t.Fatalf("expected A, got %+v (ok=%v)", got, ok)
	}
	if got, ok := BestSingleItem(venues, 0); !ok || got.ID != "B" {
		t.Fatalf("expected B, got %+v (ok=%v)", got, ok)
	}
	if _, ok := BestSingleItem(venues, 100); ok {
		t.Fatal("expected no item under 100")
	}

	tied := models.Category{ID: "9", Services: []models.Service{
		svc("X", "First", "€700", models.Available),
		svc("Y", "Second", "€700", models.Available),
		svc("Z", "Cheaper", "€100", models.Available),
	}}
	if got, _ := BestSingleItem(tied, 0); got.ID != "X" {
		t.Fatalf("expected first of tied services, got %s", got.ID)
	}

	for _, cat := range testCatalog() {
		best, ok := BestSingleItem(cat, 1200)
		if !ok {
			continue
		}
		for _, other := range AvailableServices(cat, 1200) {
			if ParsePrice(other.Price) > ParsePrice(best.Price) {
				t.Fatalf("%s: %s is pricier than best pick %s", cat.Name, other.ID, best.ID)
			}
		}
	}
}

func TestBestPerCategory(t *testing.T) {
	pkg := BestPerCategory(testCatalog(), 0)
	if !equalIDs(pkg.Items, "1d", "2c", "3b", "4c", "5c") {
		t.Fatalf("unexpected top picks %v", ids(pkg.Items))
	}
	if pkg.Total != 10000+1400+500+700+350 {
		t.Fatalf("unexpected total %d", pkg.Total)
	}
	if !pkg.IsPackage {
		t.Fatal("expected package flag")
	}
}
