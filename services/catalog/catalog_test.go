package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"eventify/models"

	"go.uber.org/zap"
)

type fakeSource struct {
	categories []models.Category
	err        error
}

func (f fakeSource) LoadCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, f.err
}

type prefixImages struct{ fail string }

func (p prefixImages) ImageURL(ref string) (string, error) {
	if ref == p.fail {
		return "", errors.New("boom")
	}
	return "https://cdn.test/" + ref, nil
}

func TestFindServiceKeepsFirstOnDuplicateID(t *testing.T) {
	c := New([]models.Category{
		{ID: "1", Name: "Venues", Services: []models.Service{
			{ID: "x", Name: "Hall", Price: "€500", Availability: models.Available},
		}},
		{ID: "2", Name: "Catering", Services: []models.Service{
			{ID: "x", Name: "Buffet", Price: "€200", Availability: models.Available},
		}},
	}, nil)

	svc, ok := c.FindService("x")
	if !ok || svc.Name != "Hall" {
		t.Fatalf("expected first service Hall, got %+v (ok=%v)", svc, ok)
	}
	if svc, ok := c.FindServiceByName("buffet"); !ok || svc.ID != "x" {
		t.Fatalf("expected Buffet reachable by name, got %+v (ok=%v)", svc, ok)
	}
}

func TestFindService(t *testing.T) {
	c := Default()

	if svc, ok := c.FindService("2c"); !ok || svc.Name != "Vegan Delights" {
		t.Fatalf("expected Vegan Delights, got %+v (ok=%v)", svc, ok)
	}
	if _, ok := c.FindService("nope"); ok {
		t.Fatal("expected unknown id to miss")
	}
	if svc, ok := c.FindServiceByName("  dj royale "); !ok || svc.ID != "3b" {
		t.Fatalf("expected DJ Royale, got %+v (ok=%v)", svc, ok)
	}
	if _, ok := c.FindServiceByName("Grand Royal Ballroom"); ok {
		t.Fatal("expected unknown name to miss")
	}
}

func TestSearch(t *testing.T) {
	c := Default()

	t.Run("all", func(t *testing.T) {
		if got := c.Search(Filter{Category: AllCategories}); len(got) != 5 {
			t.Fatalf("expected 5 categories, got %d", len(got))
		}
	})

	t.Run("by category", func(t *testing.T) {
		got := c.Search(Filter{Category: "Venues"})
		if len(got) != 1 || len(got[0].Services) != 4 {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("query drops empty categories", func(t *testing.T) {
		got := c.Search(Filter{Query: "LUXURY"})
		if len(got) != 3 {
			t.Fatalf("expected 3 categories with a luxury service, got %d", len(got))
		}
		for _, cat := range got {
			for _, svc := range cat.Services {
				if !strings.Contains(strings.ToLower(svc.Name), "luxury") {
					t.Fatalf("unexpected service %s", svc.Name)
				}
			}
		}
	})

	t.Run("only available", func(t *testing.T) {
		got := c.Search(Filter{Query: "luxury", OnlyAvailable: true})
		if len(got) != 2 {
			t.Fatalf("expected venues and transport, got %+v", got)
		}
	})

	t.Run("search does not mutate the catalog", func(t *testing.T) {
		c.Search(Filter{OnlyAvailable: true})
		if len(c.Categories()[0].Services) != 4 {
			t.Fatal("catalog was mutated")
		}
	})
}

func TestLoad(t *testing.T) {
	logger := zap.NewNop()

	if c := Load(context.Background(), nil, logger); len(c.Categories()) != 5 {
		t.Fatal("expected defaults without a source")
	}
	if c := Load(context.Background(), fakeSource{err: errors.New("down")}, logger); len(c.Categories()) != 5 {
		t.Fatal("expected defaults on error")
	}
	stored := []models.Category{{ID: "x", Name: "Venues", Services: []models.Service{{ID: "x1", Name: "Barn", Price: "€10", Availability: models.Available}}}}
	c := Load(context.Background(), fakeSource{categories: stored}, logger)
	if len(c.Categories()) != 1 {
		t.Fatalf("expected stored catalog, got %d categories", len(c.Categories()))
	}
	if _, ok := c.FindService("x1"); !ok {
		t.Fatal("expected stored service to be indexed")
	}
}

func TestWithImages(t *testing.T) {
	c := Default()
	resolved := c.WithImages(prefixImages{fail: "venue2"}, zap.NewNop())

	svc, _ := resolved.FindService("1a")
	if svc.Image != "https://cdn.test/venue1" {
		t.Fatalf("unexpected image %q", svc.Image)
	}
	failed, _ := resolved.FindService("1b")
	if failed.Image != "venue2" {
		t.Fatalf("expected unresolved reference kept, got %q", failed.Image)
	}
	original, _ := c.FindService("1a")
	if original.Image != "venue1" {
		t.Fatal("original catalog was mutated")
	}
}
