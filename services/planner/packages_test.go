package planner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	plannerPackageRepo "eventify/database/repository/plannerPackage"
	"eventify/models"
	"eventify/services/catalog"

	"go.uber.org/zap"
)

// --------------------------------------------------
// In-memory repository
// --------------------------------------------------

type memoryRepo struct {
	packages []models.PlannerPackage
	err      error
}

func (m *memoryRepo) Create(ctx context.Context, pkg *models.PlannerPackage) error {
	if m.err != nil {
		return m.err
	}
	m.packages = append([]models.PlannerPackage{*pkg}, m.packages...)
	return nil
}

func (m *memoryRepo) find(id string) int {
	for i := range m.packages {
		if m.packages[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *memoryRepo) GetByID(ctx context.Context, id string) (*models.PlannerPackage, error) {
	i := m.find(id)
	if i < 0 {
		return nil, plannerPackageRepo.ErrNotFound
	}
	pkg := m.packages[i]
	pkg.Services = append([]models.Service(nil), pkg.Services...)
	return &pkg, nil
}

func (m *memoryRepo) GetAll(ctx context.Context) ([]models.PlannerPackage, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.packages, nil
}

func (m *memoryRepo) UpdateDetails(ctx context.Context, id, title, description string) error {
	i := m.find(id)
	if i < 0 {
		return plannerPackageRepo.ErrNotFound
	}
	m.packages[i].Title = title
	m.packages[i].Description = description
	return nil
}

func (m *memoryRepo) AppendService(ctx context.Context, id string, svc models.Service) error {
	i := m.find(id)
	if i < 0 {
		return plannerPackageRepo.ErrNotFound
	}
	m.packages[i].Services = append(m.packages[i].Services, svc)
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, id string) error {
	i := m.find(id)
	if i < 0 {
		return plannerPackageRepo.ErrNotFound
	}
	m.packages = append(m.packages[:i], m.packages[i+1:]...)
	return nil
}

func newService(repo *memoryRepo) *DefaultPackageService {
	return &DefaultPackageService{
		Repo:             repo,
		Catalog:          catalog.Default(),
		AffiliateBaseURL: "https://example.com/package/",
		Logger:           zap.NewNop(),
		Now:              func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("location required", func(t *testing.T) {
		svc := newService(&memoryRepo{})
		_, err := svc.Create(ctx, models.CreatePlannerPackageRequest{Location: "   "})
		if !errors.Is(err, ErrLocationRequired) {
			t.Fatalf("expected ErrLocationRequired, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		repo := &memoryRepo{}
		svc := newService(repo)
		pkg, err := svc.Create(ctx, models.CreatePlannerPackageRequest{
			Location:    "Madrid",
			EventDate:   "2024-06-01",
			Guests:      "250",
			Description: "Summer party",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pkg.Title != "Untitled Event" {
			t.Fatalf("expected default title, got %q", pkg.Title)
		}
		if pkg.Description != "Where: Madrid, When: 2024-06-01, Size: 250\n\nSummer party" {
			t.Fatalf("unexpected description %q", pkg.Description)
		}
		if pkg.AffiliateLink != "https://example.com/package/"+pkg.ID {
			t.Fatalf("unexpected affiliate link %q", pkg.AffiliateLink)
		}
		if len(repo.packages) != 1 {
			t.Fatalf("expected package to be stored")
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := newService(&memoryRepo{err: errors.New("db")})
		if _, err := svc.Create(ctx, models.CreatePlannerPackageRequest{Location: "Madrid"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestAddService(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	svc := newService(repo)
	pkg, err := svc.Create(ctx, models.CreatePlannerPackageRequest{Location: "Madrid", Title: "Wedding"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.AddService(ctx, pkg.ID, "1a")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(updated.Services) != 1 || updated.Services[0].Name != "Community Hall" {
		t.Fatalf("unexpected services %+v", updated.Services)
	}

	cases := []struct {
		name      string
		packageID string
		serviceID string
		want      error
	}{
		{"duplicate", pkg.ID, "1a", ErrServiceAlreadyAdded},
		{"unavailable", pkg.ID, "1b", ErrServiceUnavailable},
		{"unknown service", pkg.ID, "zz", ErrServiceNotFound},
		{"unknown package", "missing", "1c", ErrPackageNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddService(ctx, tc.packageID, tc.serviceID); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	svc := newService(repo)
	pkg, _ := svc.Create(ctx, models.CreatePlannerPackageRequest{Location: "Lisbon"})

	if _, err := svc.UpdateDetails(ctx, pkg.ID, " ", "x"); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	updated, err := svc.UpdateDetails(ctx, pkg.ID, "Gala", "Black tie")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Gala" || !strings.Contains(updated.Description, "Black tie") {
		t.Fatalf("unexpected package %+v", updated)
	}

	if err := svc.Delete(ctx, pkg.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, pkg.ID); !errors.Is(err, ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()

	empty, err := newService(&memoryRepo{}).Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if empty.MostViewedTitle != "None" || empty.TotalViews != 0 {
		t.Fatalf("unexpected empty stats %+v", empty)
	}

	repo := &memoryRepo{packages: []models.PlannerPackage{
		{ID: "a", Title: "Wedding", Views: 10, Profit: 120.5},
		{ID: "b", Title: "Birthday", Views: 25, Profit: 30},
		{ID: "c", Title: "Gala", Views: 25, Profit: 0},
	}}
	stats, err := newService(repo).Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalViews != 60 || stats.TotalProfit != 150.5 || stats.MostViewedTitle != "Birthday" || stats.PackageCount != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
