package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	plannerPackageRepo "eventify/database/repository/plannerPackage"
	"eventify/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const untitledEvent = "Untitled Event"

// ServiceLookup resolves catalog services by id.
type ServiceLookup interface {
	FindService(id string) (models.Service, bool)
}

// DefaultPackageService implements PackageService over a repository.
type DefaultPackageService struct {
	Repo             plannerPackageRepo.PlannerPackageRepository
	Catalog          ServiceLookup
	AffiliateBaseURL string
	Logger           *zap.Logger
	Now              func() time.Time
}

func (s *DefaultPackageService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create starts a new, empty package from the dashboard's search fields.
func (s *DefaultPackageService) Create(ctx context.Context, req models.CreatePlannerPackageRequest) (*models.PlannerPackage, error) {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		return nil, ErrLocationRequired
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = untitledEvent
	}

	id := uuid.New().String()
	now := s.now()
	pkg := &models.PlannerPackage{
		ID:            id,
		Title:         title,
		Description:   fmt.Sprintf("Where: %s, When: %s, Size: %s\n\n%s", location, req.EventDate, req.Guests, req.Description),
		Services:      []models.Service{},
		AffiliateLink: strings.TrimRight(s.AffiliateBaseURL, "/") + "/" + id,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}
	s.Logger.Info("planner package created", zap.String("packageID", id))
	return pkg, nil
}

func (s *DefaultPackageService) List(ctx context.Context) ([]models.PlannerPackage, error) {
	packages, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return packages, nil
}

func (s *DefaultPackageService) Get(ctx context.Context, id string) (*models.PlannerPackage, error) {
	pkg, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return pkg, nil
}

// UpdateDetails edits the title and description. The title may not be blank.
func (s *DefaultPackageService) UpdateDetails(ctx context.Context, id, title, description string) (*models.PlannerPackage, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if err := s.Repo.UpdateDetails(ctx, id, title, description); err != nil {
		return nil, mapRepoError(err)
	}
	return s.Get(ctx, id)
}

func (s *DefaultPackageService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	s.Logger.Info("planner package deleted", zap.String("packageID", id))
	return nil
}

// AddService appends a catalog service to a package. Unavailable services and
// services already in the package are refused.
func (s *DefaultPackageService) AddService(ctx context.Context, id, serviceID string) (*models.PlannerPackage, error) {
	svc, ok := s.Catalog.FindService(serviceID)
	if !ok {
		return nil, ErrServiceNotFound
	}
	if !svc.IsAvailable() {
		return nil, ErrServiceUnavailable
	}

	pkg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, existing := range pkg.Services {
		if existing.ID == svc.ID {
			return nil, ErrServiceAlreadyAdded
		}
	}

	if err := s.Repo.AppendService(ctx, id, svc); err != nil {
		return nil, mapRepoError(err)
	}
	pkg.Services = append(pkg.Services, svc)
	pkg.UpdatedAt = s.now()
	return pkg, nil
}

// Stats aggregates views and profit across every package.
func (s *DefaultPackageService) Stats(ctx context.Context) (*models.PlannerStats, error) {
	packages, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.PlannerStats{MostViewedTitle: "None", PackageCount: len(packages)}
	var topViews int64
	for _, pkg := range packages {
		stats.TotalViews += pkg.Views
		stats.TotalProfit += pkg.Profit
		if pkg.Views > topViews {
			topViews = pkg.Views
			stats.MostViewedTitle = pkg.Title
		}
	}
	return stats, nil
}

func mapRepoError(err error) error {
	if errors.Is(err, plannerPackageRepo.ErrNotFound) {
		return ErrPackageNotFound
	}
	return err
}
