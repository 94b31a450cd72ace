package planner

import (
	"context"
	"errors"

	"eventify/models"
)

var (
	ErrPackageNotFound     = errors.New("package not found")
	ErrLocationRequired    = errors.New("please enter a location")
	ErrTitleRequired       = errors.New("please enter a package title")
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceUnavailable  = errors.New("this service is currently unavailable")
	ErrServiceAlreadyAdded = errors.New("this service is already in your package")
)

// PackageService manages the packages a planner curates and shares.
type PackageService interface {
	Create(ctx context.Context, req models.CreatePlannerPackageRequest) (*models.PlannerPackage, error)
	List(ctx context.Context) ([]models.PlannerPackage, error)
	Get(ctx context.Context, id string) (*models.PlannerPackage, error)
	UpdateDetails(ctx context.Context, id, title, description string) (*models.PlannerPackage, error)
	Delete(ctx context.Context, id string) error
	AddService(ctx context.Context, id, serviceID string) (*models.PlannerPackage, error)
	Stats(ctx context.Context) (*models.PlannerStats, error)
}
