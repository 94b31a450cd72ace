package plannerPackageRepo

import (
	"context"
	"errors"

	"eventify/models"
)

// ErrNotFound is returned when no package matches the given id.
var ErrNotFound = errors.New("planner package not found")

// PlannerPackageRepository defines data access for planner packages.
type PlannerPackageRepository interface {
	// Create inserts a new package.
	Create(ctx context.Context, pkg *models.PlannerPackage) error
	// GetByID retrieves a package by its id.
	GetByID(ctx context.Context, id string) (*models.PlannerPackage, error)
	// GetAll returns every package, newest first.
	GetAll(ctx context.Context) ([]models.PlannerPackage, error)
	// UpdateDetails changes the title and description of a package.
	UpdateDetails(ctx context.Context, id, title, description string) error
	// AppendService adds svc to the package's service list.
	AppendService(ctx context.Context, id string, svc models.Service) error
	// Delete removes a package.
	Delete(ctx context.Context, id string) error
}
