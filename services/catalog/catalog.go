package catalog

import (
	"context"
	"strings"

	"eventify/models"

	"go.uber.org/zap"
)

// Planner slot category names.
const (
	VenuesCategory        = "Venues"
	CateringCategory      = "Catering Services"
	EntertainmentCategory = "Entertainment Providers"
)

// Source loads a stored catalog. An empty result means nothing has been seeded.
type Source interface {
	LoadCategories(ctx context.Context) ([]models.Category, error)
}

// Catalog is the read-only set of categories and keywords shared by every
// request. It is never mutated after construction.
type Catalog struct {
	categories []models.Category
	keywords   []models.CategoryKeywords
	byID       map[string]models.Service
	byName     map[string]models.Service
}

// New indexes the given categories. Ids and names are only unique within a
// category, so on a collision the first service wins for both lookups.
func New(categories []models.Category, keywords []models.CategoryKeywords) *Catalog {
	c := &Catalog{
		categories: categories,
		keywords:   keywords,
		byID:       make(map[string]models.Service),
		byName:     make(map[string]models.Service),
	}
	for _, cat := range categories {
		for _, svc := range cat.Services {
			if _, exists := c.byID[svc.ID]; !exists {
				c.byID[svc.ID] = svc
			}
			key := normalizeName(svc.Name)
			if _, exists := c.byName[key]; !exists {
				c.byName[key] = svc
			}
		}
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(DefaultCategories(), DefaultKeywords())
}

// Load reads the catalog from src and falls back to the built-in one when the
// store is empty or unreachable.
func Load(ctx context.Context, src Source, logger *zap.Logger) *Catalog {
	if src == nil {
		return Default()
	}
	categories, err := src.LoadCategories(ctx)
	if err != nil {
		logger.Warn("catalog: failed to load stored catalog, using defaults", zap.Error(err))
		return Default()
	}
	if len(categories) == 0 {
		logger.Info("catalog: no stored catalog, using defaults")
		return Default()
	}
	logger.Info("catalog: loaded stored catalog", zap.Int("categories", len(categories)))
	return New(categories, DefaultKeywords())
}

// Categories returns the catalog's categories in display order.
func (c *Catalog) Categories() []models.Category {
	return c.categories
}

// Keywords returns the keyword table in scan order.
func (c *Catalog) Keywords() []models.CategoryKeywords {
	return c.keywords
}

// FindService looks a service up by id.
func (c *Catalog) FindService(id string) (models.Service, bool) {
	svc, ok := c.byID[id]
	return svc, ok
}

// FindServiceByName looks a service up by display name, ignoring case and
// surrounding whitespace.
func (c *Catalog) FindServiceByName(name string) (models.Service, bool) {
	svc, ok := c.byName[normalizeName(name)]
	return svc, ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
