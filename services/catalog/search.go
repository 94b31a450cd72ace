package catalog

import (
	"strings"

	"eventify/models"
)

// AllCategories selects every category in a Filter.
const AllCategories = "All"

// Filter narrows the catalog for the explore screen.
type Filter struct {
	Category      string `form:"category"`
	Query         string `form:"q"`
	OnlyAvailable bool   `form:"onlyAvailable"`
}

// Search applies f and drops categories left without services by the query or
// availability filters.
func (c *Catalog) Search(f Filter) []models.Category {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]models.Category, 0, len(c.categories))

	for _, cat := range c.categories {
		if f.Category != "" && f.Category != AllCategories && cat.Name != f.Category {
			continue
		}
		if query == "" && !f.OnlyAvailable {
			out = append(out, cat)
			continue
		}

		var services []models.Service
		for _, svc := range cat.Services {
			if query != "" && !strings.Contains(strings.ToLower(svc.Name), query) {
				continue
			}
			if f.OnlyAvailable && !svc.IsAvailable() {
				continue
			}
			services = append(services, svc)
		}
		if len(services) == 0 {
			continue
		}
		out = append(out, models.Category{ID: cat.ID, Name: cat.Name, Services: services})
	}
	return out
}
