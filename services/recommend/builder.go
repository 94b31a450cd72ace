package recommend

import (
	"sort"

	"eventify/models"
)

// AvailableServices filters a category down to available services priced within
// budget. A budget of 0 means no constraint.
func AvailableServices(category models.Category, budget int64) []models.Service {
	var out []models.Service
	for _, svc := range category.Services {
		if !svc.IsAvailable() {
			continue
		}
		if budget > 0 && ParsePrice(svc.Price) > budget {
			continue
		}
		out = append(out, svc)
	}
	return out
}

// BestSingleItem picks the most expensive affordable service of a category.
// Ties go to the service listed first.
func BestSingleItem(category models.Category, budget int64) (models.Service, bool) {
	candidates := AvailableServices(category, budget)
	if len(candidates) == 0 {
		return models.Service{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return ParsePrice(candidates[i].Price) > ParsePrice(candidates[j].Price)
	})
	return candidates[0], true
}

// BestPerCategory collects BestSingleItem for each category, skipping
// categories with nothing to offer.
func BestPerCategory(categories []models.Category, budget int64) models.Package {
	pkg := models.Package{IsPackage: true}
	for _, cat := range categories {
		if svc, ok := BestSingleItem(cat, budget); ok {
			pkg.Items = append(pkg.Items, svc)
			pkg.Total += ParsePrice(svc.Price)
		}
	}
	return pkg
}
