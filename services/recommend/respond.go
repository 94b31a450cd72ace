package recommend

import (
	"fmt"

	"eventify/models"
)

// Engine answers free-text queries against a read-only catalog. It holds no
// mutable state and is safe to share between requests.
type Engine struct {
	Categories []models.Category
	Keywords   []models.CategoryKeywords
}

// NewEngine builds an engine over the given catalog and keyword table.
func NewEngine(categories []models.Category, keywords []models.CategoryKeywords) *Engine {
	return &Engine{Categories: categories, Keywords: keywords}
}

// Respond interprets text and returns a listing, a package, a "nothing found"
// answer or a delegate marker asking the caller to fall back to free-form chat.
func (e *Engine) Respond(text string) models.Recommendation {
	intent := ParseIntent(text, e.Keywords, e.Categories)
	budget := intent.Budget

	switch {
	case len(intent.Categories) == 1:
		cat := intent.Categories[0]
		items := AvailableServices(cat, budget)
		if len(items) == 0 {
			return none(fmt.Sprintf("No available services found for %s%s.", cat.Name, under(budget)))
		}
		return models.Recommendation{
			Kind:    models.KindListing,
			Items:   items,
			Message: fmt.Sprintf("Here are all available services in %s%s:", cat.Name, under(budget)),
			Total:   sumPrices(items),
		}

	case len(intent.Categories) > 1:
		var pkg models.Package
		if budget > 0 {
			pkg = BuildCrossCategoryPackage(intent.Categories, budget)
		} else {
			pkg = BestPerCategory(intent.Categories, 0)
		}
		if pkg.Empty() {
			within := ""
			if budget > 0 {
				within = " within your " + FormatPrice(budget)
			}
			return none("Sorry, I couldn't find any available items under these categories" + within + ".")
		}
		return packaged(pkg, "Here's a 1-item-per-category package"+under(budget)+":")

	case budget > 0:
		pkg := BuildCrossCategoryPackage(e.Categories, budget)
		if pkg.Empty() {
			return none(fmt.Sprintf("Sorry, I couldn't find any services under %s.", FormatPrice(budget)))
		}
		return packaged(pkg, fmt.Sprintf("Based on your budget of %s, here is a single-item package from all our categories:", FormatPrice(budget)))

	default:
		pkg := BestPerCategory(e.Categories, 0)
		if pkg.Empty() {
			return models.Recommendation{Kind: models.KindDelegate}
		}
		return packaged(pkg, "Here are our top picks from all categories:")
	}
}

// CategoriesByName resolves names against the catalog, ignoring unknown ones.
func (e *Engine) CategoriesByName(names ...string) []models.Category {
	var out []models.Category
	for _, name := range names {
		if cat, ok := categoryByName(e.Categories, name); ok {
			out = append(out, cat)
		}
	}
	return out
}

func packaged(pkg models.Package, message string) models.Recommendation {
	return models.Recommendation{
		Kind:      models.KindPackage,
		Items:     pkg.Items,
		Message:   message,
		Total:     pkg.Total,
		IsPackage: true,
	}
}

func none(message string) models.Recommendation {
	return models.Recommendation{Kind: models.KindNone, Message: message}
}

func under(budget int64) string {
	if budget <= 0 {
		return ""
	}
	return " under " + FormatPrice(budget)
}

func sumPrices(items []models.Service) int64 {
	var total int64
	for _, svc := range items {
		total += ParsePrice(svc.Price)
	}
	return total
}
