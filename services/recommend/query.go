package recommend

import (
	"regexp"
	"strconv"
	"strings"

	"eventify/models"
)

// numberRun matches the first digit run, allowing "." as a thousands separator.
var numberRun = regexp.MustCompile(`\d[\d.]*`)

// ExtractBudget reads the first number in text as a budget. Only the first run
// counts, so "50 guests, budget 2000" yields 50.
func ExtractBudget(text string) (int64, bool) {
	match := numberRun.FindString(text)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(match, ".", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MatchCategories returns the catalog categories whose keywords occur in text,
// in keyword-table order and without duplicates.
func MatchCategories(text string, table []models.CategoryKeywords, catalog []models.Category) []models.Category {
	lower := strings.ToLower(text)
	var matched []models.Category
	seen := make(map[string]bool)

	for _, entry := range table {
		for _, keyword := range entry.Keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			cat, ok := categoryByName(catalog, entry.Category)
			if ok && !seen[cat.ID] {
				seen[cat.ID] = true
				matched = append(matched, cat)
			}
		}
	}
	return matched
}

// ParseIntent combines budget extraction and category matching.
func ParseIntent(text string, table []models.CategoryKeywords, catalog []models.Category) models.Intent {
	budget, _ := ExtractBudget(text)
	return models.Intent{
		Budget:     budget,
		Categories: MatchCategories(text, table, catalog),
	}
}

func categoryByName(catalog []models.Category, name string) (models.Category, bool) {
	for _, cat := range catalog {
		if cat.Name == name {
			return cat, true
		}
	}
	return models.Category{}, false
}
