package recommend

import "eventify/models"

func svc(id, name, price, availability string) models.Service {
	return models.Service{ID: id, Name: name, Price: price, Availability: availability}
}

func testCatalog() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Venues", Services: []models.Service{
			svc("1a", "Community Hall", "€500", models.Available),
			svc("1b", "Prestige Banquet Hall", "€2000", models.Unavailable),
			svc("1c", "Skyline Terrace", "€3000", models.Available),
			svc("1d", "Luxury Grand Ballroom", "€10000", models.Available),
		}},
		{ID: "2", Name: "Catering Services", Services: []models.Service{
			svc("2a", "Budget Catering", "€300", models.Available),
			svc("2b", "Tasteful Bites Catering", "€1300", models.Available),
			svc("2c", "Vegan Delights", "€1400", models.Available),
			svc("2d", "Michelin Star Catering", "€5000", models.Unavailable),
		}},
		{ID: "3", Name: "Entertainment Providers", Services: []models.Service{
			svc("3a", "Local DJ", "€150", models.Available),
			svc("3b", "DJ Royale", "€500", models.Available),
			svc("3c", "Live Band Symphony", "€1200", models.Unavailable),
			svc("3d", "Celebrity Performer", "€15000", models.Unavailable),
		}},
		{ID: "4", Name: "Photographers & Videographers", Services: []models.Service{
			svc("4a", "Student Photographer", "€50", models.Available),
			svc("4b", "Photographer Betty", "€110", models.Available),
			svc("4c", "Cinematic Videography", "€700", models.Available),
			svc("4d", "Luxury Wedding Filmmaking", "€5000", models.Unavailable),
		}},
		{ID: "5", Name: "Transportation Services", Services: []models.Service{
			svc("5a", "Standard Taxi", "€50", models.Available),
			svc("5b", "Luxury Chauffeur", "€200", models.Available),
			svc("5c", "Classic Car Rentals", "€350", models.Available),
			svc("5d", "Private Jet Rental", "€25000", models.Unavailable),
		}},
	}
}

func testKeywords() []models.CategoryKeywords {
	return []models.CategoryKeywords{
		{Category: "Venues", Keywords: []string{"venue", "venues"}},
		{Category: "Catering Services", Keywords: []string{"catering", "food"}},
		{Category: "Entertainment Providers", Keywords: []string{"entertainment", "dj", "band"}},
		{Category: "Photographers & Videographers", Keywords: []string{"photographer", "videographer", "photo", "video"}},
		{Category: "Transportation Services", Keywords: []string{"transport", "chauffeur", "car", "taxi", "bus"}},
	}
}

func ids(items []models.Service) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.ID)
	}
	return out
}

func equalIDs(got []models.Service, want ...string) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func testKeywordsFlorist() models.CategoryKeywords {
	return models.CategoryKeywords{Category: "Florists & Decorators", Keywords: []string{"florist"}}
}
