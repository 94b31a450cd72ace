package catalog

import "eventify/models"

// DefaultCategories returns the built-in marketplace catalog.
func DefaultCategories() []models.Category {
	return []models.Category{
		{
			ID:   "1",
			Name: "Venues",
			Services: []models.Service{
				{ID: "1a", Name: "Community Hall", Price: "€500", Availability: models.Available, Image: "venue1"},
				{ID: "1b", Name: "Prestige Banquet Hall", Price: "€2000", Availability: models.Unavailable, Image: "venue2"},
				{ID: "1c", Name: "Skyline Terrace", Price: "€3000", Availability: models.Available, Image: "venue3"},
				{ID: "1d", Name: "Luxury Grand Ballroom", Price: "€10000", Availability: models.Available, Image: "venue4"},
			},
		},
		{
			ID:   "2",
			Name: "Catering Services",
			Services: []models.Service{
				{ID: "2a", Name: "Budget Catering", Price: "€300", Availability: models.Available, Image: "catering1"},
				{ID: "2b", Name: "Tasteful Bites Catering", Price: "€1300", Availability: models.Available, Image: "catering2"},
				{ID: "2c", Name: "Vegan Delights", Price: "€1400", Availability: models.Available, Image: "catering3"},
				{ID: "2d", Name: "Michelin Star Catering", Price: "€5000", Availability: models.Unavailable, Image: "catering4"},
			},
		},
		{
			ID:   "3",
			Name: "Entertainment Providers",
			Services: []models.Service{
				{ID: "3a", Name: "Local DJ", Price: "€150", Availability: models.Available, Image: "dj1"},
				{ID: "3b", Name: "DJ Royale", Price: "€500", Availability: models.Available, Image: "dj2"},
				{ID: "3c", Name: "Live Band Symphony", Price: "€1200", Availability: models.Unavailable, Image: "band1"},
				{ID: "3d", Name: "Celebrity Performer", Price: "€15000", Availability: models.Unavailable, Image: "celebrity"},
			},
		},
		{
			ID:   "4",
			Name: "Photographers & Videographers",
			Services: []models.Service{
				{ID: "4a", Name: "Student Photographer", Price: "€50", Availability: models.Available, Image: "photographer1"},
				{ID: "4b", Name: "Photographer Betty", Price: "€110", Availability: models.Available, Image: "photographer2"},
				{ID: "4c", Name: "Cinematic Videography", Price: "€700", Availability: models.Available, Image: "videographer1"},
				{ID: "4d", Name: "Luxury Wedding Filmmaking", Price: "€5000", Availability: models.Unavailable, Image: "videographer2"},
			},
		},
		{
			ID:   "5",
			Name: "Transportation Services",
			Services: []models.Service{
				{ID: "5a", Name: "Standard Taxi", Price: "€50", Availability: models.Available, Image: "taxi1"},
				{ID: "5b", Name: "Luxury Chauffeur", Price: "€200", Availability: models.Available, Image: "transport1"},
				{ID: "5c", Name: "Classic Car Rentals", Price: "€350", Availability: models.Available, Image: "transport2"},
				{ID: "5d", Name: "Private Jet Rental", Price: "€25000", Availability: models.Unavailable, Image: "privatejet"},
			},
		},
	}
}

// DefaultKeywords returns the keyword table used to read categories out of
// chat messages. Order matters: it is the scan order.
func DefaultKeywords() []models.CategoryKeywords {
	return []models.CategoryKeywords{
		{Category: "Venues", Keywords: []string{"venue", "venues"}},
		{Category: "Catering Services", Keywords: []string{"catering", "food"}},
		{Category: "Entertainment Providers", Keywords: []string{"entertainment", "dj", "band"}},
		{Category: "Photographers & Videographers", Keywords: []string{"photographer", "videographer", "photo", "video"}},
		{Category: "Transportation Services", Keywords: []string{"transport", "chauffeur", "car", "taxi", "bus"}},
	}
}
