package models

import "time"

// PlannerPackage is a package curated by a planner and shared through an affiliate link.
type PlannerPackage struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Services      []Service `bson:"services" json:"services"`
	AffiliateLink string    `bson:"affiliateLink" json:"affiliateLink"`
	Views         int64     `bson:"views" json:"views"`
	Profit        float64   `bson:"profit" json:"profit"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreatePlannerPackageRequest holds the dashboard's hero fields.
type CreatePlannerPackageRequest struct {
	Location    string `json:"location"`
	EventDate   string `json:"eventDate"`
	Guests      string `json:"guests"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PlannerStats summarises a planner's packages.
type PlannerStats struct {
	TotalViews      int64   `json:"totalViews"`
	TotalProfit     float64 `json:"totalProfit"`
	MostViewedTitle string  `json:"mostViewedTitle"`
	PackageCount    int     `json:"packageCount"`
}
