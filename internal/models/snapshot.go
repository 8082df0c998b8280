package models

import "time"

// CatalogSnapshot is a point-in-time summary of the whole catalog.
type CatalogSnapshot struct {
	CapturedAt time.Time              `json:"capturedAt"`
	Total      int                    `json:"total"`
	ByType     map[PropertyType]int   `json:"byType"`
	ByStatus   map[PropertyStatus]int `json:"byStatus"`
	TotalViews int                    `json:"totalViews"`
	MostViewed []ViewCount            `json:"mostViewed"`
}

// ViewCount pairs a listing with its detail-view counter.
type ViewCount struct {
	PropertyID string `json:"propertyId"`
	Title      string `json:"title"`
	Views      int    `json:"views"`
}
