package database

import (
	"context"

	"realestate-listings/internal/models"
)

// PropertyStore owns every listing. Returned records are copies; the only
// mutation besides Insert is IncrementViews.
type PropertyStore interface {
	// List returns all records in insertion order.
	List(ctx context.Context) ([]models.Property, error)
	// Get returns nil, nil when id is unknown.
	Get(ctx context.Context, id string) (*models.Property, error)
	// Insert assigns a fresh id, defaults dateListed to now and starts views at 0.
	Insert(ctx context.Context, in models.PropertyInput) (models.Property, error)
	// IncrementViews adds exactly one view and returns the updated record,
	// or nil, nil when id is unknown.
	IncrementViews(ctx context.Context, id string) (*models.Property, error)
	Close() error
}
