package search

import (
	"context"
	"fmt"

	"realestate-listings/internal/database"
	"realestate-listings/internal/logger"
	"realestate-listings/internal/models"
)

// IndexingStore mirrors inserts into an Indexer. Index failures are logged and
// never fail the write; the store stays authoritative.
type IndexingStore struct {
	database.PropertyStore
	indexer Indexer
}

var _ database.PropertyStore = (*IndexingStore)(nil)

func NewIndexingStore(store database.PropertyStore, indexer Indexer) *IndexingStore {
	return &IndexingStore{PropertyStore: store, indexer: indexer}
}

func (s *IndexingStore) Insert(ctx context.Context, in models.PropertyInput) (models.Property, error) {
	p, err := s.PropertyStore.Insert(ctx, in)
	if err != nil {
		return p, err
	}
	if err := s.indexer.IndexProperty(p); err != nil {
		logger.Log.WithError(err).WithField("property_id", p.ID).Warn("Failed to index property")
	}
	return p, nil
}

// Reindex pushes every stored listing to the indexer and returns how many were sent.
func Reindex(ctx context.Context, store database.PropertyStore, indexer Indexer) (int, error) {
	properties, err := store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list properties: %w", err)
	}
	if err := indexer.IndexProperties(properties); err != nil {
		return 0, fmt.Errorf("index properties: %w", err)
	}
	return len(properties), nil
}
