package snapshot

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"realestate-listings/internal/logger"
	"realestate-listings/internal/models"
)

// MostViewedLimit caps CatalogSnapshot.MostViewed.
const MostViewedLimit = 5

// Lister is the part of the property store a snapshot reads.
type Lister interface {
	List(ctx context.Context) ([]models.Property, error)
}

// Summarize computes a catalog summary. Listings with no views are left out
// of MostViewed; ties are broken by title.
func Summarize(properties []models.Property, now time.Time) models.CatalogSnapshot {
	snap := models.CatalogSnapshot{
		CapturedAt: now,
		Total:      len(properties),
		ByType:     make(map[models.PropertyType]int),
		ByStatus:   make(map[models.PropertyStatus]int),
		MostViewed: []models.ViewCount{},
	}

	for _, p := range properties {
		snap.ByType[p.Type]++
		snap.ByStatus[p.Status]++
		snap.TotalViews += p.Views
		if p.Views > 0 {
			snap.MostViewed = append(snap.MostViewed, models.ViewCount{
				PropertyID: p.ID,
				Title:      p.Title,
				Views:      p.Views,
			})
		}
	}

	slices.SortFunc(snap.MostViewed, func(a, b models.ViewCount) int {
		if c := cmp.Compare(b.Views, a.Views); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Title, b.Title); c != 0 {
			return c
		}
		return cmp.Compare(a.PropertyID, b.PropertyID)
	})
	if len(snap.MostViewed) > MostViewedLimit {
		snap.MostViewed = snap.MostViewed[:MostViewedLimit]
	}
	return snap
}

// Service handles catalog snapshot operations and keeps the last limit captures.
type Service struct {
	store Lister
	limit int
	now   func() time.Time

	mu      sync.RWMutex
	history []models.CatalogSnapshot
}

// NewService creates a new snapshot service
func NewService(store Lister, limit int) *Service {
	if limit <= 0 {
		limit = 30
	}
	return &Service{store: store, limit: limit, now: time.Now}
}

// Current summarizes the catalog without recording it.
func (s *Service) Current(ctx context.Context) (models.CatalogSnapshot, error) {
	properties, err := s.store.List(ctx)
	if err != nil {
		return models.CatalogSnapshot{}, fmt.Errorf("failed to list properties: %w", err)
	}
	return Summarize(properties, s.now()), nil
}

// Capture summarizes the catalog and appends it to the history.
func (s *Service) Capture(ctx context.Context) (models.CatalogSnapshot, error) {
	snap, err := s.Current(ctx)
	if err != nil {
		return snap, err
	}

	s.mu.Lock()
	s.history = append(s.history, snap)
	if over := len(s.history) - s.limit; over > 0 {
		s.history = slices.Delete(s.history, 0, over)
	}
	s.mu.Unlock()

	logger.Log.Infof("Snapshot: Captured total=%d views=%d", snap.Total, snap.TotalViews)
	return snap, nil
}

// Recent returns up to n snapshots, newest first. n <= 0 returns all of them.
func (s *Service) Recent(n int) []models.CatalogSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.history) {
		n = len(s.history)
	}
	out := make([]models.CatalogSnapshot, 0, n)
	for i := len(s.history) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.history[i])
	}
	return out
}
