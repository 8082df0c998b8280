package search

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"realestate-listings/internal/models"
)

// ErrInvalidFilter is returned for filter values outside their declared sets.
var ErrInvalidFilter = errors.New("invalid filter")

// FeaturedLimit caps the featured listing.
const FeaturedLimit = 5

// SortKey selects the single ordering applied to a result set.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortSizeAsc   SortKey = "size-asc"
	SortSizeDesc  SortKey = "size-desc"
	SortDateAsc   SortKey = "date-asc"
	SortDateDesc  SortKey = "date-desc"

	DefaultSort = SortDateDesc
)

// Valid reports whether k is a known sort key. The empty key is valid and means DefaultSort.
func (k SortKey) Valid() bool {
	switch k {
	case "", SortPriceAsc, SortPriceDesc, SortSizeAsc, SortSizeDesc, SortDateAsc, SortDateDesc:
		return true
	}
	return false
}

// PropertyFilter describes one listing query. Zero values mean "not filtered".
type PropertyFilter struct {
	Type     models.PropertyType
	Status   models.PropertyStatus
	MinPrice *float64
	MaxPrice *float64
	MinSize  *float64
	MaxSize  *float64
	// Bedrooms and Bathrooms are minimums; records without a count never match.
	Bedrooms  *float64
	Bathrooms *float64
	Search    string
	SortBy    SortKey
}

// Validate checks the enum fields.
func (f PropertyFilter) Validate() error {
	if f.Type != "" && !f.Type.Valid() {
		return fmt.Errorf("%w: type %q", ErrInvalidFilter, f.Type)
	}
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidFilter, f.Status)
	}
	if !f.SortBy.Valid() {
		return fmt.Errorf("%w: sortBy %q", ErrInvalidFilter, f.SortBy)
	}
	return nil
}

// Matches reports whether p satisfies every active predicate.
func (f PropertyFilter) Matches(p *models.Property) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinSize != nil && p.SizeValue < *f.MinSize {
		return false
	}
	if f.MaxSize != nil && p.SizeValue > *f.MaxSize {
		return false
	}
	if f.Bedrooms != nil && !atLeast(p.Bedrooms, *f.Bedrooms) {
		return false
	}
	if f.Bathrooms != nil && !atLeast(p.Bathrooms, *f.Bathrooms) {
		return false
	}
	if f.Search != "" && !matchesText(p, strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func atLeast(count *int, min float64) bool {
	return count != nil && float64(*count) >= min
}

func matchesText(p *models.Property, query string) bool {
	for _, field := range []string{p.Title, p.Description, p.Address, p.City, p.State} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	for _, feature := range p.Features {
		if strings.Contains(strings.ToLower(feature), query) {
			return true
		}
	}
	return false
}

// Query returns the records matching filter in the requested order. A nil
// filter behaves like an empty one. Input order is kept among equal sort keys.
// The only error is ErrInvalidFilter, for enum values that skipped ParseFilter.
func Query(properties []models.Property, filter *PropertyFilter) ([]models.Property, error) {
	var f PropertyFilter
	if filter != nil {
		f = *filter
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	result := make([]models.Property, 0, len(properties))
	for i := range properties {
		if f.Matches(&properties[i]) {
			result = append(result, properties[i])
		}
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = DefaultSort
	}
	slices.SortStableFunc(result, comparator(sortBy))
	return result, nil
}

func comparator(key SortKey) func(a, b models.Property) int {
	switch key {
	case SortPriceAsc:
		return func(a, b models.Property) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		return func(a, b models.Property) int { return cmp.Compare(b.Price, a.Price) }
	case SortSizeAsc:
		return func(a, b models.Property) int { return cmp.Compare(a.SizeValue, b.SizeValue) }
	case SortSizeDesc:
		return func(a, b models.Property) int { return cmp.Compare(b.SizeValue, a.SizeValue) }
	case SortDateAsc:
		return func(a, b models.Property) int { return a.DateListed.Compare(b.DateListed) }
	default:
		return func(a, b models.Property) int { return b.DateListed.Compare(a.DateListed) }
	}
}

// Featured returns up to FeaturedLimit available listings, newest first.
func Featured(properties []models.Property) []models.Property {
	featured, _ := Query(properties, &PropertyFilter{
		Status: models.PropertyStatusAvailable,
		SortBy: SortDateDesc,
	})
	if len(featured) > FeaturedLimit {
		featured = featured[:FeaturedLimit]
	}
	return featured
}
