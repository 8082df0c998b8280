package search

import (
	"cmp"
	"fmt"
	"strings"
	"testing"
	"time"

	"realestate-listings/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var baseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Small value domains so generated catalogues contain plenty of ties.
func propertyGenerator(index int) *rapid.Generator[models.Property] {
	return rapid.Custom(func(t *rapid.T) models.Property {
		p := models.Property{
			ID:          fmt.Sprintf("p%03d", index),
			Type:        rapid.SampledFrom([]models.PropertyType{models.PropertyTypeLand, models.PropertyTypeRental, models.PropertyTypeRetail}).Draw(t, "type"),
			Title:       rapid.SampledFrom([]string{"Plot", "House with Garden", "Shop", "Studio"}).Draw(t, "title"),
			Description: rapid.SampledFrom([]string{"Quiet area", "Near the BUS stand", "garden view"}).Draw(t, "description"),
			Price:       float64(rapid.IntRange(0, 10).Draw(t, "price")) * 1000,
			SizeValue:   float64(rapid.IntRange(1, 5).Draw(t, "size")) * 100,
			Address:     rapid.SampledFrom([]string{"Main Road", "Temple Street"}).Draw(t, "address"),
			City:        models.DefaultCity,
			State:       models.DefaultState,
			Images:      []string{"img"},
			Features:    rapid.SliceOfN(rapid.SampledFrom([]string{"Parking", "Terrace Garden", "Gym"}), 0, 2).Draw(t, "features"),
			Status:      rapid.SampledFrom([]models.PropertyStatus{models.PropertyStatusAvailable, models.PropertyStatusPending, models.PropertyStatusSold}).Draw(t, "status"),
			DateListed:  baseTime.Add(time.Duration(rapid.IntRange(0, 6).Draw(t, "hours")) * time.Hour),
			Views:       rapid.IntRange(0, 3).Draw(t, "views"),
		}
		if rapid.Bool().Draw(t, "hasRooms") {
			beds := rapid.IntRange(0, 4).Draw(t, "bedrooms")
			baths := rapid.IntRange(0, 3).Draw(t, "bathrooms")
			p.Bedrooms = &beds
			p.Bathrooms = &baths
		}
		return p
	})
}

func catalogueGenerator() *rapid.Generator[[]models.Property] {
	return rapid.Custom(func(t *rapid.T) []models.Property {
		n := rapid.IntRange(0, 25).Draw(t, "n")
		props := make([]models.Property, n)
		for i := range props {
			props[i] = propertyGenerator(i).Draw(t, fmt.Sprintf("property%d", i))
		}
		return props
	})
}

func optionalFloat(t *rapid.T, label string, min, max int) *float64 {
	if !rapid.Bool().Draw(t, label+"Set") {
		return nil
	}
	v := float64(rapid.IntRange(min, max).Draw(t, label))
	return &v
}

func filterGenerator() *rapid.Generator[PropertyFilter] {
	return rapid.Custom(func(t *rapid.T) PropertyFilter {
		return PropertyFilter{
			Type:      rapid.SampledFrom([]models.PropertyType{"", models.PropertyTypeLand, models.PropertyTypeRental, models.PropertyTypeRetail}).Draw(t, "type"),
			Status:    rapid.SampledFrom([]models.PropertyStatus{"", models.PropertyStatusAvailable, models.PropertyStatusSold}).Draw(t, "status"),
			MinPrice:  optionalFloat(t, "minPrice", 0, 10000),
			MaxPrice:  optionalFloat(t, "maxPrice", 0, 10000),
			MinSize:   optionalFloat(t, "minSize", 0, 500),
			MaxSize:   optionalFloat(t, "maxSize", 0, 500),
			Bedrooms:  optionalFloat(t, "bedrooms", 0, 4),
			Bathrooms: optionalFloat(t, "bathrooms", 0, 3),
			Search:    rapid.SampledFrom([]string{"", "garden", "GARDEN", "bus", "cheyyar", "tn", "nothing-matches"}).Draw(t, "search"),
			SortBy:    rapid.SampledFrom([]SortKey{"", SortPriceAsc, SortPriceDesc, SortSizeAsc, SortSizeDesc, SortDateAsc, SortDateDesc}).Draw(t, "sortBy"),
		}
	})
}

func containsFold(p models.Property, q string) bool {
	q = strings.ToLower(q)
	for _, s := range append([]string{p.Title, p.Description, p.Address, p.City, p.State}, p.Features...) {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// sortKey returns the value a sort orders by and whether it is descending.
func sortKey(key SortKey, p models.Property) (float64, bool) {
	switch key {
	case SortPriceAsc:
		return p.Price, false
	case SortPriceDesc:
		return p.Price, true
	case SortSizeAsc:
		return p.SizeValue, false
	case SortSizeDesc:
		return p.SizeValue, true
	case SortDateAsc:
		return float64(p.DateListed.Unix()), false
	default:
		return float64(p.DateListed.Unix()), true
	}
}

func testQuery_ResultsSatisfyFilter_Properties(t *rapid.T) {
	props := catalogueGenerator().Draw(t, "props")
	f := filterGenerator().Draw(t, "filter")

	got, err := Query(props, &f)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}

	for _, p := range got {
		if f.Type != "" && p.Type != f.Type {
			t.Fatalf("%s: type %s, want %s", p.ID, p.Type, f.Type)
		}
		if f.Status != "" && p.Status != f.Status {
			t.Fatalf("%s: status %s, want %s", p.ID, p.Status, f.Status)
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice || f.MaxPrice != nil && p.Price > *f.MaxPrice {
			t.Fatalf("%s: price %v out of bounds", p.ID, p.Price)
		}
		if f.MinSize != nil && p.SizeValue < *f.MinSize || f.MaxSize != nil && p.SizeValue > *f.MaxSize {
			t.Fatalf("%s: size %v out of bounds", p.ID, p.SizeValue)
		}
		if f.Bedrooms != nil && (p.Bedrooms == nil || float64(*p.Bedrooms) < *f.Bedrooms) {
			t.Fatalf("%s: bedrooms below %v", p.ID, *f.Bedrooms)
		}
		if f.Bathrooms != nil && (p.Bathrooms == nil || float64(*p.Bathrooms) < *f.Bathrooms) {
			t.Fatalf("%s: bathrooms below %v", p.ID, *f.Bathrooms)
		}
		if f.Search != "" && !containsFold(p, f.Search) {
			t.Fatalf("%s: no field contains %q", p.ID, f.Search)
		}
	}

	// Nothing that matches is dropped.
	matching := 0
	for i := range props {
		if f.Matches(&props[i]) {
			matching++
		}
	}
	if matching != len(got) {
		t.Fatalf("got %d results, %d records match", len(got), matching)
	}
}

func TestQuery_ResultsSatisfyFilter_Properties(t *testing.T) {
	rapid.Check(t, testQuery_ResultsSatisfyFilter_Properties)
}

func FuzzQuery_ResultsSatisfyFilter_Properties(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testQuery_ResultsSatisfyFilter_Properties))
}

func testQuery_SortedAndStable_Properties(t *rapid.T) {
	props := catalogueGenerator().Draw(t, "props")
	key := rapid.SampledFrom([]SortKey{"", SortPriceAsc, SortPriceDesc, SortSizeAsc, SortSizeDesc, SortDateAsc, SortDateDesc}).Draw(t, "sortBy")

	got, err := Query(props, &PropertyFilter{SortBy: key})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != len(props) {
		t.Fatalf("got %d results, want %d", len(got), len(props))
	}

	for i := 1; i < len(got); i++ {
		prev, desc := sortKey(key, got[i-1])
		cur, _ := sortKey(key, got[i])
		order := cmp.Compare(prev, cur)
		if desc {
			order = -order
		}
		if order > 0 {
			t.Fatalf("%s before %s breaks %q ordering", got[i-1].ID, got[i].ID, key)
		}
		// IDs encode input position, so equal keys must keep ascending IDs.
		if order == 0 && got[i-1].ID > got[i].ID {
			t.Fatalf("equal keys reordered: %s before %s", got[i-1].ID, got[i].ID)
		}
	}
}

func TestQuery_SortedAndStable_Properties(t *testing.T) {
	rapid.Check(t, testQuery_SortedAndStable_Properties)
}

func FuzzQuery_SortedAndStable_Properties(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testQuery_SortedAndStable_Properties))
}

func testQuery_IdempotentAndDefault_Properties(t *rapid.T) {
	props := catalogueGenerator().Draw(t, "props")
	f := filterGenerator().Draw(t, "filter")

	first, err := Query(props, &f)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	second, _ := Query(props, &f)
	if !equalIDs(first, second) {
		t.Fatalf("repeated query differs")
	}

	none, _ := Query(props, nil)
	empty, _ := Query(props, &PropertyFilter{})
	dateDesc, _ := Query(props, &PropertyFilter{SortBy: SortDateDesc})
	if !equalIDs(none, empty) || !equalIDs(empty, dateDesc) {
		t.Fatalf("nil, empty and date-desc filters disagree")
	}
}

func TestQuery_IdempotentAndDefault_Properties(t *testing.T) {
	rapid.Check(t, testQuery_IdempotentAndDefault_Properties)
}

func testFeatured_Policy_Properties(t *rapid.T) {
	props := catalogueGenerator().Draw(t, "props")

	got := Featured(props)
	if len(got) > FeaturedLimit {
		t.Fatalf("featured returned %d records", len(got))
	}
	available := 0
	for _, p := range props {
		if p.Status == models.PropertyStatusAvailable {
			available++
		}
	}
	if want := min(available, FeaturedLimit); len(got) != want {
		t.Fatalf("featured returned %d records, want %d", len(got), want)
	}
	for i, p := range got {
		if p.Status != models.PropertyStatusAvailable {
			t.Fatalf("%s is %s", p.ID, p.Status)
		}
		if i > 0 && got[i-1].DateListed.Before(p.DateListed) {
			t.Fatalf("featured not newest first at %d", i)
		}
	}
}

func TestFeatured_Policy_Properties(t *testing.T) {
	rapid.Check(t, testFeatured_Policy_Properties)
}

func equalIDs(a, b []models.Property) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	props := []models.Property{
		{ID: "a", Price: 3, DateListed: baseTime},
		{ID: "b", Price: 1, DateListed: baseTime.Add(time.Hour)},
		{ID: "c", Price: 2, DateListed: baseTime.Add(2 * time.Hour)},
	}

	got, err := Query(props, &PropertyFilter{SortBy: SortPriceAsc})
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c", "a"}, ids(got))
	assert.Equal(t, []string{"a", "b", "c"}, ids(props))
}

func TestQuery_RejectsUnvalidatedEnums(t *testing.T) {
	for _, f := range []PropertyFilter{
		{Type: "castle"},
		{Status: "rented"},
		{SortBy: "views-desc"},
	} {
		_, err := Query(nil, &f)
		assert.ErrorIs(t, err, ErrInvalidFilter)
	}
}

func TestQuery_EmptyResultIsNotAnError(t *testing.T) {
	got, err := Query(nil, &PropertyFilter{Search: "anything"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatches_ZeroBedroomThreshold(t *testing.T) {
	zero := 0
	threshold := 0.0
	f := PropertyFilter{Bedrooms: &threshold}

	assert.True(t, f.Matches(&models.Property{Bedrooms: &zero}))
	assert.False(t, f.Matches(&models.Property{}))
}

func ids(props []models.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}
