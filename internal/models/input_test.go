package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() PropertyInput {
	return PropertyInput{
		Type:         PropertyTypeRental,
		Title:        "Test House",
		Description:  "A house used in tests",
		Price:        9000,
		PriceType:    PriceTypeRentMonthly,
		SizeValue:    850,
		SizeUnit:     SizeUnitSqft,
		Address:      "1 Test Street",
		Latitude:     12.66,
		Longitude:    79.54,
		Images:       []string{"https://example.com/a.jpg"},
		ContactName:  "Tester",
		ContactPhone: "+91 90000 00000",
	}
}

func TestPropertyInputValidate(t *testing.T) {
	require.NoError(t, validInput().Validate())

	cases := map[string]func(*PropertyInput){
		"unknown type":     func(in *PropertyInput) { in.Type = "castle" },
		"negative price":   func(in *PropertyInput) { in.Price = -1 },
		"NaN price":        func(in *PropertyInput) { in.Price = math.NaN() },
		"zero size":        func(in *PropertyInput) { in.SizeValue = 0 },
		"no images":        func(in *PropertyInput) { in.Images = nil },
		"blank image":      func(in *PropertyInput) { in.Images = []string{""} },
		"bad status":       func(in *PropertyInput) { in.Status = "Available" },
		"negative bedroom": func(in *PropertyInput) { n := -1; in.Bedrooms = &n },
		"latitude range":   func(in *PropertyInput) { in.Latitude = 91 },
		"missing contact":  func(in *PropertyInput) { in.ContactName = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			err := in.Validate()
			assert.ErrorIs(t, err, ErrInvalidProperty)
		})
	}
}

func TestToPropertyAppliesDefaults(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := validInput()

	p := in.ToProperty("id-1", now)

	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, DefaultCity, p.City)
	assert.Equal(t, DefaultState, p.State)
	assert.Equal(t, PropertyStatusAvailable, p.Status)
	assert.Equal(t, now, p.DateListed)
	assert.Equal(t, 0, p.Views)
	assert.NotNil(t, p.Features)
	assert.Empty(t, p.Features)
}

func TestToPropertyKeepsSuppliedDateAndDetachesSlices(t *testing.T) {
	listed := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	beds := 2
	in := validInput()
	in.DateListed = &listed
	in.Bedrooms = &beds

	p := in.ToProperty("id-2", time.Now())
	in.Images[0] = "mutated"
	beds = 9

	assert.Equal(t, listed, p.DateListed)
	assert.Equal(t, "https://example.com/a.jpg", p.Images[0])
	require.NotNil(t, p.Bedrooms)
	assert.Equal(t, 2, *p.Bedrooms)
}
