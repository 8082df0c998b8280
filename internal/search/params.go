package search

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"realestate-listings/internal/models"
)

// Query-string parameter names understood by ParseFilter.
const (
	ParamType      = "type"
	ParamStatus    = "status"
	ParamMinPrice  = "minPrice"
	ParamMaxPrice  = "maxPrice"
	ParamMinSize   = "minSize"
	ParamMaxSize   = "maxSize"
	ParamBedrooms  = "bedrooms"
	ParamBathrooms = "bathrooms"
	ParamSearch    = "search"
	ParamSortBy    = "sortBy"
)

// decimalNumber is plain decimal notation with an optional exponent. Hex,
// underscores and the Inf/NaN spellings strconv understands are refused.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseFilter converts query-string values into a validated filter.
// Missing or empty parameters are absent, a blank number is 0 and unknown
// parameters are ignored.
func ParseFilter(values url.Values) (PropertyFilter, error) {
	var f PropertyFilter

	single := func(key string) (string, error) {
		vals := values[key]
		switch len(vals) {
		case 0:
			return "", nil
		case 1:
			return vals[0], nil
		default:
			return "", fmt.Errorf("%w: %s given %d times", ErrInvalidFilter, key, len(vals))
		}
	}

	number := func(key string) (*float64, error) {
		raw, err := single(key)
		if err != nil || raw == "" {
			return nil, err
		}
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			zero := 0.0
			return &zero, nil
		}
		if !decimalNumber.MatchString(trimmed) {
			return nil, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidFilter, key, raw)
		}
		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidFilter, key, raw)
		}
		return &n, nil
	}

	raw, err := single(ParamType)
	if err != nil {
		return f, err
	}
	f.Type = models.PropertyType(raw)

	if raw, err = single(ParamStatus); err != nil {
		return f, err
	}
	f.Status = models.PropertyStatus(raw)

	if raw, err = single(ParamSortBy); err != nil {
		return f, err
	}
	f.SortBy = SortKey(raw)

	if f.Search, err = single(ParamSearch); err != nil {
		return f, err
	}

	for key, dst := range map[string]**float64{
		ParamMinPrice:  &f.MinPrice,
		ParamMaxPrice:  &f.MaxPrice,
		ParamMinSize:   &f.MinSize,
		ParamMaxSize:   &f.MaxSize,
		ParamBedrooms:  &f.Bedrooms,
		ParamBathrooms: &f.Bathrooms,
	} {
		if *dst, err = number(key); err != nil {
			return PropertyFilter{}, err
		}
	}

	if err := f.Validate(); err != nil {
		return PropertyFilter{}, err
	}
	return f, nil
}

// Values encodes f as query-string values accepted by ParseFilter.
func (f PropertyFilter) Values() url.Values {
	v := url.Values{}
	if f.Type != "" {
		v.Set(ParamType, string(f.Type))
	}
	if f.Status != "" {
		v.Set(ParamStatus, string(f.Status))
	}
	setNumber := func(key string, n *float64) {
		if n != nil {
			v.Set(key, strconv.FormatFloat(*n, 'f', -1, 64))
		}
	}
	setNumber(ParamMinPrice, f.MinPrice)
	setNumber(ParamMaxPrice, f.MaxPrice)
	setNumber(ParamMinSize, f.MinSize)
	setNumber(ParamMaxSize, f.MaxSize)
	setNumber(ParamBedrooms, f.Bedrooms)
	setNumber(ParamBathrooms, f.Bathrooms)
	if f.Search != "" {
		v.Set(ParamSearch, f.Search)
	}
	if f.SortBy != "" {
		v.Set(ParamSortBy, string(f.SortBy))
	}
	return v
}
