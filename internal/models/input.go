package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidProperty is returned when an insert fails validation.
var ErrInvalidProperty = errors.New("invalid property")

var validate = validator.New()

// ValidateStruct runs the shared validator over s.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// PropertyInput is the data accepted by a store insert. ID and Views are
// always assigned by the store; DateListed defaults to the insert time.
type PropertyInput struct {
	Type         PropertyType   `json:"type" validate:"required,oneof=land rental retail"`
	Title        string         `json:"title" validate:"required"`
	Description  string         `json:"description" validate:"required"`
	Price        float64        `json:"price" validate:"gte=0"`
	PriceType    PriceType      `json:"priceType" validate:"required,oneof=sale rent_monthly"`
	SizeValue    float64        `json:"sizeValue" validate:"gt=0"`
	SizeUnit     SizeUnit       `json:"sizeUnit" validate:"required,oneof=acres sqft"`
	Address      string         `json:"address" validate:"required"`
	City         string         `json:"city" validate:"omitempty,max=100"`
	State        string         `json:"state" validate:"omitempty,max=10"`
	Latitude     float64        `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude    float64        `json:"longitude" validate:"gte=-180,lte=180"`
	Images       []string       `json:"images" validate:"required,min=1,dive,required"`
	Features     []string       `json:"features"`
	Bedrooms     *int           `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms    *int           `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Status       PropertyStatus `json:"status,omitempty" validate:"omitempty,oneof=available pending sold"`
	DateListed   *time.Time     `json:"dateListed,omitempty"`
	ContactName  string         `json:"contactName" validate:"required"`
	ContactPhone string         `json:"contactPhone" validate:"required"`
}

// Validate checks the input before it becomes a listing.
func (in PropertyInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProperty, err)
	}
	return nil
}

// ToProperty builds a fresh record with id and defaults applied. It does not validate.
func (in PropertyInput) ToProperty(id string, now time.Time) Property {
	p := Property{
		ID:           id,
		Type:         in.Type,
		Title:        in.Title,
		Description:  in.Description,
		Price:        in.Price,
		PriceType:    in.PriceType,
		SizeValue:    in.SizeValue,
		SizeUnit:     in.SizeUnit,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Images:       in.Images,
		Features:     in.Features,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		Status:       in.Status,
		DateListed:   now,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		Views:        0,
	}
	if in.DateListed != nil {
		p.DateListed = *in.DateListed
	}
	if p.City == "" {
		p.City = DefaultCity
	}
	if p.State == "" {
		p.State = DefaultState
	}
	if p.Status == "" {
		p.Status = PropertyStatusAvailable
	}
	// Clone detaches the record from the caller's slices and pointers.
	return p.Clone()
}
