package models

import "time"

// PropertyType is the kind of listing.
type PropertyType string

const (
	PropertyTypeLand   PropertyType = "land"
	PropertyTypeRental PropertyType = "rental"
	PropertyTypeRetail PropertyType = "retail"
)

// Valid reports whether t is one of the declared property types.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeLand, PropertyTypeRental, PropertyTypeRetail:
		return true
	}
	return false
}

// PriceType tells whether Price is a one-time amount or a monthly rent.
type PriceType string

const (
	PriceTypeSale        PriceType = "sale"
	PriceTypeRentMonthly PriceType = "rent_monthly"
)

// SizeUnit is the unit of SizeValue.
type SizeUnit string

const (
	SizeUnitAcres SizeUnit = "acres"
	SizeUnitSqft  SizeUnit = "sqft"
)

// PropertyStatus is the availability of a listing.
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusPending   PropertyStatus = "pending"
	PropertyStatusSold      PropertyStatus = "sold"
)

// Valid reports whether s is one of the declared statuses.
func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusPending, PropertyStatusSold:
		return true
	}
	return false
}

const (
	DefaultCity  = "Cheyyar"
	DefaultState = "TN"
)

type Property struct {
	ID          string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	Type        PropertyType `gorm:"type:varchar(20);not null;index" json:"type"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Description string       `gorm:"type:text;not null" json:"description"`

	// Price is a sale amount or a monthly rent depending on PriceType.
	Price     float64   `gorm:"not null;index" json:"price"`
	PriceType PriceType `gorm:"type:varchar(20);not null" json:"priceType"`
	SizeValue float64   `gorm:"not null" json:"sizeValue"`
	SizeUnit  SizeUnit  `gorm:"type:varchar(10);not null" json:"sizeUnit"`

	Address   string  `gorm:"type:text;not null" json:"address"`
	City      string  `gorm:"type:varchar(100);not null;default:'Cheyyar'" json:"city"`
	State     string  `gorm:"type:varchar(10);not null;default:'TN'" json:"state"`
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	Images   []string `gorm:"type:json;serializer:json;not null" json:"images"`
	Features []string `gorm:"type:json;serializer:json;not null" json:"features"`

	// Bedrooms and Bathrooms are nil for listings where they are meaningless (land, retail).
	Bedrooms  *int `gorm:"type:int" json:"bedrooms"`
	Bathrooms *int `gorm:"type:int" json:"bathrooms"`

	Status       PropertyStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	DateListed   time.Time      `gorm:"type:datetime(6);not null;index:idx_date_listed,sort:desc" json:"dateListed"`
	ContactName  string         `gorm:"type:text;not null" json:"contactName"`
	ContactPhone string         `gorm:"type:varchar(40);not null" json:"contactPhone"`
	Views        int            `gorm:"not null;default:0" json:"views"`

	// Seq is the insertion sequence the SQL stores order by. The memory store
	// keeps order in its slice and leaves it zero.
	Seq uint64 `gorm:"autoIncrement;uniqueIndex;not null" json:"-"`
}

// TableName pins the table name used by GORM.
func (Property) TableName() string {
	return "properties"
}

// Clone returns a deep copy so callers never share slices or pointers with a store.
func (p Property) Clone() Property {
	c := p
	c.Images = append([]string(nil), p.Images...)
	c.Features = append([]string{}, p.Features...)
	if p.Bedrooms != nil {
		v := *p.Bedrooms
		c.Bedrooms = &v
	}
	if p.Bathrooms != nil {
		v := *p.Bathrooms
		c.Bathrooms = &v
	}
	return c
}
