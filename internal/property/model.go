// Package property provides the rental listing domain model and data access.
package property

import (
	"strings"

	"github.com/gosimple/slug"
)

// City is one of the cities the catalog is bucketed by.
type City string

const (
	AddisAbaba City = "Addis Ababa"
	Nairobi    City = "Nairobi"
	Lagos      City = "Lagos"
)

// Cities is the fixed city order used when flattening the catalog.
var Cities = []City{AddisAbaba, Nairobi, Lagos}

// IsValid reports whether c is a known city.
func (c City) IsValid() bool {
	for _, v := range Cities {
		if c == v {
			return true
		}
	}
	return false
}

// ParseCity matches s against the known cities, ignoring case and surrounding space.
func ParseCity(s string) (City, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Cities {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return City(s), false
}

// Type is the kind of space being rented.
type Type string

const (
	House     Type = "House"
	Apartment Type = "Apartment"
	Office    Type = "Office"
	Retail    Type = "Retail"
	Studio    Type = "Studio"
	Warehouse Type = "Warehouse"
)

// Types lists every property type accepted by the add flow.
var Types = []Type{House, Apartment, Office, Retail, Studio, Warehouse}

// IsValid reports whether t is a known property type.
func (t Type) IsValid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

// ParseType matches s against the known types, ignoring case.
func ParseType(s string) (Type, bool) {
	s = strings.TrimSpace(s)
	for _, t := range Types {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return Type(s), false
}

// Coords is a geographic position.
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Property is one rental listing.
type Property struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Location    string   `json:"location"`
	Price       int64    `json:"price"`
	Currency    string   `json:"currency"`
	Period      string   `json:"period"`
	Bedrooms    string   `json:"bedrooms"`
	Area        string   `json:"area"`
	Type        Type     `json:"type"`
	City        City     `json:"city"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Coords      Coords   `json:"coords"`
	Description string   `json:"description,omitempty"`
}

// PriceLabel returns the price formatted for display in the listing's city.
func (p Property) PriceLabel() string {
	return FormatPrice(p.Price, p.City)
}

// Draft is a property that has not been given an ID yet.
type Draft struct {
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Price       int64    `json:"price"`
	Period      string   `json:"period"`
	Bedrooms    string   `json:"bedrooms"`
	Area        string   `json:"area"`
	Type        Type     `json:"type"`
	City        City     `json:"city"`
	Image       string   `json:"image,omitempty"`
	Images      []string `json:"images"`
	Coords      Coords   `json:"coords"`
	Description string   `json:"description,omitempty"`
}

// Build turns a draft into a property with the given ID. The primary image
// is Images[0] when present, then the draft's Image, then empty.
func (d Draft) Build(id int64) Property {
	image := d.Image
	if len(d.Images) > 0 {
		image = d.Images[0]
	}

	var images []string
	if d.Images != nil {
		images = make([]string, len(d.Images))
		copy(images, d.Images)
	}

	return Property{
		ID:          id,
		Title:       d.Title,
		Slug:        slug.Make(d.Title),
		Location:    d.Location,
		Price:       d.Price,
		Currency:    CurrencyCode(d.City),
		Period:      d.Period,
		Bedrooms:    d.Bedrooms,
		Area:        d.Area,
		Type:        d.Type,
		City:        d.City,
		Image:       image,
		Images:      images,
		Coords:      d.Coords,
		Description: d.Description,
	}
}

// Clone returns a copy of p that shares no slices with it.
func (p Property) Clone() Property {
	if p.Images != nil {
		images := make([]string, len(p.Images))
		copy(images, p.Images)
		p.Images = images
	}
	return p
}
