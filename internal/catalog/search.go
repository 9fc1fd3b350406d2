package catalog

import (
	"strings"

	"github.com/evcraddock/rent-finder/internal/property"
)

// AllTypes is the category value that matches every property type.
const AllTypes = "All"

// Filter narrows a catalog search.
type Filter struct {
	City  property.City // empty = every city
	Type  property.Type // empty or "All" = every type
	Query string        // matched against title and location, case-insensitive
}

// Matches reports whether p passes the filter.
func (f Filter) Matches(p property.Property) bool {
	if f.City != "" && p.City != f.City {
		return false
	}
	if f.Type != "" && f.Type != AllTypes && p.Type != f.Type {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Location), q)
}

// Search returns the listings matching f, in catalog order.
func (s *Store) Search(f Filter) []property.Property {
	var src []property.Property
	if f.City != "" {
		src = s.PropertiesByCity(f.City)
	} else {
		src = s.AllProperties()
	}

	out := make([]property.Property, 0, len(src))
	for _, p := range src {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
