package filter

import (
	"cmp"
	"slices"
	"strings"

	"weddingplanner/domain/entity"
)

// VenueCriteria is the active venue search state.
type VenueCriteria struct {
	Query    string `json:"query"`
	Region   string `json:"region"`
	Budget   Range  `json:"budget"`
	Capacity Range  `json:"capacity"`
}

// DefaultVenueCriteria matches every venue.
func DefaultVenueCriteria() VenueCriteria {
	return VenueCriteria{
		Region:   All,
		Budget:   DefaultBudget,
		Capacity: DefaultCapacity,
	}
}

// Venues returns the venues matching c, best rated first. Venues with equal
// rating keep their input order.
//
// A venue passes the budget and capacity checks when its parsed interval
// overlaps the requested one; it does not have to fit inside it.
func Venues(all []entity.Venue, c VenueCriteria) []entity.Venue {
	q := strings.ToLower(c.Query)
	region := strings.ToLower(c.Region)

	out := make([]entity.Venue, 0, len(all))
	for _, v := range all {
		if matchesVenue(v, q, region, c) {
			out = append(out, v)
		}
	}

	slices.SortStableFunc(out, func(a, b entity.Venue) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return out
}

func matchesVenue(v entity.Venue, lowerQuery, lowerRegion string, c VenueCriteria) bool {
	location := strings.ToLower(v.Location)

	if lowerQuery != "" &&
		!strings.Contains(strings.ToLower(v.Name), lowerQuery) &&
		!strings.Contains(location, lowerQuery) &&
		!strings.Contains(strings.ToLower(v.Description), lowerQuery) {
		return false
	}

	if c.Region != All && !strings.Contains(location, lowerRegion) {
		return false
	}

	if !PriceRange(v.PriceRange).Overlaps(c.Budget) {
		return false
	}

	return CapacityRange(v.Capacity).Overlaps(c.Capacity)
}
