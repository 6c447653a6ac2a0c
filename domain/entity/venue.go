package entity

import "strings"

// Venue is a bookable wedding venue. Venues are read-only sample data.
type Venue struct {
	ID            string     `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Location      string     `json:"location" db:"location"`
	PriceRange    string     `json:"price_range" db:"price_range"`
	Capacity      string     `json:"capacity" db:"capacity"`
	Description   string     `json:"description" db:"description"`
	Amenities     StringList `json:"amenities" db:"amenities"`
	ImageURL      string     `json:"image_url,omitempty" db:"image_url"`
	Rating        float64    `json:"rating" db:"rating"`
	ContactNumber string     `json:"contact_number,omitempty" db:"contact_number"`
	Email         string     `json:"email,omitempty" db:"email"`
}

// Region returns the first comma-delimited segment of the location, trimmed.
// "Mumbai, Maharashtra" -> "Mumbai".
func (v Venue) Region() string {
	region, _, _ := strings.Cut(v.Location, ",")
	return strings.TrimSpace(region)
}
