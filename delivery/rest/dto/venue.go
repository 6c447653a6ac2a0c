package dto

import (
	"weddingplanner/domain/entity"
	"weddingplanner/filter"
	"weddingplanner/venue"
)

// VenueQuery is the search criteria of GET /venues. Omitted bounds keep the
// default budget and capacity ranges.
type VenueQuery struct {
	Query       string `form:"q"`
	Region      string `form:"region"`
	MinBudget   *int   `form:"min_budget" binding:"omitempty,min=0"`
	MaxBudget   *int   `form:"max_budget" binding:"omitempty,min=0"`
	MinCapacity *int   `form:"min_capacity" binding:"omitempty,min=0"`
	MaxCapacity *int   `form:"max_capacity" binding:"omitempty,min=0"`
}

// ToCriteria converts the query to engine criteria
func (q VenueQuery) ToCriteria() filter.VenueCriteria {
	c := filter.DefaultVenueCriteria()
	c.Query = q.Query
	if q.Region != "" {
		c.Region = q.Region
	}
	if q.MinBudget != nil {
		c.Budget.Min = *q.MinBudget
	}
	if q.MaxBudget != nil {
		c.Budget.Max = *q.MaxBudget
	}
	if q.MinCapacity != nil {
		c.Capacity.Min = *q.MinCapacity
	}
	if q.MaxCapacity != nil {
		c.Capacity.Max = *q.MaxCapacity
	}
	return c
}

// VenueListResponse is the filtered venue view
type VenueListResponse struct {
	Criteria    filter.VenueCriteria `json:"criteria"`
	Venues      []entity.Venue       `json:"venues"`
	Regions     []string             `json:"regions"`
	ResultCount int                  `json:"result_count"`
}

// RegionsResponse lists the region facet
type RegionsResponse struct {
	Regions []string `json:"regions"`
}

// NewVenueListResponse converts a reduced venue state
func NewVenueListResponse(st venue.State) VenueListResponse {
	venues := st.Visible
	if venues == nil {
		venues = []entity.Venue{}
	}
	return VenueListResponse{
		Criteria:    st.Criteria,
		Venues:      venues,
		Regions:     st.Regions,
		ResultCount: st.ResultCount(),
	}
}
