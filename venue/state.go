package venue

import (
	"weddingplanner/domain/entity"
	"weddingplanner/filter"
)

// State is the venue browser: the full catalogue, the active criteria and
// the derived view.
type State struct {
	Venues      []entity.Venue       `json:"-"`
	Criteria    filter.VenueCriteria `json:"criteria"`
	Visible     []entity.Venue       `json:"venues"`
	Regions     []string             `json:"regions"`
	ShowFilters bool                 `json:"show_filters"`
}

// NewState returns an empty browser with default criteria
func NewState() State {
	return Reduce(State{Criteria: filter.DefaultVenueCriteria()}, Loaded{})
}

// ResultCount is the size of the visible view
func (s State) ResultCount() int {
	return len(s.Visible)
}

// Event is an input that changes venue browser state
type Event interface {
	venueEvent()
}

type (
	// Loaded replaces the catalogue
	Loaded struct{ Venues []entity.Venue }

	QueryChanged struct{ Query string }

	// RegionSelected sets the region constraint; filter.All clears it
	RegionSelected struct{ Region string }

	BudgetChanged struct{ Min, Max int }

	CapacityChanged struct{ Min, Max int }

	// FiltersToggled shows or hides the filter panel; criteria are untouched
	FiltersToggled struct{}

	// FiltersCleared restores the default criteria
	FiltersCleared struct{}
)

func (Loaded) venueEvent()          {}
func (QueryChanged) venueEvent()    {}
func (RegionSelected) venueEvent()  {}
func (BudgetChanged) venueEvent()   {}
func (CapacityChanged) venueEvent() {}
func (FiltersToggled) venueEvent()  {}
func (FiltersCleared) venueEvent()  {}

// Reduce applies e to s and recomputes the view from the full catalogue
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case Loaded:
		s.Venues = ev.Venues
	case QueryChanged:
		s.Criteria.Query = ev.Query
	case RegionSelected:
		s.Criteria.Region = ev.Region
	case BudgetChanged:
		s.Criteria.Budget = filter.Range{Min: ev.Min, Max: ev.Max}
	case CapacityChanged:
		s.Criteria.Capacity = filter.Range{Min: ev.Min, Max: ev.Max}
	case FiltersToggled:
		s.ShowFilters = !s.ShowFilters
	case FiltersCleared:
		s.Criteria = filter.DefaultVenueCriteria()
	}

	s.Visible = filter.Venues(s.Venues, s.Criteria)
	s.Regions = filter.Regions(s.Venues)
	return s
}
