package checklist

import (
	"weddingplanner/domain/entity"
	"weddingplanner/filter"
)

// State is everything a checklist view renders: the full collection, the
// active criteria and the values derived from them.
type State struct {
	Items      []entity.Task `json:"-"`
	Query      string        `json:"query"`
	Category   string        `json:"category"`
	Visible    []entity.Task `json:"items"`
	Categories []string      `json:"categories"`
	Stats      filter.Stats  `json:"stats"`
}

// NewState returns an empty state with no constraints selected
func NewState() State {
	return Reduce(State{Category: filter.All}, Loaded{})
}

// ResultCount is the size of the visible view
func (s State) ResultCount() int {
	return len(s.Visible)
}

// Event is an input that changes checklist state
type Event interface {
	checklistEvent()
}

// Loaded replaces the full collection, e.g. after a reload from storage
type Loaded struct {
	Items []entity.Task
}

// QueryChanged sets the free-text search
type QueryChanged struct {
	Query string
}

// CategorySelected sets the category constraint; filter.All clears it
type CategorySelected struct {
	Category string
}

func (Loaded) checklistEvent()           {}
func (QueryChanged) checklistEvent()     {}
func (CategorySelected) checklistEvent() {}

// Reduce applies e to s and recomputes every derived field from the full
// collection. The previous visible view is never consulted.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case Loaded:
		s.Items = ev.Items
	case QueryChanged:
		s.Query = ev.Query
	case CategorySelected:
		s.Category = ev.Category
	}

	s.Visible = filter.Tasks(s.Items, s.Query, s.Category)
	s.Categories = filter.Categories(s.Items)
	s.Stats = filter.Completion(s.Items)
	return s
}
