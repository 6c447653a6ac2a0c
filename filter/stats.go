package filter

import "weddingplanner/domain/entity"

// Stats summarises checklist progress.
type Stats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Completion counts completed tasks over the whole collection.
func Completion(tasks []entity.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	return s
}

// Progress returns the completed fraction in [0, 1]; an empty checklist is 0.
func (s Stats) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// Done reports whether a non-empty checklist is fully completed.
func (s Stats) Done() bool {
	return s.Total > 0 && s.Completed == s.Total
}
