package dto

import (
	"weddingplanner/checklist"
	"weddingplanner/domain/entity"
	"weddingplanner/filter"
)

// CreateTaskRequest represents a request to add a checklist task
type CreateTaskRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Priority    *entity.Priority `json:"priority"`
	DueDate     string           `json:"due_date"`
}

// ToInput converts the request to the service input
func (r CreateTaskRequest) ToInput() checklist.NewTask {
	return checklist.NewTask{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
	}
}

// UpdateTaskRequest replaces every mutable field of a task
type UpdateTaskRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Priority    *entity.Priority `json:"priority"`
	Completed   bool             `json:"completed"`
	DueDate     string           `json:"due_date"`
}

// ToModel builds the replacement task for id
func (r UpdateTaskRequest) ToModel(id string) entity.Task {
	priority := entity.PriorityMedium
	if r.Priority != nil {
		priority = *r.Priority
	}
	return entity.Task{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Category:    r.Category,
		Priority:    priority,
		DueDate:     r.DueDate,
	}
}

// ChecklistQuery is the search criteria of GET /checklist
type ChecklistQuery struct {
	Query    string `form:"q"`
	Category string `form:"category"`
}

// ChecklistResponse is the filtered checklist view
type ChecklistResponse struct {
	Query       string        `json:"query"`
	Category    string        `json:"category"`
	Items       []entity.Task `json:"items"`
	Categories  []string      `json:"categories"`
	Stats       StatsResponse `json:"stats"`
	ResultCount int           `json:"result_count"`
}

// StatsResponse reports checklist progress
type StatsResponse struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Progress  float64 `json:"progress"`
	Done      bool    `json:"done"`
}

// CategoriesResponse lists the category facet
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// NewStatsResponse converts completion stats
func NewStatsResponse(s filter.Stats) StatsResponse {
	return StatsResponse{
		Completed: s.Completed,
		Total:     s.Total,
		Progress:  s.Progress(),
		Done:      s.Done(),
	}
}

// NewChecklistResponse converts a reduced checklist state
func NewChecklistResponse(st checklist.State) ChecklistResponse {
	items := st.Visible
	if items == nil {
		items = []entity.Task{}
	}
	return ChecklistResponse{
		Query:       st.Query,
		Category:    st.Category,
		Items:       items,
		Categories:  st.Categories,
		Stats:       NewStatsResponse(st.Stats),
		ResultCount: st.ResultCount(),
	}
}
