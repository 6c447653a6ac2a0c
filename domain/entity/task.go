package entity

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to tasks created without a category
const DefaultCategory = "General"

// Task is a single wedding checklist item
type Task struct {
	ID          string   `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Completed   bool     `json:"completed" db:"completed"`
	Category    string   `json:"category" db:"category"`
	Priority    Priority `json:"priority" db:"priority"`
	DueDate     string   `json:"due_date" db:"due_date"` // opaque, never parsed
}

// NewTask creates a task with a fresh id, defaulting the category to "General"
func NewTask(title, description, category string, priority Priority) Task {
	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	return Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
	}
}

// Toggled returns a copy of the task with its completion flag flipped
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}
