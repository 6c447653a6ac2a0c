// Package checklist implements the wedding checklist: task mutations over a
// repository plus the search view built by Reduce.
package checklist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
	"weddingplanner/filter"
)

// Change kinds passed to a Notifier
const (
	ChangeAdded   = "task_added"
	ChangeUpdated = "task_updated"
	ChangeDeleted = "task_deleted"
)

// Notifier is told about every successful mutation
type Notifier interface {
	ChecklistChanged(kind string, task entity.Task)
}

// Notifiers fans a change out to several listeners in order
type Notifiers []Notifier

func (ns Notifiers) ChecklistChanged(kind string, task entity.Task) {
	for _, n := range ns {
		n.ChecklistChanged(kind, task)
	}
}

// NewTask is the input for Service.Add. A nil Priority means MEDIUM.
type NewTask struct {
	Title       string
	Description string
	Category    string
	Priority    *entity.Priority
	DueDate     string
}

// Service handles business logic for checklist tasks
type Service struct {
	repo     repository.TaskRepository
	notifier Notifier
	logger   *zap.Logger
}

// NewService creates a new checklist service
func NewService(repo repository.TaskRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// SetNotifier registers the change listener
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// List returns the full, unfiltered checklist
func (s *Service) List(ctx context.Context) ([]entity.Task, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return items, nil
}

// Search loads the checklist and reduces the given criteria over it
func (s *Service) Search(ctx context.Context, query, category string) (State, error) {
	items, err := s.List(ctx)
	if err != nil {
		return State{}, err
	}

	if category == "" {
		category = filter.All
	}

	st := Reduce(NewState(), Loaded{Items: items})
	st = Reduce(st, QueryChanged{Query: query})
	st = Reduce(st, CategorySelected{Category: category})
	return st, nil
}

// Get retrieves a task by ID
func (s *Service) Get(ctx context.Context, id string) (entity.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return entity.Task{}, domain.ErrNotFound
		}
		return entity.Task{}, fmt.Errorf("find task %s: %w", id, err)
	}
	return task, nil
}

// Add creates a task with MEDIUM priority and "General" category unless given
func (s *Service) Add(ctx context.Context, in NewTask) (entity.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return entity.Task{}, fmt.Errorf("title is required: %w", domain.ErrBadParamInput)
	}

	priority := entity.PriorityMedium
	if in.Priority != nil {
		priority = *in.Priority
	}
	if !priority.IsValid() {
		return entity.Task{}, fmt.Errorf("priority %d: %w", int(priority), domain.ErrBadParamInput)
	}

	task := entity.NewTask(in.Title, in.Description, in.Category, priority)
	task.DueDate = in.DueDate

	if err := s.repo.Upsert(ctx, task); err != nil {
		return entity.Task{}, fmt.Errorf("save task: %w", err)
	}

	s.logger.Info("Task added",
		zap.String("task_id", task.ID),
		zap.String("category", task.Category),
		zap.Stringer("priority", task.Priority),
	)
	s.notify(ChangeAdded, task)
	return task, nil
}

// Update replaces a stored task. The task must already exist.
func (s *Service) Update(ctx context.Context, task entity.Task) (entity.Task, error) {
	if _, err := s.Get(ctx, task.ID); err != nil {
		return entity.Task{}, err
	}
	if strings.TrimSpace(task.Title) == "" || !task.Priority.IsValid() {
		return entity.Task{}, domain.ErrBadParamInput
	}
	if strings.TrimSpace(task.Category) == "" {
		task.Category = entity.DefaultCategory
	}

	if err := s.repo.Upsert(ctx, task); err != nil {
		return entity.Task{}, fmt.Errorf("update task: %w", err)
	}

	s.logger.Debug("Task updated", zap.String("task_id", task.ID))
	s.notify(ChangeUpdated, task)
	return task, nil
}

// Toggle flips the completion flag of a task
func (s *Service) Toggle(ctx context.Context, id string) (entity.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return entity.Task{}, err
	}

	task = task.Toggled()
	if err := s.repo.Upsert(ctx, task); err != nil {
		return entity.Task{}, fmt.Errorf("toggle task: %w", err)
	}

	s.logger.Debug("Task toggled",
		zap.String("task_id", task.ID),
		zap.Bool("completed", task.Completed),
	)
	s.notify(ChangeUpdated, task)
	return task, nil
}

// Delete removes a task by ID
func (s *Service) Delete(ctx context.Context, id string) error {
	task, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.logger.Info("Task deleted", zap.String("task_id", id))
	s.notify(ChangeDeleted, task)
	return nil
}

// Categories returns the category facet of the full checklist
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Categories(items), nil
}

// Stats returns completion stats of the full checklist
func (s *Service) Stats(ctx context.Context) (filter.Stats, error) {
	items, err := s.List(ctx)
	if err != nil {
		return filter.Stats{}, err
	}
	return filter.Completion(items), nil
}

func (s *Service) notify(kind string, task entity.Task) {
	if s.notifier != nil {
		s.notifier.ChecklistChanged(kind, task)
	}
}
