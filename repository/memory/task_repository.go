// Package memory provides process-local repositories backed by slices.
// They are used by tests, the planner CLI and the "memory" database driver.
package memory

import (
	"context"
	"slices"
	"sync"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
)

// taskRepository implements repository.TaskRepository
type taskRepository struct {
	mu    sync.RWMutex
	tasks []entity.Task
}

// NewTaskRepository creates an in-memory task repository holding a copy of seed
func NewTaskRepository(seed []entity.Task) repository.TaskRepository {
	return &taskRepository{tasks: slices.Clone(seed)}
}

func (r *taskRepository) List(ctx context.Context) ([]entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.tasks), nil
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.tasks[i], nil
	}
	return entity.Task{}, domain.ErrNotFound
}

func (r *taskRepository) Upsert(ctx context.Context, task entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(task.ID); i >= 0 {
		r.tasks[i] = task
		return nil
	}
	r.tasks = append(r.tasks, task)
	return nil
}

func (r *taskRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = slices.DeleteFunc(r.tasks, func(t entity.Task) bool { return t.ID == id })
	return nil
}

func (r *taskRepository) indexOf(id string) int {
	return slices.IndexFunc(r.tasks, func(t entity.Task) bool { return t.ID == id })
}
