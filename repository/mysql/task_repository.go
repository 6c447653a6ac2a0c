package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
)

const taskColumns = `id, title, description, completed, category, priority, due_date`

// taskRepository implements repository.TaskRepository on MySQL
type taskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new MySQL task repository
func NewTaskRepository(db *sqlx.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) List(ctx context.Context) ([]entity.Task, error) {
	tasks := []entity.Task{}
	err := r.db.SelectContext(ctx, &tasks, `SELECT `+taskColumns+` FROM checklist_items ORDER BY position ASC`)
	return tasks, err
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (entity.Task, error) {
	var t entity.Task
	err := r.db.GetContext(ctx, &t, `SELECT `+taskColumns+` FROM checklist_items WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Task{}, domain.ErrNotFound
	}
	return t, err
}

func (r *taskRepository) Upsert(ctx context.Context, task entity.Task) error {
	query := `
		INSERT INTO checklist_items (` + taskColumns + `)
		VALUES (:id, :title, :description, :completed, :category, :priority, :due_date)
		ON DUPLICATE KEY UPDATE
			title = VALUES(title),
			description = VALUES(description),
			completed = VALUES(completed),
			category = VALUES(category),
			priority = VALUES(priority),
			due_date = VALUES(due_date)
	`
	_, err := r.db.NamedExecContext(ctx, query, task)
	return err
}

func (r *taskRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM checklist_items WHERE id = ?`, id)
	return err
}
