package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"weddingplanner/domain"
	"weddingplanner/domain/entity"
	"weddingplanner/domain/repository"
)

const taskColumns = `id, title, description, completed, category, priority, due_date`

// taskRepository implements repository.TaskRepository
type taskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new PostgreSQL task repository
func NewTaskRepository(db *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{db: db}
}

func scanTask(row pgx.Row) (entity.Task, error) {
	var t entity.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.Category, &t.Priority, &t.DueDate)
	return t, err
}

func (r *taskRepository) List(ctx context.Context) ([]entity.Task, error) {
	rows, err := r.db.Query(ctx, `SELECT `+taskColumns+` FROM checklist_items ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []entity.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (entity.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM checklist_items WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Task{}, domain.ErrNotFound
	}
	return t, err
}

func (r *taskRepository) Upsert(ctx context.Context, task entity.Task) error {
	query := `
		INSERT INTO checklist_items (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			completed = EXCLUDED.completed,
			category = EXCLUDED.category,
			priority = EXCLUDED.priority,
			due_date = EXCLUDED.due_date
	`

	_, err := r.db.Exec(ctx, query,
		task.ID, task.Title, task.Description, task.Completed,
		task.Category, task.Priority, task.DueDate,
	)
	return err
}

func (r *taskRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM checklist_items WHERE id = $1`, id)
	return err
}
