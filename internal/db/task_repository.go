package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"tasklight/internal/models"
)

// defines methods for task db operations; every read and write is scoped
// to the owning user so a task is invisible outside its owner
type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.Task) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Task, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Task, error)
	// Update writes title, status, priority and updated_at; reports whether
	// a row owned by task.UserID matched.
	Update(ctx context.Context, task *models.Task) (bool, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, user_id, title, status, priority, created_at, updated_at`

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
	 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(
		ctx, query, task.ID, task.UserID, task.Title, task.Status, task.Priority,
		task.CreatedAt, task.UpdatedAt)
	return err
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
	 WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.Status, &task.Priority,
			&task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Status, &task.Priority,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *models.Task) (bool, error) {
	query := `UPDATE tasks SET title = $1, status = $2, priority = $3, updated_at = $4
	 WHERE id = $5 AND user_id = $6`
	res, err := r.db.ExecContext(
		ctx, query, task.Title, task.Status, task.Priority, task.UpdatedAt,
		task.ID, task.UserID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *TaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
