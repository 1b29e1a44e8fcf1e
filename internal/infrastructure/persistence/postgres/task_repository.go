package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/persistence/db"
)

const (
	insertTaskSQL = `INSERT INTO tasks (id, project_id, title, description, due_date, status, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	getTaskSQL = `SELECT id, project_id, title, description, due_date, status, priority, created_at, updated_at
		FROM tasks WHERE id = $1`
	listTasksSQL = `SELECT id, project_id, title, description, due_date, status, priority, created_at, updated_at
		FROM tasks WHERE project_id = $1 ORDER BY created_at`
	updateTaskSQL = `UPDATE tasks SET title = $2, description = $3, due_date = $4, status = $5, updated_at = $6
		WHERE id = $1`
	deleteTaskSQL     = `DELETE FROM tasks WHERE id = $1`
	hasActiveTasksSQL = `SELECT EXISTS (SELECT 1 FROM tasks WHERE project_id = $1 AND status IN ('Pending', 'InProgress'))`
	completedSinceSQL = `SELECT id, task_id, user_id, change_type, field_name, old_value, new_value, comment, timestamp
		FROM task_history WHERE change_type = 'Update' AND new_value = 'Completed' AND timestamp >= $1`
)

type TaskRepository struct {
	dbtx db.DBTX
}

func NewTaskRepository(dbtx db.DBTX) *TaskRepository {
	return &TaskRepository{dbtx: dbtx}
}

func (r *TaskRepository) Add(ctx context.Context, task *domain.Task) error {
	_, err := r.dbtx.Exec(ctx, insertTaskSQL,
		task.ID().UUID, task.ProjectID().UUID, task.Title(), task.Description(),
		task.DueDate(), string(task.Status()), string(task.Priority()),
		task.CreatedAt(), task.UpdatedAt())
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID domain.TaskID) (*domain.Task, error) {
	var t db.Task
	err := r.dbtx.QueryRow(ctx, getTaskSQL, taskID.UUID).
		Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.DueDate,
			&t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbTaskToDomain(t), nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error) {
	rows, err := r.dbtx.Query(ctx, listTasksSQL, projectID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*domain.Task
	for rows.Next() {
		var t db.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.DueDate,
			&t.Status, &t.Priority, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, dbTaskToDomain(t))
	}
	return list, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	_, err := r.dbtx.Exec(ctx, updateTaskSQL,
		task.ID().UUID, task.Title(), task.Description(), task.DueDate(),
		string(task.Status()), task.UpdatedAt())
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, task *domain.Task) error {
	_, err := r.dbtx.Exec(ctx, deleteTaskSQL, task.ID().UUID)
	return err
}

func (r *TaskRepository) HasActiveTasks(ctx context.Context, projectID domain.ProjectID) (bool, error) {
	var active bool
	err := r.dbtx.QueryRow(ctx, hasActiveTasksSQL, projectID.UUID).Scan(&active)
	return active, err
}

func (r *TaskRepository) GetCompletedSince(ctx context.Context, since time.Time) ([]*domain.TaskHistory, error) {
	rows, err := r.dbtx.Query(ctx, completedSinceSQL, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistoryRows(rows)
}

func dbTaskToDomain(t db.Task) *domain.Task {
	return domain.RehydrateTask(
		domain.NewTaskID(t.ID), t.Title, t.Description, t.DueDate,
		domain.Status(t.Status), domain.Priority(t.Priority),
		t.CreatedAt, t.UpdatedAt, domain.NewProjectID(t.ProjectID))
}

// Ensure TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)
