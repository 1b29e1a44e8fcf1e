package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/persistence/db"
)

const (
	insertHistorySQL = `INSERT INTO task_history (id, task_id, user_id, change_type, field_name, old_value, new_value, comment, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	listHistorySQL = `SELECT id, task_id, user_id, change_type, field_name, old_value, new_value, comment, timestamp
		FROM task_history WHERE task_id = $1 ORDER BY timestamp DESC`
)

// TaskHistoryRepository persists the append-only ledger. It exposes no
// update or delete; rows only leave the table when their task does.
type TaskHistoryRepository struct {
	dbtx db.DBTX
}

func NewTaskHistoryRepository(dbtx db.DBTX) *TaskHistoryRepository {
	return &TaskHistoryRepository{dbtx: dbtx}
}

func (r *TaskHistoryRepository) Add(ctx context.Context, entry *domain.TaskHistory) error {
	_, err := r.dbtx.Exec(ctx, insertHistorySQL,
		entry.ID().UUID, entry.TaskID().UUID, entry.UserID().UUID,
		entry.ChangeType(), entry.FieldName(), entry.OldValue(), entry.NewValue(),
		entry.Comment(), entry.Timestamp())
	return err
}

func (r *TaskHistoryRepository) ListByTask(ctx context.Context, taskID domain.TaskID) ([]*domain.TaskHistory, error) {
	rows, err := r.dbtx.Query(ctx, listHistorySQL, taskID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistoryRows(rows)
}

func scanHistoryRows(rows pgx.Rows) ([]*domain.TaskHistory, error) {
	var list []*domain.TaskHistory
	for rows.Next() {
		var h db.TaskHistory
		if err := rows.Scan(&h.ID, &h.TaskID, &h.UserID, &h.ChangeType,
			&h.FieldName, &h.OldValue, &h.NewValue, &h.Comment, &h.Timestamp); err != nil {
			return nil, err
		}
		list = append(list, domain.RehydrateHistory(
			domain.NewHistoryID(h.ID), h.ChangeType, h.FieldName, h.OldValue,
			h.NewValue, h.Comment, h.Timestamp,
			domain.NewTaskID(h.TaskID), domain.NewUserID(h.UserID)))
	}
	return list, rows.Err()
}

// Ensure TaskHistoryRepository implements ports.TaskHistoryRepository.
var _ ports.TaskHistoryRepository = (*TaskHistoryRepository)(nil)
