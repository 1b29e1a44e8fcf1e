package task

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

// DeleteTask removes a task; its ledger entries go with it.
type DeleteTask struct {
	uow ports.UnitOfWork
}

func NewDeleteTask(uow ports.UnitOfWork) *DeleteTask {
	return &DeleteTask{uow: uow}
}

func (uc *DeleteTask) Execute(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) error {
	return uc.uow.Do(ctx, func(r ports.RepoSet) error {
		if _, err := guard.User(ctx, r.Users, actorID); err != nil {
			return err
		}
		task, err := guard.Task(ctx, r.Tasks, taskID)
		if err != nil {
			return err
		}
		return r.Tasks.Delete(ctx, task)
	})
}
