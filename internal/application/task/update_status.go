package task

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

type UpdateTaskStatusInput struct {
	ActorID domain.UserID
	TaskID  domain.TaskID
	Status  domain.Status
}

// UpdateTaskStatus moves a task to a new status, recording the transition
// in the ledger. Setting the current status again is a no-op.
type UpdateTaskStatus struct {
	uow   ports.UnitOfWork
	clock ports.Clock
}

func NewUpdateTaskStatus(uow ports.UnitOfWork, clock ports.Clock) *UpdateTaskStatus {
	return &UpdateTaskStatus{uow: uow, clock: clock}
}

func (uc *UpdateTaskStatus) Execute(ctx context.Context, input UpdateTaskStatusInput) error {
	return uc.uow.Do(ctx, func(r ports.RepoSet) error {
		if _, err := guard.User(ctx, r.Users, input.ActorID); err != nil {
			return err
		}
		task, err := guard.Task(ctx, r.Tasks, input.TaskID)
		if err != nil {
			return err
		}
		if string(task.Status()) == string(input.Status) {
			return nil
		}
		now := uc.clock.Now()
		entry := domain.HistoryForUpdate(input.TaskID, input.ActorID, "Status", string(task.Status()), string(input.Status), now)
		if err := r.History.Add(ctx, entry); err != nil {
			return err
		}
		if err := task.UpdateStatus(input.Status, now); err != nil {
			return err
		}
		return r.Tasks.Update(ctx, task)
	})
}
