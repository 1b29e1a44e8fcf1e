package task

import (
	"context"
	"time"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

type CreateTaskInput struct {
	ActorID     domain.UserID
	ProjectID   domain.ProjectID
	Title       string
	Description string
	DueDate     time.Time
	Priority    domain.Priority
}

type CreateTaskResult struct {
	Task *domain.Task
}

// CreateTask creates a task inside a project, enforcing the per-project
// task cap, and records the creation in the ledger.
type CreateTask struct {
	uow   ports.UnitOfWork
	clock ports.Clock
}

func NewCreateTask(uow ports.UnitOfWork, clock ports.Clock) *CreateTask {
	return &CreateTask{uow: uow, clock: clock}
}

func (uc *CreateTask) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskResult, error) {
	var created *domain.Task
	err := uc.uow.Do(ctx, func(r ports.RepoSet) error {
		if _, err := guard.User(ctx, r.Users, input.ActorID); err != nil {
			return err
		}
		project, err := guard.Project(ctx, r.Projects, input.ProjectID)
		if err != nil {
			return err
		}
		if project.AtTaskCapacity() {
			return domerrors.ErrTaskLimitReached
		}
		now := uc.clock.Now()
		task := domain.NewTask(input.Title, input.Description, input.DueDate, input.Priority, input.ProjectID, now)
		if err := r.Tasks.Add(ctx, task); err != nil {
			return err
		}
		if err := r.History.Add(ctx, domain.HistoryForCreation(task.ID(), input.ActorID, task.Title(), now)); err != nil {
			return err
		}
		created = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateTaskResult{Task: created}, nil
}
