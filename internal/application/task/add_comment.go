package task

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

type AddCommentInput struct {
	ActorID domain.UserID
	TaskID  domain.TaskID
	Comment string
}

// AddComment appends a comment entry to a task's ledger.
type AddComment struct {
	uow   ports.UnitOfWork
	clock ports.Clock
}

func NewAddComment(uow ports.UnitOfWork, clock ports.Clock) *AddComment {
	return &AddComment{uow: uow, clock: clock}
}

func (uc *AddComment) Execute(ctx context.Context, input AddCommentInput) error {
	return uc.uow.Do(ctx, func(r ports.RepoSet) error {
		if _, err := guard.User(ctx, r.Users, input.ActorID); err != nil {
			return err
		}
		task, err := guard.Task(ctx, r.Tasks, input.TaskID)
		if err != nil {
			return err
		}
		entry := domain.HistoryForComment(task.ID(), input.ActorID, input.Comment, uc.clock.Now())
		return r.History.Add(ctx, entry)
	})
}
