package task

import (
	"context"
	"time"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

// longDateLayout renders due dates in ledger entries. It intentionally
// drops the time-of-day, so a due-date change that only moves the time
// still produces an entry whose old and new values read the same.
const longDateLayout = "Monday, January 2, 2006"

type UpdateTaskDetailsInput struct {
	ActorID     domain.UserID
	TaskID      domain.TaskID
	Title       string
	Description string
	DueDate     time.Time
	Status      domain.Status
}

// UpdateTaskDetails overwrites a task's mutable fields, writing one ledger
// entry per field that actually changed. Entries capture the pre-mutation
// values; everything commits together.
type UpdateTaskDetails struct {
	uow   ports.UnitOfWork
	clock ports.Clock
}

func NewUpdateTaskDetails(uow ports.UnitOfWork, clock ports.Clock) *UpdateTaskDetails {
	return &UpdateTaskDetails{uow: uow, clock: clock}
}

func (uc *UpdateTaskDetails) Execute(ctx context.Context, input UpdateTaskDetailsInput) error {
	return uc.uow.Do(ctx, func(r ports.RepoSet) error {
		if _, err := guard.User(ctx, r.Users, input.ActorID); err != nil {
			return err
		}
		task, err := guard.Task(ctx, r.Tasks, input.TaskID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		type change struct {
			field    string
			from, to string
		}
		var changes []change
		if task.Title() != input.Title {
			changes = append(changes, change{"Title", task.Title(), input.Title})
		}
		if task.Description() != input.Description {
			changes = append(changes, change{"Description", task.Description(), input.Description})
		}
		if !task.DueDate().Equal(input.DueDate) {
			changes = append(changes, change{"DueDate", task.DueDate().Format(longDateLayout), input.DueDate.Format(longDateLayout)})
		}
		if task.Status() != input.Status {
			changes = append(changes, change{"Status", string(task.Status()), string(input.Status)})
		}
		for _, c := range changes {
			entry := domain.HistoryForUpdate(input.TaskID, input.ActorID, c.field, c.from, c.to, now)
			if err := r.History.Add(ctx, entry); err != nil {
				return err
			}
		}

		task.UpdateDetails(input.Title, input.Description, input.DueDate, input.Status, now)
		return r.Tasks.Update(ctx, task)
	})
}
