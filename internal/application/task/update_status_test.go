package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalbaitzer/taskboard/internal/application/task"
	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

func TestUpdateTaskStatus_RecordsTransition(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t, "to be started")
	f.clock.Advance(time.Hour)

	uc := task.NewUpdateTaskStatus(f.store, f.clock)
	err := uc.Execute(context.Background(), task.UpdateTaskStatusInput{
		ActorID: f.actor,
		TaskID:  created.ID(),
		Status:  domain.StatusInProgress,
	})
	require.NoError(t, err)

	got, err := f.store.Repos().Tasks.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status())

	entries := f.historyOf(t, created.ID())
	require.Len(t, entries, 2)
	assert.Equal(t, "Status", entries[0].FieldName())
	assert.Equal(t, "Pending", entries[0].OldValue())
	assert.Equal(t, "InProgress", entries[0].NewValue())
}

func TestUpdateTaskStatus_SameStatusIsNoOp(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t, "already pending")
	f.clock.Advance(time.Hour)

	uc := task.NewUpdateTaskStatus(f.store, f.clock)
	err := uc.Execute(context.Background(), task.UpdateTaskStatusInput{
		ActorID: f.actor,
		TaskID:  created.ID(),
		Status:  domain.StatusPending,
	})
	require.NoError(t, err)

	entries := f.historyOf(t, created.ID())
	assert.Len(t, entries, 1, "no update entry for an unchanged status")
}

func TestUpdateTaskStatus_CannotReopenCompleted(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t, "done and dusted")
	f.clock.Advance(time.Hour)

	uc := task.NewUpdateTaskStatus(f.store, f.clock)
	require.NoError(t, uc.Execute(context.Background(), task.UpdateTaskStatusInput{
		ActorID: f.actor,
		TaskID:  created.ID(),
		Status:  domain.StatusCompleted,
	}))
	f.clock.Advance(time.Hour)

	err := uc.Execute(context.Background(), task.UpdateTaskStatusInput{
		ActorID: f.actor,
		TaskID:  created.ID(),
		Status:  domain.StatusPending,
	})
	assert.ErrorIs(t, err, domerrors.ErrTaskReopen)

	// the failed attempt must leave no trace: status unchanged, no new entry
	got, err := f.store.Repos().Tasks.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status())
	assert.Len(t, f.historyOf(t, created.ID()), 2)
}

func TestUpdateTaskStatus_CompletedToCompleted(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t, "finished twice")
	f.clock.Advance(time.Hour)

	uc := task.NewUpdateTaskStatus(f.store, f.clock)
	require.NoError(t, uc.Execute(context.Background(), task.UpdateTaskStatusInput{
		ActorID: f.actor,
		TaskID:  created.ID(),
		Status:  domain.StatusCompleted,
	}))

	// setting Completed again succeeds as a no-op
	err := uc.Execute(context.Background(), task.UpdateTaskStatusInput{
		ActorID: f.actor,
		TaskID:  created.ID(),
		Status:  domain.StatusCompleted,
	})
	require.NoError(t, err)
	assert.Len(t, f.historyOf(t, created.ID()), 2)
}
