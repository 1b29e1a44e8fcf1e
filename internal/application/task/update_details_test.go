package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalbaitzer/taskboard/internal/application/task"
	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

func TestUpdateTaskDetails_OneEntryPerChangedField(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t, "original title")
	f.clock.Advance(time.Hour)

	uc := task.NewUpdateTaskDetails(f.store, f.clock)
	err := uc.Execute(context.Background(), task.UpdateTaskDetailsInput{
		ActorID:     f.actor,
		TaskID:      created.ID(),
		Title:       "new title",
		Description: "new description",
		DueDate:     created.DueDate(), // unchanged
		Status:      domain.StatusInProgress,
	})
	require.NoError(t, err)

	entries := f.historyOf(t, created.ID())
	// 1 creation entry + 3 update entries (title, description, status)
	require.Len(t, entries, 4)

	byField := make(map[string]*domain.TaskHistory)
	for _, e := range entries {
		if e.ChangeType() == domain.ChangeUpdate {
			byField[e.FieldName()] = e
		}
	}
	require.Len(t, byField, 3)
	assert.Equal(t, "original title", byField["Title"].OldValue())
	assert.Equal(t, "new title", byField["Title"].NewValue())
	assert.Equal(t, "desc", byField["Description"].OldValue())
	assert.Equal(t, string(domain.StatusPending), byField["Status"].OldValue())
	assert.Equal(t, string(domain.StatusInProgress), byField["Status"].NewValue())

	got, err := f.store.Repos().Tasks.GetByID(context.Background(), created.ID())
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title())
	assert.Equal(t, domain.StatusInProgress, got.Status())
	assert.Equal(t, created.Priority(), got.Priority())
}

func TestUpdateTaskDetails_NoChangesStillCommits(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t, "stable")
	before := f.store.Commits()

	uc := task.NewUpdateTaskDetails(f.store, f.clock)
	err := uc.Execute(context.Background(), task.UpdateTaskDetailsInput{
		ActorID:     f.actor,
		TaskID:      created.ID(),
		Title:       created.Title(),
		Description: created.Description(),
		DueDate:     created.DueDate(),
		Status:      created.Status(),
	})
	require.NoError(t, err)

	entries := f.historyOf(t, created.ID())
	assert.Len(t, entries, 1, "only the creation entry should exist")
	assert.Equal(t, before+1, f.store.Commits(), "the unit of work commits even with nothing to record")
}

func TestUpdateTaskDetails_DueDateTimeOnlyChange(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t, "due date quirk")
	f.clock.Advance(time.Hour)

	// Move the due date by two hours within the same day. The comparison is
	// exact, so an entry is written, but the long-date rendering makes the
	// recorded old and new values identical.
	uc := task.NewUpdateTaskDetails(f.store, f.clock)
	err := uc.Execute(context.Background(), task.UpdateTaskDetailsInput{
		ActorID:     f.actor,
		TaskID:      created.ID(),
		Title:       created.Title(),
		Description: created.Description(),
		DueDate:     created.DueDate().Add(2 * time.Hour),
		Status:      created.Status(),
	})
	require.NoError(t, err)

	entries := f.historyOf(t, created.ID())
	require.Len(t, entries, 2)
	update := entries[0]
	assert.Equal(t, "DueDate", update.FieldName())
	assert.Equal(t, update.OldValue(), update.NewValue())
}

func TestUpdateTaskDetails_MissingTask(t *testing.T) {
	f := newFixture(t)
	uc := task.NewUpdateTaskDetails(f.store, f.clock)
	err := uc.Execute(context.Background(), task.UpdateTaskDetailsInput{
		ActorID: f.actor,
		TaskID:  domain.NewTaskID(uuid.New()),
		Title:   "nobody home",
	})
	assert.ErrorIs(t, err, domerrors.ErrTaskNotFound)
}
