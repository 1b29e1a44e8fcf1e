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

func TestGetTaskHistory_NewestFirst(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t, "busy task")

	status := task.NewUpdateTaskStatus(f.store, f.clock)
	comment := task.NewAddComment(f.store, f.clock)

	f.clock.Advance(time.Hour)
	require.NoError(t, status.Execute(context.Background(), task.UpdateTaskStatusInput{
		ActorID: f.actor, TaskID: created.ID(), Status: domain.StatusInProgress,
	}))
	f.clock.Advance(time.Hour)
	require.NoError(t, comment.Execute(context.Background(), task.AddCommentInput{
		ActorID: f.actor, TaskID: created.ID(), Comment: "halfway there",
	}))

	uc := task.NewGetTaskHistory(f.store.Repos().Users, f.store.Repos().Tasks, f.store.Repos().History)
	entries, err := uc.Execute(context.Background(), f.actor, created.ID())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, domain.ChangeComment, entries[0].ChangeType())
	assert.Equal(t, domain.ChangeUpdate, entries[1].ChangeType())
	assert.Equal(t, domain.ChangeCreate, entries[2].ChangeType())
	assert.True(t, entries[0].Timestamp().After(entries[2].Timestamp()))
}

func TestGetTaskHistory_MissingTask(t *testing.T) {
	f := newFixture(t)
	uc := task.NewGetTaskHistory(f.store.Repos().Users, f.store.Repos().Tasks, f.store.Repos().History)
	_, err := uc.Execute(context.Background(), f.actor, domain.NewTaskID(uuid.New()))
	assert.ErrorIs(t, err, domerrors.ErrTaskNotFound)
}
