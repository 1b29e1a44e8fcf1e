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

func TestAddComment(t *testing.T) {
	f := newFixture(t)
	created := f.createTask(t, "commented task")
	f.clock.Advance(time.Hour)

	uc := task.NewAddComment(f.store, f.clock)
	err := uc.Execute(context.Background(), task.AddCommentInput{
		ActorID: f.actor,
		TaskID:  created.ID(),
		Comment: "Waiting on the API contract.",
	})
	require.NoError(t, err)

	entries := f.historyOf(t, created.ID())
	require.Len(t, entries, 2)
	comment := entries[0]
	assert.Equal(t, domain.ChangeComment, comment.ChangeType())
	assert.Equal(t, "Waiting on the API contract.", comment.Comment())
	assert.Empty(t, comment.FieldName())
	assert.Empty(t, comment.OldValue())
	assert.Empty(t, comment.NewValue())
}

func TestAddComment_MissingTask(t *testing.T) {
	f := newFixture(t)
	before := f.store.Commits()

	uc := task.NewAddComment(f.store, f.clock)
	err := uc.Execute(context.Background(), task.AddCommentInput{
		ActorID: f.actor,
		TaskID:  domain.NewTaskID(uuid.New()),
		Comment: "shouting into the void",
	})
	assert.ErrorIs(t, err, domerrors.ErrTaskNotFound)
	assert.Equal(t, before, f.store.Commits(), "a failed operation must not commit")
}
