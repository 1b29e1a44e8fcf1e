package task_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalbaitzer/taskboard/internal/application/task"
	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

func TestDeleteTask_RemovesTaskAndLedger(t *testing.T) {
	f := newFixture(t)
	keep := f.createTask(t, "survivor")
	doomed := f.createTask(t, "doomed")

	uc := task.NewDeleteTask(f.store)
	require.NoError(t, uc.Execute(context.Background(), f.actor, doomed.ID()))

	tasks, err := f.store.Repos().Tasks.ListByProject(context.Background(), f.project)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID(), tasks[0].ID())

	assert.Empty(t, f.historyOf(t, doomed.ID()), "ledger entries must go with the task")
	assert.Len(t, f.historyOf(t, keep.ID()), 1)
}

func TestDeleteTask_MissingTask(t *testing.T) {
	f := newFixture(t)
	uc := task.NewDeleteTask(f.store)
	err := uc.Execute(context.Background(), f.actor, domain.NewTaskID(uuid.New()))
	assert.ErrorIs(t, err, domerrors.ErrTaskNotFound)
}
