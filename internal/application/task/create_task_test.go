package task_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalbaitzer/taskboard/internal/application/task"
	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

func TestCreateTask_RoundTrip(t *testing.T) {
	f := newFixture(t)
	due := f.clock.Now().AddDate(0, 0, 7)

	uc := task.NewCreateTask(f.store, f.clock)
	res, err := uc.Execute(context.Background(), task.CreateTaskInput{
		ActorID:     f.actor,
		ProjectID:   f.project,
		Title:       "Draft landing page",
		Description: "Hero copy and layout",
		DueDate:     due,
		Priority:    domain.PriorityHigh,
	})
	require.NoError(t, err)

	get := task.NewGetTask(f.store.Repos().Users, f.store.Repos().Tasks)
	got, err := get.Execute(context.Background(), f.actor, res.Task.ID())
	require.NoError(t, err)

	assert.Equal(t, "Draft landing page", got.Title())
	assert.Equal(t, "Hero copy and layout", got.Description())
	assert.True(t, got.DueDate().Equal(due))
	assert.Equal(t, domain.PriorityHigh, got.Priority())
	assert.Equal(t, domain.StatusPending, got.Status())

	entries := f.historyOf(t, res.Task.ID())
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ChangeCreate, entries[0].ChangeType())
	assert.Empty(t, entries[0].FieldName())
	assert.Empty(t, entries[0].OldValue())
	assert.Contains(t, entries[0].NewValue(), "Draft landing page")
}

func TestCreateTask_ProjectCapacity(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < domain.MaxTasksPerProject-1; i++ {
		f.createTask(t, fmt.Sprintf("task %d", i))
	}

	// 19 tasks: one more fits
	f.createTask(t, "the twentieth")

	tasks, err := f.store.Repos().Tasks.ListByProject(context.Background(), f.project)
	require.NoError(t, err)
	require.Len(t, tasks, domain.MaxTasksPerProject)

	// 20 tasks: the cap is hit
	uc := task.NewCreateTask(f.store, f.clock)
	_, err = uc.Execute(context.Background(), task.CreateTaskInput{
		ActorID:   f.actor,
		ProjectID: f.project,
		Title:     "one too many",
		DueDate:   f.clock.Now(),
		Priority:  domain.PriorityLow,
	})
	assert.ErrorIs(t, err, domerrors.ErrTaskLimitReached)

	tasks, err = f.store.Repos().Tasks.ListByProject(context.Background(), f.project)
	require.NoError(t, err)
	assert.Len(t, tasks, domain.MaxTasksPerProject)
}

func TestCreateTask_MissingProject(t *testing.T) {
	f := newFixture(t)
	uc := task.NewCreateTask(f.store, f.clock)
	_, err := uc.Execute(context.Background(), task.CreateTaskInput{
		ActorID:   f.actor,
		ProjectID: domain.NewProjectID(uuid.New()),
		Title:     "orphan",
		Priority:  domain.PriorityLow,
	})
	assert.ErrorIs(t, err, domerrors.ErrProjectNotFound)
}

func TestCreateTask_MissingActor(t *testing.T) {
	f := newFixture(t)
	uc := task.NewCreateTask(f.store, f.clock)

	_, err := uc.Execute(context.Background(), task.CreateTaskInput{
		ActorID:   domain.NewUserID(uuid.New()),
		ProjectID: f.project,
		Title:     "ghost",
		Priority:  domain.PriorityLow,
	})
	assert.ErrorIs(t, err, domerrors.ErrUserNotFound)

	// the nil UUID sentinel fails the same way
	_, err = uc.Execute(context.Background(), task.CreateTaskInput{
		ActorID:   domain.NewUserID(uuid.Nil),
		ProjectID: f.project,
		Title:     "anonymous",
		Priority:  domain.PriorityLow,
	})
	assert.ErrorIs(t, err, domerrors.ErrUserNotFound)
}

func TestListProjectTasks_CreationOrder(t *testing.T) {
	f := newFixture(t)
	first := f.createTask(t, "first")
	f.clock.Advance(time.Minute)
	second := f.createTask(t, "second")
	f.clock.Advance(time.Minute)
	third := f.createTask(t, "third")

	uc := task.NewListProjectTasks(f.store.Repos().Users, f.store.Repos().Projects, f.store.Repos().Tasks)
	tasks, err := uc.Execute(context.Background(), f.actor, f.project)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, first.ID(), tasks[0].ID())
	assert.Equal(t, second.ID(), tasks[1].ID())
	assert.Equal(t, third.ID(), tasks[2].ID())
}
