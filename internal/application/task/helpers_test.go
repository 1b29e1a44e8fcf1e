package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kalbaitzer/taskboard/internal/application/task"
	"github.com/kalbaitzer/taskboard/internal/domain"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/memory"
)

type fixture struct {
	store   *memory.Store
	clock   *memory.Clock
	actor   domain.UserID
	project domain.ProjectID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	clock := memory.NewClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	repos := store.Repos()

	actor := &domain.User{
		ID:        domain.NewUserID(uuid.New()),
		Name:      "Dana",
		Email:     "dana@example.com",
		Role:      domain.RoleUser,
		CreatedAt: clock.Now(),
	}
	require.NoError(t, repos.Users.Add(context.Background(), actor))

	proj := domain.NewProject("Website relaunch", "Q3 marketing site", actor.ID, clock.Now())
	require.NoError(t, repos.Projects.Add(context.Background(), proj))

	return &fixture{store: store, clock: clock, actor: actor.ID, project: proj.ID}
}

func (f *fixture) createTask(t *testing.T, title string) *domain.Task {
	t.Helper()
	uc := task.NewCreateTask(f.store, f.clock)
	res, err := uc.Execute(context.Background(), task.CreateTaskInput{
		ActorID:     f.actor,
		ProjectID:   f.project,
		Title:       title,
		Description: "desc",
		DueDate:     f.clock.Now().AddDate(0, 0, 14),
		Priority:    domain.PriorityMedium,
	})
	require.NoError(t, err)
	return res.Task
}

func (f *fixture) historyOf(t *testing.T, taskID domain.TaskID) []*domain.TaskHistory {
	t.Helper()
	entries, err := f.store.Repos().History.ListByTask(context.Background(), taskID)
	require.NoError(t, err)
	return entries
}
