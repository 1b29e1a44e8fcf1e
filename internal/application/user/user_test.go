package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalbaitzer/taskboard/internal/application/project"
	"github.com/kalbaitzer/taskboard/internal/application/user"
	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/memory"
)

func TestRegisterUser_RoleDefaults(t *testing.T) {
	store := memory.NewStore()
	clock := memory.NewClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))
	uc := user.NewRegisterUser(store, clock)

	res, err := uc.Execute(context.Background(), user.RegisterUserInput{
		Name:  "Sam",
		Email: "sam@example.com",
		Role:  "Admin", // unknown roles fall back to User
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, res.User.Role)

	res, err = uc.Execute(context.Background(), user.RegisterUserInput{
		Name:  "Morgan",
		Email: "morgan@example.com",
		Role:  domain.RoleManager,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, res.User.Role)

	all, err := user.NewListUsers(store.Repos().Users).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetUser_MissingReturnsNil(t *testing.T) {
	store := memory.NewStore()
	uc := user.NewGetUser(store.Repos().Users)

	got, err := uc.Execute(context.Background(), domain.NewUserID(uuid.New()))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = uc.Execute(context.Background(), domain.NewUserID(uuid.Nil))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteUser_RestrictedWhileOwningProjects(t *testing.T) {
	store := memory.NewStore()
	clock := memory.NewClock(time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC))

	res, err := user.NewRegisterUser(store, clock).Execute(context.Background(), user.RegisterUserInput{
		Name:  "Owner",
		Email: "owner@example.com",
		Role:  domain.RoleUser,
	})
	require.NoError(t, err)

	created, err := project.NewCreateProject(store, clock).Execute(context.Background(), project.CreateProjectInput{
		ActorID: res.User.ID,
		Name:    "still mine",
	})
	require.NoError(t, err)

	del := user.NewDeleteUser(store)
	err = del.Execute(context.Background(), res.User.ID)
	assert.ErrorIs(t, err, domerrors.ErrUserOwnsProjects)

	require.NoError(t, project.NewDeleteProject(store).Execute(context.Background(), res.User.ID, created.Project.ID))
	require.NoError(t, del.Execute(context.Background(), res.User.ID))

	got, err := store.Repos().Users.GetByID(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteUser_Missing(t *testing.T) {
	store := memory.NewStore()
	err := user.NewDeleteUser(store).Execute(context.Background(), domain.NewUserID(uuid.New()))
	assert.ErrorIs(t, err, domerrors.ErrUserNotFound)
}
