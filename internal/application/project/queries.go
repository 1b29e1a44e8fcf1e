package project

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

// ListUserProjects returns the projects the acting user owns, with tasks
// loaded so callers can show task counts.
type ListUserProjects struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
}

func NewListUserProjects(users ports.UserRepository, projects ports.ProjectRepository) *ListUserProjects {
	return &ListUserProjects{users: users, projects: projects}
}

func (uc *ListUserProjects) Execute(ctx context.Context, actorID domain.UserID) ([]*domain.Project, error) {
	if _, err := guard.User(ctx, uc.users, actorID); err != nil {
		return nil, err
	}
	return uc.projects.ListByOwner(ctx, actorID)
}

// GetProject returns a project with its tasks.
type GetProject struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
}

func NewGetProject(users ports.UserRepository, projects ports.ProjectRepository) *GetProject {
	return &GetProject{users: users, projects: projects}
}

func (uc *GetProject) Execute(ctx context.Context, actorID domain.UserID, projectID domain.ProjectID) (*domain.Project, error) {
	if _, err := guard.User(ctx, uc.users, actorID); err != nil {
		return nil, err
	}
	return guard.Project(ctx, uc.projects, projectID)
}
