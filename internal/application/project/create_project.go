package project

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

type CreateProjectInput struct {
	ActorID     domain.UserID
	Name        string
	Description string
}

type CreateProjectResult struct {
	Project *domain.Project
}

// CreateProject creates a project owned by the acting user.
type CreateProject struct {
	uow   ports.UnitOfWork
	clock ports.Clock
}

func NewCreateProject(uow ports.UnitOfWork, clock ports.Clock) *CreateProject {
	return &CreateProject{uow: uow, clock: clock}
}

func (uc *CreateProject) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectResult, error) {
	var created *domain.Project
	err := uc.uow.Do(ctx, func(r ports.RepoSet) error {
		if _, err := guard.User(ctx, r.Users, input.ActorID); err != nil {
			return err
		}
		project := domain.NewProject(input.Name, input.Description, input.ActorID, uc.clock.Now())
		if err := r.Projects.Add(ctx, project); err != nil {
			return err
		}
		created = project
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateProjectResult{Project: created}, nil
}
