package project

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

// DeleteProject removes a project and its tasks. Pending or in-progress
// tasks block the deletion.
type DeleteProject struct {
	uow ports.UnitOfWork
}

func NewDeleteProject(uow ports.UnitOfWork) *DeleteProject {
	return &DeleteProject{uow: uow}
}

func (uc *DeleteProject) Execute(ctx context.Context, actorID domain.UserID, projectID domain.ProjectID) error {
	return uc.uow.Do(ctx, func(r ports.RepoSet) error {
		if _, err := guard.User(ctx, r.Users, actorID); err != nil {
			return err
		}
		project, err := r.Projects.GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		if project == nil {
			return domerrors.ErrProjectNotFound
		}
		active, err := r.Tasks.HasActiveTasks(ctx, projectID)
		if err != nil {
			return err
		}
		if active {
			return domerrors.ErrProjectHasActiveTasks
		}
		return r.Projects.Delete(ctx, project)
	})
}
