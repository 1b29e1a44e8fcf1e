package user

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

// DeleteUser removes a user profile. Deletion is restricted while the
// user still owns projects, mirroring the store's referential policy.
type DeleteUser struct {
	uow ports.UnitOfWork
}

func NewDeleteUser(uow ports.UnitOfWork) *DeleteUser {
	return &DeleteUser{uow: uow}
}

func (uc *DeleteUser) Execute(ctx context.Context, userID domain.UserID) error {
	return uc.uow.Do(ctx, func(r ports.RepoSet) error {
		if userID.IsNil() {
			return domerrors.ErrUserNotFound
		}
		u, err := r.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domerrors.ErrUserNotFound
		}
		owned, err := r.Projects.ListByOwner(ctx, userID)
		if err != nil {
			return err
		}
		if len(owned) > 0 {
			return domerrors.ErrUserOwnsProjects
		}
		return r.Users.Delete(ctx, u)
	})
}
