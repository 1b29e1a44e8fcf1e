package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

type RegisterUserInput struct {
	Name  string
	Email string
	Role  string
}

type RegisterUserResult struct {
	User *domain.User
}

// RegisterUser creates a user profile. Anything other than the Manager
// role registers as a regular user.
type RegisterUser struct {
	uow   ports.UnitOfWork
	clock ports.Clock
}

func NewRegisterUser(uow ports.UnitOfWork, clock ports.Clock) *RegisterUser {
	return &RegisterUser{uow: uow, clock: clock}
}

func (uc *RegisterUser) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserResult, error) {
	role := input.Role
	if role != domain.RoleManager {
		role = domain.RoleUser
	}
	u := &domain.User{
		ID:        domain.NewUserID(uuid.New()),
		Name:      input.Name,
		Email:     input.Email,
		Role:      role,
		CreatedAt: uc.clock.Now(),
	}
	err := uc.uow.Do(ctx, func(r ports.RepoSet) error {
		return r.Users.Add(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return &RegisterUserResult{User: u}, nil
}
