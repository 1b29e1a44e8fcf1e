package user

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

// GetUser returns a user profile, or nil when unknown. Callers decide how
// to respond to a missing profile.
type GetUser struct {
	users ports.UserRepository
}

func NewGetUser(users ports.UserRepository) *GetUser {
	return &GetUser{users: users}
}

func (uc *GetUser) Execute(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	if userID.IsNil() {
		return nil, nil
	}
	return uc.users.GetByID(ctx, userID)
}

// ListUsers returns all registered users.
type ListUsers struct {
	users ports.UserRepository
}

func NewListUsers(users ports.UserRepository) *ListUsers {
	return &ListUsers{users: users}
}

func (uc *ListUsers) Execute(ctx context.Context) ([]*domain.User, error) {
	return uc.users.List(ctx)
}
