// Package guard holds the existence and role checks shared by every
// service entry point.
package guard

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

// User resolves the acting user. The nil UUID is the "no caller identity"
// sentinel and fails the same way as an unknown user.
func User(ctx context.Context, users ports.UserRepository, userID domain.UserID) (*domain.User, error) {
	if userID.IsNil() {
		return nil, domerrors.ErrUserNotFound
	}
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	return user, nil
}

// Manager resolves the acting user and requires the Manager role.
func Manager(ctx context.Context, users ports.UserRepository, userID domain.UserID) (*domain.User, error) {
	user, err := User(ctx, users, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsManager() {
		return nil, domerrors.ErrReportForbidden
	}
	return user, nil
}

// Project resolves the target project with its tasks loaded.
func Project(ctx context.Context, projects ports.ProjectRepository, projectID domain.ProjectID) (*domain.Project, error) {
	project, err := projects.GetWithTasks(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domerrors.ErrProjectNotFound
	}
	return project, nil
}

// Task resolves the target task.
func Task(ctx context.Context, tasks ports.TaskRepository, taskID domain.TaskID) (*domain.Task, error) {
	task, err := tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domerrors.ErrTaskNotFound
	}
	return task, nil
}
