package task

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

// ListProjectTasks returns a project's tasks in creation order.
type ListProjectTasks struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

func NewListProjectTasks(users ports.UserRepository, projects ports.ProjectRepository, tasks ports.TaskRepository) *ListProjectTasks {
	return &ListProjectTasks{users: users, projects: projects, tasks: tasks}
}

func (uc *ListProjectTasks) Execute(ctx context.Context, actorID domain.UserID, projectID domain.ProjectID) ([]*domain.Task, error) {
	if _, err := guard.User(ctx, uc.users, actorID); err != nil {
		return nil, err
	}
	if _, err := guard.Project(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	return uc.tasks.ListByProject(ctx, projectID)
}

// GetTask returns a single task by id.
type GetTask struct {
	users ports.UserRepository
	tasks ports.TaskRepository
}

func NewGetTask(users ports.UserRepository, tasks ports.TaskRepository) *GetTask {
	return &GetTask{users: users, tasks: tasks}
}

func (uc *GetTask) Execute(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) (*domain.Task, error) {
	if _, err := guard.User(ctx, uc.users, actorID); err != nil {
		return nil, err
	}
	return guard.Task(ctx, uc.tasks, taskID)
}

// GetTaskHistory returns a task's ledger entries, most recent first.
// A missing task fails with not-found, like every other per-task operation.
type GetTaskHistory struct {
	users   ports.UserRepository
	tasks   ports.TaskRepository
	history ports.TaskHistoryRepository
}

func NewGetTaskHistory(users ports.UserRepository, tasks ports.TaskRepository, history ports.TaskHistoryRepository) *GetTaskHistory {
	return &GetTaskHistory{users: users, tasks: tasks, history: history}
}

func (uc *GetTaskHistory) Execute(ctx context.Context, actorID domain.UserID, taskID domain.TaskID) ([]*domain.TaskHistory, error) {
	if _, err := guard.User(ctx, uc.users, actorID); err != nil {
		return nil, err
	}
	if _, err := guard.Task(ctx, uc.tasks, taskID); err != nil {
		return nil, err
	}
	return uc.history.ListByTask(ctx, taskID)
}
