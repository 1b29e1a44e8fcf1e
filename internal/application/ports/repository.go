package ports

import (
	"context"
	"time"

	"github.com/kalbaitzer/taskboard/internal/domain"
)

// UserRepository defines persistence for users.
type UserRepository interface {
	Add(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, user *domain.User) error
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Add(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error)
	// GetWithTasks loads the project together with its tasks, needed by
	// the task-capacity rule and the project detail view.
	GetWithTasks(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*domain.Project, error)
	Delete(ctx context.Context, project *domain.Project) error
}

// TaskRepository defines persistence for tasks.
type TaskRepository interface {
	Add(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, taskID domain.TaskID) (*domain.Task, error)
	// ListByProject returns a project's tasks ordered by creation time ascending.
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, task *domain.Task) error
	// HasActiveTasks reports whether the project holds Pending or
	// InProgress tasks; such tasks block project deletion.
	HasActiveTasks(ctx context.Context, projectID domain.ProjectID) (bool, error)
	// GetCompletedSince returns ledger entries recording a transition to
	// Completed at or after since. Feeds the performance report.
	GetCompletedSince(ctx context.Context, since time.Time) ([]*domain.TaskHistory, error)
}

// TaskHistoryRepository defines persistence for the append-only ledger.
// There is deliberately no update or delete.
type TaskHistoryRepository interface {
	Add(ctx context.Context, entry *domain.TaskHistory) error
	// ListByTask returns a task's ledger entries, most recent first.
	ListByTask(ctx context.Context, taskID domain.TaskID) ([]*domain.TaskHistory, error)
}

// RepoSet groups the repositories bound to one transactional scope.
type RepoSet struct {
	Users    UserRepository
	Projects ProjectRepository
	Tasks    TaskRepository
	History  TaskHistoryRepository
}

// UnitOfWork runs fn inside a single transactional scope; every write made
// through the RepoSet's repositories commits exactly once when fn returns
// nil, and nothing is persisted when fn returns an error.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(RepoSet) error) error
}
