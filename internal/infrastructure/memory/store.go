// Package memory provides an in-memory implementation of the persistence
// ports. It backs the application-layer tests and keeps the same
// commit-once semantics as the postgres unit of work: writes made inside
// Do become visible only when the callback returns nil.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

type state struct {
	users    []*domain.User
	projects []*domain.Project
	tasks    []*domain.Task
	history  []*domain.TaskHistory
}

func (s *state) clone() *state {
	cp := &state{
		users:    make([]*domain.User, len(s.users)),
		projects: make([]*domain.Project, len(s.projects)),
		tasks:    make([]*domain.Task, len(s.tasks)),
		history:  make([]*domain.TaskHistory, len(s.history)),
	}
	for i, u := range s.users {
		v := *u
		cp.users[i] = &v
	}
	for i, p := range s.projects {
		v := *p
		cp.projects[i] = &v
	}
	for i, t := range s.tasks {
		v := *t
		cp.tasks[i] = &v
	}
	copy(cp.history, s.history) // ledger entries are immutable
	return cp
}

// Store holds all entities and implements ports.UnitOfWork.
type Store struct {
	mu      sync.Mutex
	state   state
	commits int
}

// NewStore creates an empty store.
func NewStore() *Store { return &Store{} }

// Repos returns repositories bound to the live state, for read-only
// operations and test seeding.
func (s *Store) Repos() ports.RepoSet {
	return repoSet(&s.state, &s.mu)
}

// Do implements ports.UnitOfWork against a staged copy of the state: the
// copy replaces the live state only when fn succeeds.
func (s *Store) Do(ctx context.Context, fn func(ports.RepoSet) error) error {
	s.mu.Lock()
	staged := s.state.clone()
	s.mu.Unlock()

	if err := fn(repoSet(staged, nil)); err != nil {
		return err
	}

	s.mu.Lock()
	s.state = *staged
	s.commits++
	s.mu.Unlock()
	return nil
}

// Commits reports how many units of work have committed.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func repoSet(st *state, mu *sync.Mutex) ports.RepoSet {
	return ports.RepoSet{
		Users:    &userRepo{st: st, mu: mu},
		Projects: &projectRepo{st: st, mu: mu},
		Tasks:    &taskRepo{st: st, mu: mu},
		History:  &historyRepo{st: st, mu: mu},
	}
}

type userRepo struct {
	st *state
	mu *sync.Mutex
}

func (r *userRepo) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *userRepo) Add(ctx context.Context, user *domain.User) error {
	defer r.lock()()
	r.st.users = append(r.st.users, user)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	defer r.lock()()
	for _, u := range r.st.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) List(ctx context.Context) ([]*domain.User, error) {
	defer r.lock()()
	out := make([]*domain.User, len(r.st.users))
	copy(out, r.st.users)
	return out, nil
}

func (r *userRepo) Delete(ctx context.Context, user *domain.User) error {
	defer r.lock()()
	for i, u := range r.st.users {
		if u.ID == user.ID {
			r.st.users = append(r.st.users[:i], r.st.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type projectRepo struct {
	st *state
	mu *sync.Mutex
}

func (r *projectRepo) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *projectRepo) Add(ctx context.Context, project *domain.Project) error {
	defer r.lock()()
	r.st.projects = append(r.st.projects, project)
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error) {
	defer r.lock()()
	return r.find(projectID), nil
}

func (r *projectRepo) GetWithTasks(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error) {
	defer r.lock()()
	p := r.find(projectID)
	if p == nil {
		return nil, nil
	}
	cp := *p
	cp.Tasks = tasksOfProject(r.st, projectID)
	return &cp, nil
}

func (r *projectRepo) ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*domain.Project, error) {
	defer r.lock()()
	var out []*domain.Project
	for _, p := range r.st.projects {
		if p.OwnerUserID == ownerID {
			cp := *p
			cp.Tasks = tasksOfProject(r.st, p.ID)
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *projectRepo) Delete(ctx context.Context, project *domain.Project) error {
	defer r.lock()()
	for i, p := range r.st.projects {
		if p.ID == project.ID {
			r.st.projects = append(r.st.projects[:i], r.st.projects[i+1:]...)
			break
		}
	}
	// cascade: drop the project's tasks and their ledger entries
	for _, t := range tasksOfProject(r.st, project.ID) {
		deleteTask(r.st, t.ID())
	}
	return nil
}

func (r *projectRepo) find(projectID domain.ProjectID) *domain.Project {
	for _, p := range r.st.projects {
		if p.ID == projectID {
			return p
		}
	}
	return nil
}

type taskRepo struct {
	st *state
	mu *sync.Mutex
}

func (r *taskRepo) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *taskRepo) Add(ctx context.Context, task *domain.Task) error {
	defer r.lock()()
	r.st.tasks = append(r.st.tasks, task)
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, taskID domain.TaskID) (*domain.Task, error) {
	defer r.lock()()
	for _, t := range r.st.tasks {
		if t.ID() == taskID {
			return t, nil
		}
	}
	return nil, nil
}

func (r *taskRepo) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error) {
	defer r.lock()()
	return tasksOfProject(r.st, projectID), nil
}

func (r *taskRepo) Update(ctx context.Context, task *domain.Task) error {
	defer r.lock()()
	for i, t := range r.st.tasks {
		if t.ID() == task.ID() {
			r.st.tasks[i] = task
			return nil
		}
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, task *domain.Task) error {
	defer r.lock()()
	deleteTask(r.st, task.ID())
	return nil
}

func (r *taskRepo) HasActiveTasks(ctx context.Context, projectID domain.ProjectID) (bool, error) {
	defer r.lock()()
	for _, t := range r.st.tasks {
		if t.ProjectID() == projectID && t.Status().IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *taskRepo) GetCompletedSince(ctx context.Context, since time.Time) ([]*domain.TaskHistory, error) {
	defer r.lock()()
	var out []*domain.TaskHistory
	for _, h := range r.st.history {
		if h.ChangeType() == domain.ChangeUpdate &&
			h.NewValue() == string(domain.StatusCompleted) &&
			!h.Timestamp().Before(since) {
			out = append(out, h)
		}
	}
	return out, nil
}

type historyRepo struct {
	st *state
	mu *sync.Mutex
}

func (r *historyRepo) lock() func() {
	if r.mu == nil {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *historyRepo) Add(ctx context.Context, entry *domain.TaskHistory) error {
	defer r.lock()()
	r.st.history = append(r.st.history, entry)
	return nil
}

func (r *historyRepo) ListByTask(ctx context.Context, taskID domain.TaskID) ([]*domain.TaskHistory, error) {
	defer r.lock()()
	var out []*domain.TaskHistory
	for _, h := range r.st.history {
		if h.TaskID() == taskID {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp().After(out[j].Timestamp())
	})
	return out, nil
}

func tasksOfProject(st *state, projectID domain.ProjectID) []*domain.Task {
	var out []*domain.Task
	for _, t := range st.tasks {
		if t.ProjectID() == projectID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out
}

func deleteTask(st *state, taskID domain.TaskID) {
	for i, t := range st.tasks {
		if t.ID() == taskID {
			st.tasks = append(st.tasks[:i], st.tasks[i+1:]...)
			break
		}
	}
	kept := st.history[:0]
	for _, h := range st.history {
		if h.TaskID() != taskID {
			kept = append(kept, h)
		}
	}
	st.history = kept
}

var _ ports.UnitOfWork = (*Store)(nil)
