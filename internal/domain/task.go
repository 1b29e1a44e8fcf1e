package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

// Status represents the states a task can be in.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// ParseStatus converts the serialized form back into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid task status %q", s)
}

// IsActive reports whether the status blocks project deletion.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusInProgress
}

// Priority represents how urgent a task is. Fixed at creation.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ParsePriority converts the serialized form back into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid task priority %q", s)
}

// TaskID is a value object for task identity.
type TaskID struct{ uuid.UUID }

// NewTaskID creates a new TaskID from uuid.
func NewTaskID(id uuid.UUID) TaskID { return TaskID{UUID: id} }

// String returns the canonical string form.
func (t TaskID) String() string { return t.UUID.String() }

// Task is a unit of work inside a project. Fields are unexported so the
// only legal state transitions are NewTask, UpdateDetails and UpdateStatus.
// Priority in particular is fixed for the task's lifetime.
type Task struct {
	id          TaskID
	title       string
	description string
	dueDate     time.Time
	status      Status
	priority    Priority
	createdAt   time.Time
	updatedAt   time.Time
	projectID   ProjectID
}

// NewTask creates a task with a fresh identity, status Pending and the
// given priority, which cannot be changed afterwards.
func NewTask(title, description string, dueDate time.Time, priority Priority, projectID ProjectID, now time.Time) *Task {
	return &Task{
		id:          NewTaskID(uuid.New()),
		title:       title,
		description: description,
		dueDate:     dueDate,
		status:      StatusPending,
		priority:    priority,
		createdAt:   now,
		projectID:   projectID,
	}
}

// RehydrateTask rebuilds a task from stored state. For repository use only.
func RehydrateTask(id TaskID, title, description string, dueDate time.Time, status Status, priority Priority, createdAt, updatedAt time.Time, projectID ProjectID) *Task {
	return &Task{
		id:          id,
		title:       title,
		description: description,
		dueDate:     dueDate,
		status:      status,
		priority:    priority,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		projectID:   projectID,
	}
}

func (t *Task) ID() TaskID           { return t.id }
func (t *Task) Title() string        { return t.title }
func (t *Task) Description() string  { return t.description }
func (t *Task) DueDate() time.Time   { return t.dueDate }
func (t *Task) Status() Status       { return t.status }
func (t *Task) Priority() Priority   { return t.priority }
func (t *Task) CreatedAt() time.Time { return t.createdAt }
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }
func (t *Task) ProjectID() ProjectID { return t.projectID }

// UpdateDetails overwrites title, description, due date and status.
// It deliberately does not accept a priority.
func (t *Task) UpdateDetails(title, description string, dueDate time.Time, status Status, updatedAt time.Time) {
	t.title = title
	t.description = description
	t.dueDate = dueDate
	t.status = status
	t.updatedAt = updatedAt
}

// UpdateStatus moves the task to newStatus. A completed task cannot be
// reopened; Completed to Completed is allowed.
func (t *Task) UpdateStatus(newStatus Status, updatedAt time.Time) error {
	if t.status == StatusCompleted && newStatus != StatusCompleted {
		return domerrors.ErrTaskReopen
	}
	t.status = newStatus
	t.updatedAt = updatedAt
	return nil
}
