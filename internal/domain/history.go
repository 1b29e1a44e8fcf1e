package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Change types recorded in the task history ledger.
const (
	ChangeCreate  = "Create"
	ChangeUpdate  = "Update"
	ChangeComment = "Comment"
)

// HistoryID is a value object for ledger entry identity.
type HistoryID struct{ uuid.UUID }

// NewHistoryID creates a new HistoryID from uuid.
func NewHistoryID(id uuid.UUID) HistoryID { return HistoryID{UUID: id} }

// String returns the canonical string form.
func (h HistoryID) String() string { return h.UUID.String() }

// TaskHistory is one immutable audit record for a task: its creation, a
// single field change, or a comment. Entries are append-only; there is no
// update or delete. Construct through the HistoryFor* factories so that
// only the fields relevant to the change type are populated.
type TaskHistory struct {
	id         HistoryID
	changeType string
	fieldName  string
	oldValue   string
	newValue   string
	comment    string
	timestamp  time.Time
	taskID     TaskID
	userID     UserID
}

// HistoryForCreation records that a task was created.
func HistoryForCreation(taskID TaskID, userID UserID, title string, now time.Time) *TaskHistory {
	return &TaskHistory{
		id:         NewHistoryID(uuid.New()),
		changeType: ChangeCreate,
		newValue:   fmt.Sprintf("Task %q was created.", title),
		timestamp:  now,
		taskID:     taskID,
		userID:     userID,
	}
}

// HistoryForUpdate records a single field change with its old and new values.
func HistoryForUpdate(taskID TaskID, userID UserID, fieldName, oldValue, newValue string, now time.Time) *TaskHistory {
	return &TaskHistory{
		id:         NewHistoryID(uuid.New()),
		changeType: ChangeUpdate,
		fieldName:  fieldName,
		oldValue:   oldValue,
		newValue:   newValue,
		timestamp:  now,
		taskID:     taskID,
		userID:     userID,
	}
}

// HistoryForComment records a comment on a task.
func HistoryForComment(taskID TaskID, userID UserID, comment string, now time.Time) *TaskHistory {
	return &TaskHistory{
		id:         NewHistoryID(uuid.New()),
		changeType: ChangeComment,
		comment:    comment,
		timestamp:  now,
		taskID:     taskID,
		userID:     userID,
	}
}

// RehydrateHistory rebuilds a ledger entry from stored state. For
// repository use only.
func RehydrateHistory(id HistoryID, changeType, fieldName, oldValue, newValue, comment string, timestamp time.Time, taskID TaskID, userID UserID) *TaskHistory {
	return &TaskHistory{
		id:         id,
		changeType: changeType,
		fieldName:  fieldName,
		oldValue:   oldValue,
		newValue:   newValue,
		comment:    comment,
		timestamp:  timestamp,
		taskID:     taskID,
		userID:     userID,
	}
}

func (h *TaskHistory) ID() HistoryID        { return h.id }
func (h *TaskHistory) ChangeType() string   { return h.changeType }
func (h *TaskHistory) FieldName() string    { return h.fieldName }
func (h *TaskHistory) OldValue() string     { return h.oldValue }
func (h *TaskHistory) NewValue() string     { return h.newValue }
func (h *TaskHistory) Comment() string      { return h.comment }
func (h *TaskHistory) Timestamp() time.Time { return h.timestamp }
func (h *TaskHistory) TaskID() TaskID       { return h.taskID }
func (h *TaskHistory) UserID() UserID       { return h.userID }
