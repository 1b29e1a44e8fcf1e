package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kalbaitzer/taskboard/internal/domain"
)

func TestHistoryForCreation(t *testing.T) {
	taskID := domain.NewTaskID(uuid.New())
	userID := domain.NewUserID(uuid.New())
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entry := domain.HistoryForCreation(taskID, userID, "Ship the build", now)

	if entry.ChangeType() != domain.ChangeCreate {
		t.Errorf("change type = %q, want %q", entry.ChangeType(), domain.ChangeCreate)
	}
	if !strings.Contains(entry.NewValue(), "Ship the build") {
		t.Errorf("creation entry should carry the task title, got %q", entry.NewValue())
	}
	if entry.FieldName() != "" || entry.OldValue() != "" || entry.Comment() != "" {
		t.Error("creation entry must leave field name, old value and comment empty")
	}
	if !entry.Timestamp().Equal(now) {
		t.Errorf("timestamp = %v, want %v", entry.Timestamp(), now)
	}
	if entry.TaskID() != taskID || entry.UserID() != userID {
		t.Error("entry must reference the task and acting user")
	}
}

func TestHistoryForUpdate(t *testing.T) {
	taskID := domain.NewTaskID(uuid.New())
	userID := domain.NewUserID(uuid.New())
	now := time.Now().UTC()

	entry := domain.HistoryForUpdate(taskID, userID, "Status", "Pending", "InProgress", now)

	if entry.ChangeType() != domain.ChangeUpdate {
		t.Errorf("change type = %q, want %q", entry.ChangeType(), domain.ChangeUpdate)
	}
	if entry.FieldName() != "Status" || entry.OldValue() != "Pending" || entry.NewValue() != "InProgress" {
		t.Errorf("update entry fields = (%q, %q, %q)", entry.FieldName(), entry.OldValue(), entry.NewValue())
	}
	if entry.Comment() != "" {
		t.Error("update entry must not carry a comment")
	}
}

func TestHistoryForComment(t *testing.T) {
	taskID := domain.NewTaskID(uuid.New())
	userID := domain.NewUserID(uuid.New())
	now := time.Now().UTC()

	entry := domain.HistoryForComment(taskID, userID, "Blocked on the design review.", now)

	if entry.ChangeType() != domain.ChangeComment {
		t.Errorf("change type = %q, want %q", entry.ChangeType(), domain.ChangeComment)
	}
	if entry.Comment() != "Blocked on the design review." {
		t.Errorf("comment = %q", entry.Comment())
	}
	if entry.FieldName() != "" || entry.OldValue() != "" || entry.NewValue() != "" {
		t.Error("comment entry must leave field name and values empty")
	}
}
