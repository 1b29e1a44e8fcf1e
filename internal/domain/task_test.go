package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kalbaitzer/taskboard/internal/domain"
	domerrors "github.com/kalbaitzer/taskboard/internal/domain/errors"
)

func newTestTask(t *testing.T) *domain.Task {
	t.Helper()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return domain.NewTask(
		"Write release notes",
		"Summarize the changes for 2.4",
		now.AddDate(0, 0, 7),
		domain.PriorityHigh,
		domain.NewProjectID(uuid.New()),
		now,
	)
}

func TestNewTask_Defaults(t *testing.T) {
	task := newTestTask(t)
	if task.Status() != domain.StatusPending {
		t.Errorf("new task status = %q, want %q", task.Status(), domain.StatusPending)
	}
	if task.Priority() != domain.PriorityHigh {
		t.Errorf("new task priority = %q, want %q", task.Priority(), domain.PriorityHigh)
	}
	if task.ID().UUID == uuid.Nil {
		t.Error("new task should have a non-nil ID")
	}
	if !task.UpdatedAt().IsZero() {
		t.Error("new task should not have an updated timestamp yet")
	}
}

func TestUpdateDetails_DoesNotTouchPriority(t *testing.T) {
	task := newTestTask(t)
	updated := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	task.UpdateDetails("New title", "New description", updated.AddDate(0, 1, 0), domain.StatusInProgress, updated)

	if task.Title() != "New title" {
		t.Errorf("title = %q, want %q", task.Title(), "New title")
	}
	if task.Status() != domain.StatusInProgress {
		t.Errorf("status = %q, want %q", task.Status(), domain.StatusInProgress)
	}
	if task.Priority() != domain.PriorityHigh {
		t.Errorf("priority changed to %q, must stay %q", task.Priority(), domain.PriorityHigh)
	}
	if !task.UpdatedAt().Equal(updated) {
		t.Errorf("updatedAt = %v, want %v", task.UpdatedAt(), updated)
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.Status
		to      domain.Status
		wantErr error
	}{
		{"pending to in-progress", domain.StatusPending, domain.StatusInProgress, nil},
		{"in-progress to completed", domain.StatusInProgress, domain.StatusCompleted, nil},
		{"completed to completed", domain.StatusCompleted, domain.StatusCompleted, nil},
		{"completed to pending", domain.StatusCompleted, domain.StatusPending, domerrors.ErrTaskReopen},
		{"completed to in-progress", domain.StatusCompleted, domain.StatusInProgress, domerrors.ErrTaskReopen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTestTask(t)
			now := time.Now().UTC()
			if tt.from != domain.StatusPending {
				if err := task.UpdateStatus(tt.from, now); err != nil {
					t.Fatalf("setting up status %q: %v", tt.from, err)
				}
			}
			err := task.UpdateStatus(tt.to, now)
			if err != tt.wantErr {
				t.Errorf("UpdateStatus(%q) from %q: err = %v, want %v", tt.to, tt.from, err, tt.wantErr)
			}
			if tt.wantErr != nil && task.Status() != tt.from {
				t.Errorf("failed transition must not change status; got %q", task.Status())
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Pending", "InProgress", "Completed"} {
		if _, err := domain.ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := domain.ParseStatus("Done"); err == nil {
		t.Error("ParseStatus should reject unknown statuses")
	}
}

func TestParsePriority(t *testing.T) {
	for _, p := range []string{"Low", "Medium", "High"} {
		if _, err := domain.ParsePriority(p); err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", p, err)
		}
	}
	if _, err := domain.ParsePriority("Urgent"); err == nil {
		t.Error("ParsePriority should reject unknown priorities")
	}
}

func TestStatusIsActive(t *testing.T) {
	if !domain.StatusPending.IsActive() || !domain.StatusInProgress.IsActive() {
		t.Error("Pending and InProgress are active statuses")
	}
	if domain.StatusCompleted.IsActive() {
		t.Error("Completed is not an active status")
	}
}
