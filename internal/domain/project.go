package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxTasksPerProject caps how many tasks a single project may hold.
// Enforced at task-creation time, not as a stored constraint.
const MaxTasksPerProject = 20

// ProjectID is a value object for project identity.
type ProjectID struct{ uuid.UUID }

// NewProjectID creates a new ProjectID from uuid.
func NewProjectID(id uuid.UUID) ProjectID { return ProjectID{UUID: id} }

// String returns the canonical string form.
func (p ProjectID) String() string { return p.UUID.String() }

// Project groups tasks under a single owner. Tasks is populated only by
// repository methods that load the project together with its tasks.
type Project struct {
	ID          ProjectID
	Name        string
	Description string
	OwnerUserID UserID
	CreatedAt   time.Time
	Tasks       []*Task
}

// NewProject creates a project owned by ownerID.
func NewProject(name, description string, ownerID UserID, now time.Time) *Project {
	return &Project{
		ID:          NewProjectID(uuid.New()),
		Name:        name,
		Description: description,
		OwnerUserID: ownerID,
		CreatedAt:   now,
	}
}

// AtTaskCapacity reports whether the project already holds the maximum
// number of tasks. Valid only when Tasks was loaded.
func (p *Project) AtTaskCapacity() bool { return len(p.Tasks) >= MaxTasksPerProject }
