package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/persistence/db"
)

const (
	insertProjectSQL = `INSERT INTO projects (id, owner_id, name, description, created_at) VALUES ($1, $2, $3, $4, $5)`
	getProjectSQL    = `SELECT id, owner_id, name, description, created_at FROM projects WHERE id = $1`
	listByOwnerSQL   = `SELECT id, owner_id, name, description, created_at FROM projects WHERE owner_id = $1 ORDER BY created_at`
	deleteProjectSQL = `DELETE FROM projects WHERE id = $1`
)

// ProjectRepository persists projects. Task rows cascade on delete via the
// schema's foreign keys, matching the aggregate boundary.
type ProjectRepository struct {
	dbtx  db.DBTX
	tasks *TaskRepository
}

func NewProjectRepository(dbtx db.DBTX) *ProjectRepository {
	return &ProjectRepository{dbtx: dbtx, tasks: NewTaskRepository(dbtx)}
}

func (r *ProjectRepository) Add(ctx context.Context, project *domain.Project) error {
	_, err := r.dbtx.Exec(ctx, insertProjectSQL,
		project.ID.UUID, project.OwnerUserID.UUID, project.Name, project.Description, project.CreatedAt)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error) {
	var p db.Project
	err := r.dbtx.QueryRow(ctx, getProjectSQL, projectID.UUID).
		Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbProjectToDomain(p), nil
}

func (r *ProjectRepository) GetWithTasks(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error) {
	project, err := r.GetByID(ctx, projectID)
	if err != nil || project == nil {
		return project, err
	}
	tasks, err := r.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	project.Tasks = tasks
	return project, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*domain.Project, error) {
	rows, err := r.dbtx.Query(ctx, listByOwnerSQL, ownerID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*domain.Project
	for rows.Next() {
		var p db.Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, dbProjectToDomain(p))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// the owner's project list reports task counts, so load the tasks
	for _, p := range list {
		tasks, err := r.tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Tasks = tasks
	}
	return list, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, project *domain.Project) error {
	_, err := r.dbtx.Exec(ctx, deleteProjectSQL, project.ID.UUID)
	return err
}

func dbProjectToDomain(p db.Project) *domain.Project {
	return &domain.Project{
		ID:          domain.NewProjectID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		OwnerUserID: domain.NewUserID(p.OwnerID),
		CreatedAt:   p.CreatedAt,
	}
}

// Ensure ProjectRepository implements ports.ProjectRepository.
var _ ports.ProjectRepository = (*ProjectRepository)(nil)
