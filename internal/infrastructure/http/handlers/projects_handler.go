package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/application/project"
	"github.com/kalbaitzer/taskboard/internal/domain"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/http/middleware"
)

// ProjectsHandler handles /api/projects/*.
type ProjectsHandler struct {
	createProject *project.CreateProject
	listProjects  *project.ListUserProjects
	getProject    *project.GetProject
	deleteProject *project.DeleteProject
	emitter       ports.WebhookEmitter
	log           zerolog.Logger
}

func NewProjectsHandler(
	createProject *project.CreateProject,
	listProjects *project.ListUserProjects,
	getProject *project.GetProject,
	deleteProject *project.DeleteProject,
	emitter ports.WebhookEmitter,
	log zerolog.Logger,
) *ProjectsHandler {
	return &ProjectsHandler{
		createProject: createProject,
		listProjects:  listProjects,
		getProject:    getProject,
		deleteProject: deleteProject,
		emitter:       emitter,
		log:           log,
	}
}

// CreateProjectRequest is the JSON body for POST /api/projects.
type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// ProjectResponse is the JSON shape for a project. Tasks is present only
// on the detail endpoint; the list endpoint carries the count alone.
type ProjectResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	OwnerID     string         `json:"owner_id"`
	CreatedAt   time.Time      `json:"created_at"`
	TaskCount   int            `json:"task_count"`
	Tasks       []TaskResponse `json:"tasks,omitempty"`
}

// Create handles POST /api/projects.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	var req CreateProjectRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	res, err := h.createProject.Execute(r.Context(), project.CreateProjectInput{
		ActorID:     actorID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	AuditEmit(h.log, r, h.emitter, "project.create", actorID.String(), true, "")
	writeJSON(w, http.StatusCreated, projectToResponse(res.Project, false))
}

// List handles GET /api/projects, returning the caller's projects.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	projects, err := h.listProjects.Execute(r.Context(), actorID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, projectToResponse(p, false))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"projects": items})
}

// Get handles GET /api/projects/{projectId}, including the project's tasks.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	projectID, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	p, err := h.getProject.Execute(r.Context(), actorID, projectID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(p, true))
}

// Delete handles DELETE /api/projects/{projectId}.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	projectID, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	if err := h.deleteProject.Execute(r.Context(), actorID, projectID); err != nil {
		middleware.RecordTaskEvent("project.delete", false)
		AuditEmit(h.log, r, h.emitter, "project.delete", actorID.String(), false, err.Error())
		writeDomainErr(w, err)
		return
	}
	middleware.RecordTaskEvent("project.delete", true)
	AuditEmit(h.log, r, h.emitter, "project.delete", actorID.String(), true, "")
	w.WriteHeader(http.StatusNoContent)
}

func projectToResponse(p *domain.Project, withTasks bool) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerUserID.String(),
		CreatedAt:   p.CreatedAt,
		TaskCount:   len(p.Tasks),
	}
	if withTasks {
		resp.Tasks = make([]TaskResponse, 0, len(p.Tasks))
		for _, t := range p.Tasks {
			resp.Tasks = append(resp.Tasks, taskToResponse(t))
		}
	}
	return resp
}
