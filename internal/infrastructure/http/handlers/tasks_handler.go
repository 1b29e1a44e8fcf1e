package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/application/task"
	"github.com/kalbaitzer/taskboard/internal/domain"
	"github.com/kalbaitzer/taskboard/internal/infrastructure/http/middleware"
)

// TasksHandler handles /api/tasks/*.
type TasksHandler struct {
	createTask    *task.CreateTask
	listTasks     *task.ListProjectTasks
	getTask       *task.GetTask
	updateDetails *task.UpdateTaskDetails
	updateStatus  *task.UpdateTaskStatus
	addComment    *task.AddComment
	deleteTask    *task.DeleteTask
	getHistory    *task.GetTaskHistory
	emitter       ports.WebhookEmitter
	log           zerolog.Logger
}

func NewTasksHandler(
	createTask *task.CreateTask,
	listTasks *task.ListProjectTasks,
	getTask *task.GetTask,
	updateDetails *task.UpdateTaskDetails,
	updateStatus *task.UpdateTaskStatus,
	addComment *task.AddComment,
	deleteTask *task.DeleteTask,
	getHistory *task.GetTaskHistory,
	emitter ports.WebhookEmitter,
	log zerolog.Logger,
) *TasksHandler {
	return &TasksHandler{
		createTask:    createTask,
		listTasks:     listTasks,
		getTask:       getTask,
		updateDetails: updateDetails,
		updateStatus:  updateStatus,
		addComment:    addComment,
		deleteTask:    deleteTask,
		getHistory:    getHistory,
		emitter:       emitter,
		log:           log,
	}
}

// CreateTaskRequest is the JSON body for POST /api/tasks/projects/{projectId}.
type CreateTaskRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	Priority    string    `json:"priority" validate:"required"`
}

// UpdateTaskRequest is the JSON body for PUT /api/tasks/{taskId}. All
// fields are replacements, not patches.
type UpdateTaskRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	Status      string    `json:"status" validate:"required"`
}

// UpdateStatusRequest is the JSON body for PATCH /api/tasks/{taskId}/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CommentRequest is the JSON body for POST /api/tasks/{taskId}/comments.
type CommentRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

// TaskResponse is the JSON shape for a task.
type TaskResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HistoryResponse is the JSON shape for one ledger entry.
type HistoryResponse struct {
	ID         string    `json:"id"`
	ChangeType string    `json:"change_type"`
	FieldName  string    `json:"field_name,omitempty"`
	OldValue   string    `json:"old_value,omitempty"`
	NewValue   string    `json:"new_value,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"user_id"`
}

// Create handles POST /api/tasks/projects/{projectId}.
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	projectID, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	var req CreateTaskRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	priority, err := domain.ParsePriority(req.Priority)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	res, err := h.createTask.Execute(r.Context(), task.CreateTaskInput{
		ActorID:     actorID,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
	})
	if err != nil {
		middleware.RecordTaskEvent("task.create", false)
		AuditEmit(h.log, r, h.emitter, "task.create", actorID.String(), false, err.Error())
		writeDomainErr(w, err)
		return
	}
	middleware.RecordTaskEvent("task.create", true)
	AuditEmit(h.log, r, h.emitter, "task.create", actorID.String(), true, "")
	writeJSON(w, http.StatusCreated, taskToResponse(res.Task))
}

// ListByProject handles GET /api/tasks/projects/{projectId}.
func (h *TasksHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	projectID, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	tasks, err := h.listTasks.Execute(r.Context(), actorID, projectID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskToResponse(t))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tasks": items})
}

// Get handles GET /api/tasks/{taskId}.
func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}
	t, err := h.getTask.Execute(r.Context(), actorID, taskID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskToResponse(t))
}

// Update handles PUT /api/tasks/{taskId}.
func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}
	var req UpdateTaskRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	err = h.updateDetails.Execute(r.Context(), task.UpdateTaskDetailsInput{
		ActorID:     actorID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      status,
	})
	if err != nil {
		middleware.RecordTaskEvent("task.update", false)
		AuditEmit(h.log, r, h.emitter, "task.update", actorID.String(), false, err.Error())
		writeDomainErr(w, err)
		return
	}
	middleware.RecordTaskEvent("task.update", true)
	AuditEmit(h.log, r, h.emitter, "task.update", actorID.String(), true, "")
	w.WriteHeader(http.StatusNoContent)
}

// UpdateStatus handles PATCH /api/tasks/{taskId}/status.
func (h *TasksHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	err = h.updateStatus.Execute(r.Context(), task.UpdateTaskStatusInput{
		ActorID: actorID,
		TaskID:  taskID,
		Status:  status,
	})
	if err != nil {
		middleware.RecordTaskEvent("task.status", false)
		AuditEmit(h.log, r, h.emitter, "task.status", actorID.String(), false, err.Error())
		writeDomainErr(w, err)
		return
	}
	middleware.RecordTaskEvent("task.status", true)
	AuditEmit(h.log, r, h.emitter, "task.status", actorID.String(), true, "")
	w.WriteHeader(http.StatusNoContent)
}

// AddComment handles POST /api/tasks/{taskId}/comments.
func (h *TasksHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}
	var req CommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	err := h.addComment.Execute(r.Context(), task.AddCommentInput{
		ActorID: actorID,
		TaskID:  taskID,
		Comment: req.Comment,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// Delete handles DELETE /api/tasks/{taskId}.
func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}
	if err := h.deleteTask.Execute(r.Context(), actorID, taskID); err != nil {
		middleware.RecordTaskEvent("task.delete", false)
		AuditEmit(h.log, r, h.emitter, "task.delete", actorID.String(), false, err.Error())
		writeDomainErr(w, err)
		return
	}
	middleware.RecordTaskEvent("task.delete", true)
	AuditEmit(h.log, r, h.emitter, "task.delete", actorID.String(), true, "")
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/tasks/{taskId}/history.
func (h *TasksHandler) History(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.ActorFromContext(r.Context())
	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}
	entries, err := h.getHistory.Execute(r.Context(), actorID, taskID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]HistoryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryResponse{
			ID:         e.ID().String(),
			ChangeType: e.ChangeType(),
			FieldName:  e.FieldName(),
			OldValue:   e.OldValue(),
			NewValue:   e.NewValue(),
			Comment:    e.Comment(),
			Timestamp:  e.Timestamp(),
			UserID:     e.UserID().String(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": items})
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID().String(),
		ProjectID:   t.ProjectID().String(),
		Title:       t.Title(),
		Description: t.Description(),
		DueDate:     t.DueDate(),
		Status:      string(t.Status()),
		Priority:    string(t.Priority()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func parseProjectID(w http.ResponseWriter, r *http.Request) (domain.ProjectID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "projectId"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid project id")
		return domain.ProjectID{}, false
	}
	return domain.NewProjectID(id), true
}

func parseTaskID(w http.ResponseWriter, r *http.Request) (domain.TaskID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "taskId"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid task id")
		return domain.TaskID{}, false
	}
	return domain.NewTaskID(id), true
}
