package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kalbaitzer/taskboard/internal/application/user"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

// UsersHandler handles /api/users/*.
type UsersHandler struct {
	registerUser *user.RegisterUser
	getUser      *user.GetUser
	listUsers    *user.ListUsers
	deleteUser   *user.DeleteUser
	log          zerolog.Logger
}

func NewUsersHandler(
	registerUser *user.RegisterUser,
	getUser *user.GetUser,
	listUsers *user.ListUsers,
	deleteUser *user.DeleteUser,
	log zerolog.Logger,
) *UsersHandler {
	return &UsersHandler{
		registerUser: registerUser,
		getUser:      getUser,
		listUsers:    listUsers,
		deleteUser:   deleteUser,
		log:          log,
	}
}

// RegisterUserRequest is the JSON body for POST /api/users.
type RegisterUserRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email,max=254"`
	Role  string `json:"role" validate:"omitempty,oneof=User Manager"`
}

// UserResponse is the JSON shape for a user profile.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Register handles POST /api/users.
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	res, err := h.registerUser.Execute(r.Context(), user.RegisterUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, userToResponse(res.User))
}

// Get handles GET /api/users/{userId}.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	u, err := h.getUser.Execute(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if u == nil {
		writeErr(w, http.StatusNotFound, ErrCodeNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, userToResponse(u))
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.listUsers.Execute(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, userToResponse(u))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"users": items})
}

// Delete handles DELETE /api/users/{userId}.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}
	if err := h.deleteUser.Execute(r.Context(), userID); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func parseUserID(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid user id")
		return domain.UserID{}, false
	}
	return domain.NewUserID(id), true
}
