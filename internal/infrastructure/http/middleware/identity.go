package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kalbaitzer/taskboard/internal/domain"
)

// UserIDHeader carries the caller's identity. There is no authentication
// on it; the service trusts an upstream gateway to have established it.
const UserIDHeader = "X-User-Id"

// Identity parses the identity header into the request context. A missing
// or malformed header puts the nil sentinel in the context, which the
// core treats as an unknown user.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID := domain.UserID{}
		if raw := r.Header.Get(UserIDHeader); raw != "" {
			if id, err := uuid.Parse(raw); err == nil {
				actorID = domain.NewUserID(id)
			}
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actorID)))
	})
}
