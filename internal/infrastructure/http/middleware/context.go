package middleware

import (
	"context"

	"github.com/kalbaitzer/taskboard/internal/domain"
)

type contextKey string

const actorContextKey contextKey = "actor"

// WithActor injects the acting user's ID into the context.
func WithActor(ctx context.Context, actorID domain.UserID) context.Context {
	return context.WithValue(ctx, actorContextKey, actorID)
}

// ActorFromContext returns the acting user's ID, or the nil sentinel when
// no identity header was presented.
func ActorFromContext(ctx context.Context) domain.UserID {
	v := ctx.Value(actorContextKey)
	if v == nil {
		return domain.UserID{}
	}
	id, _ := v.(domain.UserID)
	return id
}
