package middleware

import (
	"context"
	"net/http"

	"janseva/models"
)

type contextKey string

const (
	actorIDKey   contextKey = "actor_id"
	actorRoleKey contextKey = "actor_role"
)

// Actor reads the client-declared identity headers into the request context.
// The engine trusts these by design: authentication enforcement is out of
// scope, matching the original single-client deployment.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := r.Header.Get("X-User-ID"); id != "" {
			ctx = context.WithValue(ctx, actorIDKey, id)
		}
		if roleHeader := r.Header.Get("X-User-Role"); roleHeader != "" {
			if role, err := models.ParseRole(roleHeader); err == nil {
				ctx = context.WithValue(ctx, actorRoleKey, role)
			}
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorID returns the client-declared user id, or "" when absent
func ActorID(r *http.Request) string {
	if id, ok := r.Context().Value(actorIDKey).(string); ok {
		return id
	}
	return ""
}

// ActorRole returns the client-declared role, or "" when absent
func ActorRole(r *http.Request) models.RecipientRole {
	if role, ok := r.Context().Value(actorRoleKey).(models.RecipientRole); ok {
		return role
	}
	return ""
}
