// Package auth carries the acting principal through request contexts.
//
// There is no authentication in this service — the principal is a stub taken
// from the X-User-Id header for audit attribution only. Requests without the
// header are anonymous and fully allowed.
package auth

import (
	"context"
	"net/http"
	"strings"
)

// HeaderUserID is the request header naming the acting principal.
const HeaderUserID = "X-User-Id"

// Principal identifies the actor attributed to a write for audit purposes.
type Principal struct {
	ID string
}

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal returns a new context with the given principal attached.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx extracts the acting principal from the request context.
// Returns nil for anonymous requests — callers must treat nil as "no actor",
// which maps to null audit columns.
func PrincipalFromCtx(ctx context.Context) *Principal {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.ID == "" {
		return nil
	}
	return &p
}

// Middleware lifts the X-User-Id header into the request context.
// It never rejects a request; a missing or blank header simply leaves the
// request anonymous.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := strings.TrimSpace(r.Header.Get(HeaderUserID)); id != "" {
				r = r.WithContext(WithPrincipal(r.Context(), Principal{ID: id}))
			}
			next.ServeHTTP(w, r)
		})
	}
}
