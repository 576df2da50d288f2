package api

import (
	"context"
	"net/http"
	"strings"
)

type contextKey int

const (
	usernameKey contextKey = iota
	tokenKey
)

// AuthMiddleware is the request authorization gate. A request passes only
// when it carries a bearer token that verifies cryptographically and is
// registered as a live session. All three failure modes — missing header,
// failed verification, inactive session — produce the identical 401 so no
// rejection leaks which check tripped.
func (a *API) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeUnauthorized(w)
			return
		}

		claims, ok := a.tokens.Verify(token)
		if !ok {
			writeUnauthorized(w)
			return
		}

		if !a.sessions.Active(token) {
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
		ctx = context.WithValue(ctx, tokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// usernameFromContext returns the username the gate attached to the request.
func usernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// tokenFromContext returns the bearer token the gate attached to the request.
func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
