package auth

import (
	"sync"

	"github.com/meseriasii/meseriasii/repository"
)

// Registry maps currently valid tokens to the user that obtained them.
// It is process-local by design: a restart invalidates every session even
// if the tokens themselves are still cryptographically valid.
type Registry struct {
	mu   sync.RWMutex
	data map[string]repository.User
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{data: make(map[string]repository.User)}
}

// Register records a token as live, snapshotting the user at login time.
// Re-registering a token overwrites the snapshot.
func (r *Registry) Register(token string, user repository.User) {
	r.mu.Lock()
	r.data[token] = user
	r.mu.Unlock()
}

// Revoke removes a token. Returns false when the token was not registered;
// revoking an unknown token is a no-op, not an error.
func (r *Registry) Revoke(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[token]; !ok {
		return false
	}
	delete(r.data, token)
	return true
}

// Active reports whether the token is currently registered.
func (r *Registry) Active(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[token]
	return ok
}

// User returns the snapshot recorded when the token was registered.
func (r *Registry) User(token string) (repository.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.data[token]
	return user, ok
}
