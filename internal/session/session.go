package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"tribuna/internal/model"
)

// Registry maps opaque bearer tokens to logged-in users. It is memory-only:
// sessions die with the process, exactly as the original sessions died with
// the page. Users are never written to the persistent store.
type Registry struct {
	mu     sync.Mutex
	tokens map[string]model.User
}

func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]model.User)}
}

// Issue stores the user under a fresh random token and returns the token.
func (r *Registry) Issue(user model.User) string {
	buf := make([]byte, 16)
	rand.Read(buf)
	token := hex.EncodeToString(buf)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = user
	return token
}

func (r *Registry) Resolve(token string) (model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.tokens[token]
	return user, ok
}

func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
}
