package users

import "sync"

// Registry is the authoritative in-memory set of users keyed by email.
// Listing preserves insertion order.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]*User
	order []string
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*User)}
}

// Add registers a new active user. The registry is left untouched when the
// email is already taken.
func (r *Registry) Add(name, email, role string) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byKey[email]; exists {
		return Entry{}, ErrDuplicateUser
	}
	u := newUser(name, email, role)
	r.byKey[email] = u
	r.order = append(r.order, email)
	return u.entry(), nil
}

// Block marks the user registered under email as blocked.
func (r *Registry) Block(email string) (Entry, error) {
	return r.update(email, (*User).Block)
}

// Unblock returns the user registered under email to the active state.
func (r *Registry) Unblock(email string) (Entry, error) {
	return r.update(email, (*User).Unblock)
}

func (r *Registry) update(email string, fn func(*User)) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byKey[email]
	if !ok {
		return Entry{}, ErrUserNotFound
	}
	fn(u)
	return u.entry(), nil
}

// List returns a snapshot of every user, or ErrNoUsers when there are none.
func (r *Registry) List() ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return nil, ErrNoUsers
	}
	entries := make([]Entry, len(r.order))
	for i, email := range r.order {
		entries[i] = r.byKey[email].entry()
	}
	return entries, nil
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKey)
}
