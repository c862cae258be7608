package user

import "sync"

// Store is a thread-safe, append-only, ordered collection of users.
// It lives for the lifetime of the process and is never persisted.
type Store struct {
	mu    sync.RWMutex
	users []*User
}

// NewStore creates a store holding copies of the given seed records.
// A nil or empty seed falls back to DefaultSeed.
func NewStore(seed []User) *Store {
	if len(seed) == 0 {
		seed = DefaultSeed
	}

	s := &Store{users: make([]*User, 0, len(seed))}
	for _, u := range seed {
		s.users = append(s.users, &u)
	}
	return s
}

// All returns the current contents in insertion order.
// The returned slice is a snapshot; records appended afterwards are not visible in it.
func (s *Store) All() []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*User, len(s.users))
	copy(out, s.users)
	return out
}

// Add appends a new record built from the given fields and returns it.
// No uniqueness check or normalization is performed.
func (s *Store) Add(firstName, lastName, email string) *User {
	u := &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, u)
	return u
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}
