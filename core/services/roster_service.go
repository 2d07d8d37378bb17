// Package services holds the application-level state services the demo
// presenters share. Everything is in-memory sample data; the demos have
// no persistence.
package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Contact is the record the master-detail demo edits.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Notes string `json:"notes,omitempty"`
}

// RosterService is an in-memory contact store. Safe for concurrent use.
type RosterService struct {
	mu       sync.RWMutex
	contacts map[string]Contact
	order    []string
}

// NewRosterService creates a store seeded with sample contacts.
func NewRosterService() *RosterService {
	s := &RosterService{contacts: make(map[string]Contact)}
	for _, c := range []Contact{
		{Name: "Ada Lovelace", Email: "ada@example.com", Notes: "Analytical engine notes"},
		{Name: "Grace Hopper", Email: "grace@example.com", Notes: "Compiler pioneer"},
		{Name: "Edsger Dijkstra", Email: "edsger@example.com"},
	} {
		s.addLocked(c)
	}
	return s
}

// List returns the contacts in insertion order.
func (s *RosterService) List() []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Contact, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.contacts[id])
	}
	return out
}

// Get looks up a contact by id.
func (s *RosterService) Get(id string) (Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts[id]
	return c, ok
}

// Add stores a new contact, assigning it an id, and returns the stored
// record.
func (s *RosterService) Add(c Contact) Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(c)
}

func (s *RosterService) addLocked(c Contact) Contact {
	c.ID = uuid.NewString()
	s.contacts[c.ID] = c
	s.order = append(s.order, c.ID)
	return c
}

// Update replaces an existing contact. Updating an unknown id is an
// error, it means the caller holds a stale record.
func (s *RosterService) Update(c Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[c.ID]; !ok {
		return fmt.Errorf("services: contact %q not found", c.ID)
	}
	s.contacts[c.ID] = c
	return nil
}

// Remove deletes a contact and reports whether it existed.
func (s *RosterService) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contacts[id]; !ok {
		return false
	}
	delete(s.contacts, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
