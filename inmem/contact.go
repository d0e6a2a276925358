// Package inmem provides memory-backed repositories. Contact submissions
// are kept per process only; durable storage is out of scope.
package inmem

import (
	"context"
	"sync"

	"cineseek/contact"

	"github.com/google/uuid"
)

type ContactRepository struct {
	mu       sync.Mutex
	contacts []contact.Contact
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) CreateContact(_ context.Context, c contact.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.contacts = append(r.contacts, c)
	return nil
}

func (r *ContactRepository) AllContacts(_ context.Context) ([]contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]contact.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}
