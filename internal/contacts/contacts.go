package contacts

import (
	"context"
	"strings"
	"sync"

	"giftwell/internal/campaign/models"
)

// Searcher looks up contacts by free-text query against the external
// contact source.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Contact, error)
}

// ListSource fetches a saved contact list by id.
type ListSource interface {
	FetchList(ctx context.Context, listID string) ([]models.Contact, error)
}

// StaticDirectory is an in-process Searcher and ListSource over a fixed
// contact set. It backs local development and tests when no external
// contact service is configured.
type StaticDirectory struct {
	mu       sync.RWMutex
	contacts []models.Contact
	lists    map[string][]models.Contact
}

func NewStaticDirectory(contacts ...models.Contact) *StaticDirectory {
	return &StaticDirectory{
		contacts: contacts,
		lists:    make(map[string][]models.Contact),
	}
}

// AddList registers a named list.
func (d *StaticDirectory) AddList(listID string, contacts []models.Contact) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lists[listID] = contacts
}

func (d *StaticDirectory) Search(_ context.Context, query string) ([]models.Contact, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(query))
	var matches []models.Contact
	for _, c := range d.contacts {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Company), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (d *StaticDirectory) FetchList(_ context.Context, listID string) ([]models.Contact, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.Contact(nil), d.lists[listID]...), nil
}
