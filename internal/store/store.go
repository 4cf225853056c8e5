package store

import (
	"packlist/internal/model"
)

// ListStore owns the ordered item sequence.
//
// Every mutation builds a fresh backing slice, so a snapshot returned by a
// previous call is never modified afterwards. ListStore is not safe for
// concurrent use; the TUI only touches it from its Update loop.
type ListStore struct {
	items []model.Item
}

func New(seed ...model.Item) *ListStore {
	items := make([]model.Item, len(seed))
	copy(items, seed)
	return &ListStore{items: items}
}

// Items returns the current snapshot.
func (s *ListStore) Items() []model.Item {
	return s.items
}

func (s *ListStore) Len() int {
	return len(s.items)
}

// Add appends item. Callers are responsible for validating the description
// (see form.BuildItem).
func (s *ListStore) Add(item model.Item) []model.Item {
	next := make([]model.Item, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, item)
	s.items = next
	return s.items
}

// TogglePacked flips Packed on the item with id. Unknown ids are a no-op.
func (s *ListStore) TogglePacked(id string) []model.Item {
	idx := s.indexOf(id)
	if idx < 0 {
		return s.items
	}
	next := make([]model.Item, len(s.items))
	copy(next, s.items)
	next[idx] = next[idx].TogglePacked()
	s.items = next
	return s.items
}

// Remove drops the item with id. Unknown ids are a no-op.
func (s *ListStore) Remove(id string) []model.Item {
	idx := s.indexOf(id)
	if idx < 0 {
		return s.items
	}
	next := make([]model.Item, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	return s.items
}

// Clear empties the list. The store itself stays usable.
func (s *ListStore) Clear() []model.Item {
	s.items = []model.Item{}
	return s.items
}

// Lookup returns the item with id, or a *NotFoundError.
func (s *ListStore) Lookup(id string) (model.Item, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Item{}, &NotFoundError{Kind: "item", ID: id}
	}
	return s.items[idx], nil
}

func (s *ListStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
