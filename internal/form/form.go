// Package form turns raw add-form input into list items.
package form

import (
	"strconv"
	"strings"

	"packlist/internal/model"
	"packlist/internal/store"
)

// The quantity select offers 1..20. Values outside that range are still
// accepted by BuildItem; only the picker is bounded.
const (
	DefaultQuantity = 1
	MinQuantity     = 1
	MaxQuantity     = 20
)

// BuildItem validates raw input and returns a new unpacked item with a fresh id.
// It reports false when the description is blank.
func BuildItem(rawQuantity, rawDescription string) (model.Item, bool) {
	desc := strings.TrimSpace(rawDescription)
	if desc == "" {
		return model.Item{}, false
	}
	return model.Item{
		ID:          store.NewItemID(),
		Quantity:    ParseQuantity(rawQuantity),
		Description: desc,
		Packed:      false,
	}, true
}

// ParseQuantity returns the positive integer in s, or DefaultQuantity.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return DefaultQuantity
	}
	return n
}

// State is the add form's field state.
type State struct {
	Quantity    int
	Description string
}

func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

func (s *State) Reset() {
	s.Quantity = DefaultQuantity
	s.Description = ""
}

// Submit builds an item from the current fields. Fields reset only when an
// item was produced.
func (s *State) Submit() (model.Item, bool) {
	it, ok := BuildItem(strconv.Itoa(s.Quantity), s.Description)
	if !ok {
		return model.Item{}, false
	}
	s.Reset()
	return it, true
}

// IncQuantity steps the picker up, wrapping from MaxQuantity to MinQuantity.
func (s *State) IncQuantity() {
	if s.Quantity >= MaxQuantity || s.Quantity < MinQuantity {
		s.Quantity = MinQuantity
		return
	}
	s.Quantity++
}

// DecQuantity steps the picker down, wrapping from MinQuantity to MaxQuantity.
func (s *State) DecQuantity() {
	if s.Quantity <= MinQuantity || s.Quantity > MaxQuantity {
		s.Quantity = MaxQuantity
		return
	}
	s.Quantity--
}
