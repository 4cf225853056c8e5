package store

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"packlist/internal/model"
)

func testItems() []model.Item {
	return []model.Item{
		{ID: "item-socks", Quantity: 4, Description: "socks"},
		{ID: "item-passport", Quantity: 6, Description: "passport"},
	}
}

func TestListStore_AddAppendsInOrder(t *testing.T) {
	t.Parallel()

	s := New()
	var want []string
	for i := 0; i < 10; i++ {
		d := fmt.Sprintf("thing %d", i)
		s.Add(model.Item{ID: NewItemID(), Quantity: 1, Description: d})
		want = append(want, d)
	}
	if got := s.Len(); got != 10 {
		t.Fatalf("expected 10 items, got %d", got)
	}
	for i, it := range s.Items() {
		if it.Description != want[i] {
			t.Fatalf("item %d: got %q want %q", i, it.Description, want[i])
		}
	}
}

func TestListStore_NewCopiesSeed(t *testing.T) {
	t.Parallel()

	seed := testItems()
	s := New(seed...)
	seed[0].Description = "changed"
	if s.Items()[0].Description != "socks" {
		t.Fatalf("store shares the seed slice")
	}
}

func TestListStore_TogglePackedIsInvolution(t *testing.T) {
	t.Parallel()

	s := New(testItems()...)
	before := s.Items()

	after := s.TogglePacked("item-socks")
	if !after[0].Packed {
		t.Fatalf("expected socks packed")
	}
	if after[1].Packed {
		t.Fatalf("passport should be unchanged")
	}
	if before[0].Packed {
		t.Fatalf("toggle mutated an earlier snapshot")
	}

	again := s.TogglePacked("item-socks")
	if !reflect.DeepEqual(again, before) {
		t.Fatalf("double toggle:\n got: %#v\nwant: %#v", again, before)
	}
}

func TestListStore_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	s := New(testItems()...)
	want := testItems()

	if got := s.TogglePacked("item-nope"); !reflect.DeepEqual(got, want) {
		t.Fatalf("toggle unknown id changed the list: %#v", got)
	}
	if got := s.Remove("item-nope"); !reflect.DeepEqual(got, want) {
		t.Fatalf("remove unknown id changed the list: %#v", got)
	}
}

func TestListStore_Remove(t *testing.T) {
	t.Parallel()

	s := New(testItems()...)
	before := s.Items()

	got := s.Remove("item-socks")
	if len(got) != 1 {
		t.Fatalf("expected 1 item after remove, got %d", len(got))
	}
	for _, it := range got {
		if it.ID == "item-socks" {
			t.Fatalf("removed id still present")
		}
	}
	if len(before) != 2 || before[0].ID != "item-socks" {
		t.Fatalf("remove mutated an earlier snapshot: %#v", before)
	}
}

func TestListStore_ClearKeepsStoreUsable(t *testing.T) {
	t.Parallel()

	s := New(testItems()...)
	if got := s.Clear(); len(got) != 0 {
		t.Fatalf("expected empty after clear, got %d", len(got))
	}
	s.Add(model.Item{ID: "item-x", Quantity: 1, Description: "x"})
	if s.Len() != 1 {
		t.Fatalf("expected store usable after clear")
	}
}

func TestListStore_Lookup(t *testing.T) {
	t.Parallel()

	s := New(testItems()...)
	it, err := s.Lookup("item-passport")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if it.Description != "passport" {
		t.Fatalf("got %q", it.Description)
	}

	_, err = s.Lookup("item-nope")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != "item-nope" {
		t.Fatalf("unexpected id in error: %q", nf.ID)
	}
}

func TestDefaultSeed(t *testing.T) {
	t.Parallel()

	seed := DefaultSeed()
	if len(seed) != 3 {
		t.Fatalf("expected 3 seed items, got %d", len(seed))
	}
	ids := map[string]bool{}
	for _, it := range seed {
		if it.Packed {
			t.Fatalf("seed items start unpacked: %#v", it)
		}
		ids[it.ID] = true
	}
	if len(ids) != 3 {
		t.Fatalf("seed ids not unique: %v", ids)
	}
}
