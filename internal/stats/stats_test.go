package stats

import (
	"testing"

	"packlist/internal/model"
)

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	for _, in := range [][]model.Item{nil, {}} {
		got := Summarize(in)
		if got.Message != MessagePrepare {
			t.Fatalf("message: got %q", got.Message)
		}
		if got.Total != 0 || got.Packed != 0 || got.Percentage != 0 {
			t.Fatalf("expected zero counts, got %#v", got)
		}
	}
}

func TestSummarize_AllPacked(t *testing.T) {
	t.Parallel()

	got := Summarize([]model.Item{
		{ID: "a", Quantity: 1, Description: "a", Packed: true},
		{ID: "b", Quantity: 1, Description: "b", Packed: true},
	})
	if got.Percentage != 100 {
		t.Fatalf("percentage: got %d", got.Percentage)
	}
	if got.Message != MessageReady {
		t.Fatalf("message: got %q", got.Message)
	}
}

func TestSummarize_Progress(t *testing.T) {
	t.Parallel()

	got := Summarize([]model.Item{
		{ID: "1", Quantity: 4, Description: "socks", Packed: true},
		{ID: "2", Quantity: 6, Description: "passport"},
	})
	want := model.Summary{
		Total:      2,
		Packed:     1,
		Percentage: 50,
		Message:    "You have 2 items in your list. You have packed 1 items. (50)%",
	}
	if got != want {
		t.Fatalf("Summarize:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestSummarize_Rounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		packed, total, want int
	}{
		{packed: 1, total: 3, want: 33},
		{packed: 2, total: 3, want: 67},
		{packed: 1, total: 8, want: 13}, // 12.5 rounds up
		{packed: 0, total: 5, want: 0},
	}
	for _, tt := range tests {
		items := make([]model.Item, tt.total)
		for i := 0; i < tt.packed; i++ {
			items[i].Packed = true
		}
		if got := Summarize(items).Percentage; got != tt.want {
			t.Fatalf("%d/%d: got %d want %d", tt.packed, tt.total, got, tt.want)
		}
	}
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := []model.Item{{ID: "1", Quantity: 1, Description: "a", Packed: true}}
	_ = Summarize(items)
	if !items[0].Packed || items[0].Description != "a" {
		t.Fatalf("Summarize changed its input: %#v", items)
	}
}
