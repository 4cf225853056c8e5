package view

import (
	"sort"

	"packlist/internal/model"
)

// Projection is a display ordering of a store snapshot.
type Projection struct {
	Items []model.Item
	Mode  model.SortMode
}

// Empty reports whether the "No items yet" placeholder should be shown.
func (p Projection) Empty() bool {
	return len(p.Items) == 0
}

// ShowSortControls is false for an empty list; sort and clear are hidden then.
func (p Projection) ShowSortControls() bool {
	return !p.Empty()
}

// Project orders items for display. The input is never modified.
func Project(items []model.Item, mode model.SortMode) Projection {
	out := make([]model.Item, len(items))
	copy(out, items)

	switch mode {
	case model.SortByDescription:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Description < out[j].Description
		})
	case model.SortByPacked:
		sort.SliceStable(out, func(i, j int) bool {
			return !out[i].Packed && out[j].Packed
		})
	}
	return Projection{Items: out, Mode: mode}
}
