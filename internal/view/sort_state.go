package view

import "packlist/internal/model"

// SortState is the selected sort mode for one list view.
type SortState struct {
	mode model.SortMode
}

func NewSortState(mode model.SortMode) *SortState {
	return &SortState{mode: mode}
}

func (s *SortState) Mode() model.SortMode {
	return s.mode
}

func (s *SortState) Set(mode model.SortMode) {
	s.mode = mode
}

// Cycle advances to the next mode and returns it.
func (s *SortState) Cycle() model.SortMode {
	s.mode = s.mode.Next()
	return s.mode
}

func (s *SortState) Reset() {
	s.mode = model.SortDefault
}
