package model

import (
	"fmt"
	"strings"
)

// Item is a single packing list entry.
type Item struct {
	ID          string `json:"id"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
	Packed      bool   `json:"packed"`
}

// WithPacked returns a copy of i with Packed set to packed.
func (i Item) WithPacked(packed bool) Item {
	i.Packed = packed
	return i
}

// TogglePacked returns a copy of i with Packed flipped.
func (i Item) TogglePacked() Item {
	return i.WithPacked(!i.Packed)
}

type SortMode int

const (
	SortDefault SortMode = iota
	SortByDescription
	SortByPacked
)

var sortModeNames = [...]string{
	SortDefault:       "default",
	SortByDescription: "description",
	SortByPacked:      "packed",
}

func (m SortMode) String() string {
	if m < 0 || int(m) >= len(sortModeNames) {
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
	return sortModeNames[m]
}

// Label is the human-facing name used by sort controls.
func (m SortMode) Label() string {
	switch m {
	case SortByDescription:
		return "Description"
	case SortByPacked:
		return "Packed"
	default:
		return "Default"
	}
}

// Next cycles default -> description -> packed -> default.
func (m SortMode) Next() SortMode {
	switch m {
	case SortDefault:
		return SortByDescription
	case SortByDescription:
		return SortByPacked
	default:
		return SortDefault
	}
}

// ParseSortMode accepts the select values (default|description|packed) and
// the by-* aliases. Empty input means default.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return SortDefault, nil
	case "description", "by-description":
		return SortByDescription, nil
	case "packed", "by-packed":
		return SortByPacked, nil
	default:
		return SortDefault, fmt.Errorf("unknown sort mode: %q", s)
	}
}

// MarshalText lets sort modes round-trip through config and JSON output.
func (m SortMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *SortMode) UnmarshalText(b []byte) error {
	v, err := ParseSortMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Summary is the aggregate completion state of a list.
type Summary struct {
	Total      int    `json:"total"`
	Packed     int    `json:"packed"`
	Percentage int    `json:"percentage"`
	Message    string `json:"message"`
}
