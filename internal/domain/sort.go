package domain

import (
	"fmt"
	"strings"
)

// SortMode selects how a dataset is presented.
type SortMode string

const (
	// SortByScore orders by descending score, ties keep dataset order.
	SortByScore SortMode = "score"
	// SortByRecent keeps the dataset order as received.
	SortByRecent SortMode = "recent"
)

// ParseSortMode resolves a user supplied mode name. Empty input means SortByScore.
func ParseSortMode(value string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(SortByScore):
		return SortByScore, nil
	case string(SortByRecent), "unsorted":
		return SortByRecent, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortMode, value)
	}
}

// Label is the caption shown next to the sort toggle.
func (m SortMode) Label() string {
	if m == SortByRecent {
		return "Most Recent"
	}
	return "Algorithm Score"
}
