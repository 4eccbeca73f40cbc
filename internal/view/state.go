// Package view holds transient presentation state. Nothing here is stored on
// articles; selection is keyed by article id.
package view

import "MediaMap/internal/domain"

// State is the per-viewer sort mode and visualization selection.
type State struct {
	Mode     domain.SortMode
	Selected string
}

// NewState returns the initial view: sorted by score, nothing selected.
func NewState() State {
	return State{Mode: domain.SortByScore}
}

// ToggleSort flips between score and recency ordering.
func (s State) ToggleSort() State {
	if s.Mode == domain.SortByRecent {
		s.Mode = domain.SortByScore
	} else {
		s.Mode = domain.SortByRecent
	}
	return s
}

// ToggleSelected shows the visualization for id, or hides it if id is already shown.
func (s State) ToggleSelected(id string) State {
	if s.Selected == id {
		s.Selected = ""
	} else {
		s.Selected = id
	}
	return s
}

// IsSelected reports whether the visualization for id is shown.
func (s State) IsSelected(id string) bool {
	return id != "" && s.Selected == id
}
