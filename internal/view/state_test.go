package view

import (
	"testing"

	"MediaMap/internal/domain"
)

func TestToggleSort(t *testing.T) {
	t.Parallel()

	s := NewState()
	if s.Mode != domain.SortByScore {
		t.Fatalf("expected score mode by default, got %s", s.Mode)
	}
	s = s.ToggleSort()
	if s.Mode != domain.SortByRecent {
		t.Fatalf("expected recent mode, got %s", s.Mode)
	}
	if s.ToggleSort().Mode != domain.SortByScore {
		t.Fatalf("toggle did not return to score mode")
	}
}

func TestToggleSelected(t *testing.T) {
	t.Parallel()

	s := NewState().ToggleSelected("3")
	if !s.IsSelected("3") || s.IsSelected("4") {
		t.Fatalf("unexpected selection: %+v", s)
	}

	s = s.ToggleSelected("4")
	if !s.IsSelected("4") || s.IsSelected("3") {
		t.Fatalf("selecting another article must replace selection: %+v", s)
	}

	s = s.ToggleSelected("4")
	if s.IsSelected("4") || s.Selected != "" {
		t.Fatalf("second toggle must hide: %+v", s)
	}
	if s.IsSelected("") {
		t.Fatalf("empty id is never selected")
	}
}
