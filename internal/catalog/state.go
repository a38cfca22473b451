package catalog

import "slices"

// State is the transient filter state of one catalog page.
//
// Methods never modify the receiver; each returns the next state.
type State struct {
	Query          string
	Active         []string
	SelectedID     string
	DialogOpen     bool
	FiltersVisible bool
}

// NewState returns the state a page starts with.
func NewState() State {
	return State{FiltersVisible: true}
}

// Normalize drops empty and repeated entries from the active set, keeping first occurrences.
func (s State) Normalize() State {
	active := make([]string, 0, len(s.Active))
	for _, t := range s.Active {
		if t == "" || slices.Contains(active, t) {
			continue
		}
		active = append(active, t)
	}
	s.Active = active
	if s.SelectedID == "" {
		s.DialogOpen = false
	}
	return s
}

// SetQuery replaces the free-text query.
func (s State) SetQuery(q string) State {
	s.Active = slices.Clone(s.Active)
	s.Query = q
	return s
}

// ToggleTag adds t to the active set or removes it when already present.
func (s State) ToggleTag(t string) State {
	s.Active = ToggleTag(s.Active, t)
	return s
}

// ClearAll resets the query and the active set.
func (s State) ClearAll() State {
	s.Query = ""
	s.Active = nil
	return s
}

// OpenDialog selects the record with the given id and opens the dialog.
func (s State) OpenDialog(id string) State {
	s.Active = slices.Clone(s.Active)
	s.SelectedID = id
	s.DialogOpen = true
	return s
}

// CloseDialog closes the dialog. The last selection is kept.
func (s State) CloseDialog() State {
	s.Active = slices.Clone(s.Active)
	s.DialogOpen = false
	return s
}

// ToggleFilters shows or hides the filter panel.
func (s State) ToggleFilters() State {
	s.Active = slices.Clone(s.Active)
	s.FiltersVisible = !s.FiltersVisible
	return s
}

// ToggleTag returns a new set with t removed if present, appended otherwise.
func ToggleTag(active []string, t string) []string {
	if slices.Contains(active, t) {
		out := make([]string, 0, len(active))
		for _, v := range active {
			if v != t {
				out = append(out, v)
			}
		}
		return out
	}
	out := make([]string, 0, len(active)+1)
	out = append(out, active...)
	return append(out, t)
}
