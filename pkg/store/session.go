package store

import "github.com/Ramsey-B/fern/pkg/models"

// Session returns a copy of the current UI selection state
func (s *Store) Session() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySession(s.session)
}

// UpdateSession applies a partial session update and returns the new state.
// Unknown tab names are rejected; every other field is pure state
// replacement and always succeeds.
func (s *Store) UpdateSession(patch models.SessionPatch) (models.SessionState, error) {
	if patch.ActiveTab != nil && !patch.ActiveTab.IsValid() {
		return models.SessionState{}, validationError("activeTab", "unknown tab '"+string(*patch.ActiveTab)+"'")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.ActiveTab != nil {
		s.session.ActiveTab = *patch.ActiveTab
	}
	if patch.SearchTerm != nil {
		s.session.SearchTerm = *patch.SearchTerm
	}
	for k, v := range patch.Filters {
		if s.session.Filters == nil {
			s.session.Filters = map[string]string{}
		}
		s.session.Filters[k] = v
	}
	if patch.SelectedDate != nil {
		s.session.SelectedDate = *patch.SelectedDate
	}
	if patch.CloseModal {
		s.session.Modal = nil
	} else if patch.Modal != nil {
		modal := *patch.Modal
		s.session.Modal = &modal
	}

	return copySession(s.session), nil
}

func copySession(in models.SessionState) models.SessionState {
	out := in
	out.Filters = make(map[string]string, len(in.Filters))
	for k, v := range in.Filters {
		out.Filters[k] = v
	}
	if in.Modal != nil {
		modal := *in.Modal
		out.Modal = &modal
	}
	return out
}
