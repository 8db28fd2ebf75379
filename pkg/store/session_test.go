package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/fern/pkg/models"
)

func TestSessionDefaults(t *testing.T) {
	s := New()

	session := s.Session()
	assert.Equal(t, models.TabDashboard, session.ActiveTab)
	assert.Empty(t, session.SearchTerm)
	assert.Empty(t, session.Filters)
	assert.Nil(t, session.Modal)
}

func TestUpdateSessionPartialPatch(t *testing.T) {
	s := New()

	tab := models.TabCustomers
	term := "テスト"
	state, err := s.UpdateSession(models.SessionPatch{
		ActiveTab:  &tab,
		SearchTerm: &term,
		Filters:    map[string]string{"status": "アクティブ"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TabCustomers, state.ActiveTab)
	assert.Equal(t, "テスト", state.SearchTerm)
	assert.Equal(t, "アクティブ", state.Filters["status"])

	// A later patch that only changes the tab leaves the rest alone
	tab2 := models.TabCalendar
	state, err = s.UpdateSession(models.SessionPatch{ActiveTab: &tab2})
	require.NoError(t, err)
	assert.Equal(t, models.TabCalendar, state.ActiveTab)
	assert.Equal(t, "テスト", state.SearchTerm)
	assert.Equal(t, "アクティブ", state.Filters["status"])
}

func TestUpdateSessionRejectsUnknownTab(t *testing.T) {
	s := New()

	tab := models.Tab("settings")
	_, err := s.UpdateSession(models.SessionPatch{ActiveTab: &tab})
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrorKindValidation, de.Kind)
	assert.Equal(t, "activeTab", de.Field)

	assert.Equal(t, models.TabDashboard, s.Session().ActiveTab)
}

func TestUpdateSessionModalLifecycle(t *testing.T) {
	s := New()

	editingID := 5
	state, err := s.UpdateSession(models.SessionPatch{
		Modal: &models.ModalState{Kind: "customer", EditingID: &editingID},
	})
	require.NoError(t, err)
	require.NotNil(t, state.Modal)
	assert.Equal(t, "customer", state.Modal.Kind)
	require.NotNil(t, state.Modal.EditingID)
	assert.Equal(t, 5, *state.Modal.EditingID)

	state, err = s.UpdateSession(models.SessionPatch{CloseModal: true})
	require.NoError(t, err)
	assert.Nil(t, state.Modal)
}

func TestSessionReturnsCopy(t *testing.T) {
	s := New()

	_, err := s.UpdateSession(models.SessionPatch{Filters: map[string]string{"stage": "提案"}})
	require.NoError(t, err)

	session := s.Session()
	session.Filters["stage"] = "成約"

	assert.Equal(t, "提案", s.Session().Filters["stage"])
}
