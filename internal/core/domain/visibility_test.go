package domain_test

import (
	"testing"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterUser(t *testing.T, userID string) domain.User {
	t.Helper()
	for _, u := range domain.TeamRoster() {
		if u.UserID == userID {
			return u
		}
	}
	t.Fatalf("user %q not on roster", userID)
	return domain.User{}
}

func TestVisibleWorkLogs_AdminSeesAll(t *testing.T) {
	admin := rosterUser(t, "me")
	logs := []domain.WorkLogEntry{
		{EntryID: "e1", TeamMemberID: "vishakha"},
		{EntryID: "e2", TeamMemberID: "devanshi"},
		{EntryID: "e3", TeamMemberID: "ayushi"},
	}

	visible := domain.VisibleWorkLogs(logs, admin)

	assert.Len(t, visible, 3)
	assert.Equal(t, logs, visible)
}

func TestVisibleWorkLogs_MemberSeesOnlyOwn(t *testing.T) {
	vishakha := rosterUser(t, "vishakha")
	logs := []domain.WorkLogEntry{
		{EntryID: "e1", TeamMemberID: "vishakha"},
		{EntryID: "e2", TeamMemberID: "devanshi"},
		{EntryID: "e3", TeamMemberID: "vishakha"},
	}

	visible := domain.VisibleWorkLogs(logs, vishakha)

	require.Len(t, visible, 2)
	// Order preserved from the store.
	assert.Equal(t, "e1", visible[0].EntryID)
	assert.Equal(t, "e3", visible[1].EntryID)

	// Another member's filter is fully disjoint.
	devanshi := rosterUser(t, "devanshi")
	other := domain.VisibleWorkLogs(logs, devanshi)
	require.Len(t, other, 1)
	assert.Equal(t, "e2", other[0].EntryID)
}

func TestVisibleWorkLogs_MemberWithNoEntries(t *testing.T) {
	akash := rosterUser(t, "akash")
	logs := []domain.WorkLogEntry{
		{EntryID: "e1", TeamMemberID: "vishakha"},
	}

	visible := domain.VisibleWorkLogs(logs, akash)

	assert.NotNil(t, visible)
	assert.Empty(t, visible)
}

func TestVisibleDirectives_MemberSeesOnlyTargeted(t *testing.T) {
	ayushi := rosterUser(t, "ayushi")
	directives := []domain.Directive{
		{DirectiveID: "d1", TargetUserID: "ayushi"},
		{DirectiveID: "d2", TargetUserID: "dishant"},
	}

	visible := domain.VisibleDirectives(directives, ayushi)

	require.Len(t, visible, 1)
	assert.Equal(t, "d1", visible[0].DirectiveID)

	admin := rosterUser(t, "me")
	assert.Len(t, domain.VisibleDirectives(directives, admin), 2)
}

func TestVisibleChatMessages_Unfiltered(t *testing.T) {
	messages := []domain.ChatMessage{
		{MessageID: "m1", UserID: "me"},
		{MessageID: "m2", UserID: "vishakha"},
	}

	for _, u := range domain.TeamRoster() {
		assert.Equal(t, messages, domain.VisibleChatMessages(messages, u))
	}
}

func TestTeamRoster_SingleAdmin(t *testing.T) {
	admins := 0
	for _, u := range domain.TeamRoster() {
		if u.IsAdmin() {
			admins++
			assert.Equal(t, "me", u.UserID)
		}
	}
	assert.Equal(t, 1, admins)
}
