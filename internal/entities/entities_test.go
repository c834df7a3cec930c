package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionState(t *testing.T) {
	for _, state := range []SessionState{
		SessionStateOpen, SessionStateRunning, SessionStatePendingCancel, SessionStatePendingEnd, SessionStateClosed,
	} {
		parsed, err := ParseSessionState(string(state))
		require.NoError(t, err)
		assert.Equal(t, state, parsed)
	}

	_, err := ParseSessionState("paused")
	assert.Error(t, err)

	assert.True(t, SessionStatePendingCancel.IsPending())
	assert.True(t, SessionStatePendingEnd.IsPending())
	assert.False(t, SessionStateRunning.IsPending())
}

func TestConfirmationKindPendingState(t *testing.T) {
	assert.Equal(t, SessionStatePendingCancel, ConfirmationCancel.PendingState())
	assert.Equal(t, SessionStatePendingEnd, ConfirmationEnd.PendingState())
}

func TestGameSessionClone(t *testing.T) {
	started := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	game := &GameSession{ID: "g1", HostID: "host", State: SessionStateRunning, StartedAt: &started}

	clone := game.Clone()
	require.NotNil(t, clone.StartedAt)
	*clone.StartedAt = started.Add(time.Hour)
	clone.State = SessionStateClosed

	assert.Equal(t, started, *game.StartedAt)
	assert.True(t, game.IsLive())
	assert.False(t, clone.IsLive())
	assert.True(t, game.IsHost("host"))
	assert.Nil(t, (*GameSession)(nil).Clone())
}

func TestMessageHandleIsZero(t *testing.T) {
	assert.True(t, MessageHandle{}.IsZero())
	assert.True(t, MessageHandle{ChannelID: "chan"}.IsZero())
	assert.False(t, MessageHandle{ChannelID: "chan", MessageID: "msg"}.IsZero())
}

func TestRoster(t *testing.T) {
	roster := Roster{
		{UserID: "host", Role: RoleSpy},
		{UserID: "u2", Role: RoleInvestigator},
		{UserID: "u3", Role: RoleSpy},
	}

	assert.Equal(t, []string{"host", "u2", "u3"}, roster.UserIDs())
	assert.Equal(t, []string{"host", "u3"}, roster.WithRole(RoleSpy))
	assert.True(t, roster.Contains("u2"))
	assert.Nil(t, roster.Find("u4"))

	clone := roster.Clone()
	clone[0].Role = RoleMole
	assert.Equal(t, RoleSpy, roster[0].Role)
}

func TestRole(t *testing.T) {
	role, err := ParseRole("mole")
	require.NoError(t, err)
	assert.Equal(t, "Mole", role.DisplayName())

	_, err = ParseRole("traitor")
	assert.Error(t, err)
}

func TestAssignmentRoleCount(t *testing.T) {
	assignment := &Assignment{Roles: map[string]Role{
		"a": RoleSpy, "b": RoleSpy, "c": RoleMole, "d": RoleInvestigator,
	}}
	assert.Equal(t, 2, assignment.RoleCount(RoleSpy))
	assert.Equal(t, 1, assignment.RoleCount(RoleMole))
	assert.Equal(t, 0, assignment.RoleCount(RoleUnassigned))
}

func TestLocationSetClone(t *testing.T) {
	set := &LocationSet{SpyLocations: []string{"Bank", "Beach"}, SelectedLocation: "Bank"}
	clone := set.Clone()
	clone.SpyLocations[0] = "Casino"
	assert.Equal(t, "Bank", set.SpyLocations[0])
}
