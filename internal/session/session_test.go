package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.SaveSession(Session{
		Token:    "abc123",
		IsAdmin:  true,
		Username: "marcus",
	}))

	sess := store.Session()
	assert.Equal(t, "abc123", sess.Token)
	assert.True(t, sess.IsAdmin)
	assert.Equal(t, "marcus", sess.Username)
}

func TestClearRemovesSessionButKeepsTheme(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.SaveSession(Session{Token: "abc123", Username: "marcus"}))
	require.NoError(t, store.SetTheme("light"))
	require.NoError(t, store.Clear())

	sess := store.Session()
	assert.Empty(t, sess.Token)
	assert.Empty(t, sess.Username)
	assert.False(t, sess.IsAdmin)
	assert.Equal(t, "light", store.Theme())
}

func TestThemeDefaultsToDark(t *testing.T) {
	store := openStore(t)
	assert.Equal(t, "dark", store.Theme())
}

func TestStoreSubscribeSignalsChanges(t *testing.T) {
	store := openStore(t)
	ch := store.Subscribe()

	require.NoError(t, store.Set(KeyToken, "abc123"))

	select {
	case <-ch:
	default:
		t.Fatal("expected a signal after a store write")
	}
}

func TestGateDecisions(t *testing.T) {
	tests := []struct {
		name          string
		token         string
		isAdmin       string
		requiresAdmin bool
		want          Decision
	}{
		{"no token", "", "", false, RedirectLogin},
		{"literal null token", "null", "true", true, RedirectLogin},
		{"literal undefined token", "undefined", "true", false, RedirectLogin},
		{"non-admin on admin route", "abc123", "false", true, RedirectDashboard},
		{"admin on admin route", "abc123", "true", true, Render},
		{"user on plain route", "abc123", "false", false, Render},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(t)
			if tt.token != "" {
				require.NoError(t, store.Set(KeyToken, tt.token))
			}
			if tt.isAdmin != "" {
				require.NoError(t, store.Set(KeyIsAdmin, tt.isAdmin))
			}

			gate := NewGate(store)
			assert.Equal(t, tt.want, gate.Check(tt.requiresAdmin))
		})
	}
}

func TestGateRecomputesPerCheck(t *testing.T) {
	store := openStore(t)
	gate := NewGate(store)

	require.NoError(t, store.SaveSession(Session{Token: "abc123", IsAdmin: false}))
	assert.Equal(t, Render, gate.Check(false))

	// Logout in another tab: the very next check observes it.
	require.NoError(t, store.Clear())
	assert.Equal(t, RedirectLogin, gate.Check(false))
}
