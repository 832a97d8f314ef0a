package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamedock/gamedock/pkg/session"
)

func newManager(t *testing.T) *session.Manager {
	t.Helper()
	return session.NewManager(session.NewMemoryStore(), session.DefaultConfig())
}

func TestManager_Create(t *testing.T) {
	t.Parallel()

	t.Run("created session is retrievable with expected ttl", func(t *testing.T) {
		t.Parallel()
		mgr := newManager(t)

		before := time.Now()
		id, err := mgr.Create("alice", 30*time.Minute)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		s, ok := mgr.Get(id)
		require.True(t, ok)
		assert.Equal(t, "alice", s.Username)
		assert.Equal(t, id, s.ID)

		// ExpiresAt must land inside the ttl window, give or take the
		// time the calls themselves took.
		assert.WithinDuration(t, before.Add(30*time.Minute), s.ExpiresAt, 2*time.Second)
	})

	t.Run("ids never collide", func(t *testing.T) {
		t.Parallel()
		mgr := newManager(t)

		seen := make(map[string]bool, 10000)
		for range 10000 {
			id, err := mgr.Create("alice", time.Minute)
			require.NoError(t, err)
			require.False(t, seen[id], "duplicate session id generated")
			seen[id] = true
		}
	})
}

func TestManager_Get(t *testing.T) {
	t.Parallel()
	mgr := newManager(t)

	_, ok := mgr.Get("no-such-id")
	assert.False(t, ok)

	t.Run("does not evaluate expiry", func(t *testing.T) {
		id, err := mgr.Create("alice", -time.Minute)
		require.NoError(t, err)

		s, ok := mgr.Get(id)
		require.True(t, ok)
		assert.True(t, s.IsExpired())
	})
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	mgr := newManager(t)

	id, err := mgr.Create("alice", time.Minute)
	require.NoError(t, err)

	mgr.Delete(id)
	_, ok := mgr.Get(id)
	assert.False(t, ok)

	// Idempotent.
	mgr.Delete(id)
}
