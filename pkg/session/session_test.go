package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gamedock/gamedock/pkg/session"
)

func TestNewSession(t *testing.T) {
	t.Parallel()

	before := time.Now()
	s := session.NewSession("tok", "alice", 30*time.Minute)
	after := time.Now()

	assert.Equal(t, "tok", s.ID)
	assert.Equal(t, "alice", s.Username)
	assert.False(t, s.ExpiresAt.Before(before.Add(30*time.Minute)))
	assert.False(t, s.ExpiresAt.After(after.Add(30*time.Minute)))
	assert.False(t, s.CreatedAt.Before(before))
}

func TestSession_IsExpired(t *testing.T) {
	t.Parallel()

	t.Run("fresh session is not expired", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession("tok", "alice", time.Hour)
		assert.False(t, s.IsExpired())
	})

	t.Run("negative ttl is already expired", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession("tok", "alice", -time.Minute)
		assert.True(t, s.IsExpired())
	})

	t.Run("boundary counts as expired", func(t *testing.T) {
		t.Parallel()
		s := session.NewSession("tok", "alice", 0)
		assert.True(t, s.IsExpired())
	})
}
