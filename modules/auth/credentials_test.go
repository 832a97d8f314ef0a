package auth_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamedock/gamedock/modules/auth"
)

// memoryStorage is an in-memory UserStorage fake for tests.
type memoryStorage struct {
	mu    sync.Mutex
	users map[string]*auth.User
	err   error // when set, every call fails with it
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{users: make(map[string]*auth.User)}
}

func (m *memoryStorage) FindUserByUsername(_ context.Context, username string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[username]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryStorage) CreateUser(_ context.Context, user *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.Username]; ok {
		return auth.ErrUsernameTaken
	}
	cp := *user
	m.users[user.Username] = &cp
	return nil
}

func mustAddUser(t *testing.T, storage *memoryStorage, username, password string) *auth.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &auth.User{ID: "user-" + username, Username: username, PasswordHash: string(hash)}
	require.NoError(t, storage.CreateUser(context.Background(), u))
	return u
}

func TestVerifier_CheckCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("matching credentials", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()
		u := mustAddUser(t, storage, "alice", "Str0ng!pass")

		result, err := auth.NewVerifier(storage).CheckCredentials(ctx, "alice", "Str0ng!pass")
		require.NoError(t, err)
		assert.True(t, result.Match)
		assert.Equal(t, u.ID, result.UserID)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()
		mustAddUser(t, storage, "alice", "Str0ng!pass")
		verifier := auth.NewVerifier(storage)

		missing, err := verifier.CheckCredentials(ctx, "nobody", "whatever")
		require.NoError(t, err)

		wrong, err := verifier.CheckCredentials(ctx, "alice", "wrong")
		require.NoError(t, err)

		assert.Equal(t, missing, wrong)
		assert.False(t, missing.Match)
		assert.Empty(t, missing.UserID)
	})

	t.Run("corrupt stored hash is a mismatch, not a failure", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()
		require.NoError(t, storage.CreateUser(ctx, &auth.User{
			ID: "u1", Username: "broken", PasswordHash: "not-a-bcrypt-hash",
		}))

		result, err := auth.NewVerifier(storage).CheckCredentials(ctx, "broken", "anything")
		require.NoError(t, err)
		assert.False(t, result.Match)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()
		storage.err = errors.New("connection refused")

		_, err := auth.NewVerifier(storage).CheckCredentials(ctx, "alice", "pass")
		assert.Error(t, err)
	})
}
