package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamedock/gamedock/modules/auth"
)

func TestRegistrar_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores user with hashed password", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()

		user, err := auth.NewRegistrar(storage).Register(ctx, "bob", "Str0ng!pass")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "bob", user.Username)
		assert.NotEqual(t, "Str0ng!pass", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng!pass")))

		stored, err := storage.FindUserByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, user.ID, stored.ID)
	})

	t.Run("rejects weak passwords without storing", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()

		for _, password := range []string{"weak", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere", ""} {
			_, err := auth.NewRegistrar(storage).Register(ctx, "bob", password)
			assert.ErrorIs(t, err, auth.ErrWeakPassword, password)
		}

		_, err := storage.FindUserByUsername(ctx, "bob")
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})

	t.Run("rejects missing username", func(t *testing.T) {
		t.Parallel()
		_, err := auth.NewRegistrar(newMemoryStorage()).Register(ctx, "  ", "Str0ng!pass")
		assert.ErrorIs(t, err, auth.ErrWeakPassword)
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()
		registrar := auth.NewRegistrar(storage)

		_, err := registrar.Register(ctx, "bob", "Str0ng!pass")
		require.NoError(t, err)

		_, err = registrar.Register(ctx, "bob", "An0therPass")
		assert.ErrorIs(t, err, auth.ErrUsernameTaken)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		t.Parallel()
		storage := newMemoryStorage()
		storage.err = errors.New("connection refused")

		_, err := auth.NewRegistrar(storage).Register(ctx, "bob", "Str0ng!pass")
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrWeakPassword)
		assert.NotErrorIs(t, err, auth.ErrUsernameTaken)
	})
}
