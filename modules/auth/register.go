package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamedock/gamedock/pkg/validator"
)

// Registrar creates new credential records.
type Registrar struct {
	storage  UserStorage
	strength validator.PasswordStrengthConfig
}

// NewRegistrar creates a registrar enforcing the default password
// strength policy (min length, mixed case, numeric content).
func NewRegistrar(storage UserStorage) *Registrar {
	return &Registrar{
		storage:  storage,
		strength: validator.DefaultPasswordStrength(),
	}
}

// Register validates the password, rejects duplicate usernames and
// stores the new user with a bcrypt-hashed password. The plain
// password is never persisted.
func (r *Registrar) Register(ctx context.Context, username, password string) (*User, error) {
	if err := validator.Apply(
		validator.RequiredString("username", username),
		validator.StrongPassword("password", password, r.strength),
	); err != nil {
		return nil, errors.Join(ErrWeakPassword, err)
	}

	_, err := r.storage.FindUserByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("uniqueness check: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := r.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
