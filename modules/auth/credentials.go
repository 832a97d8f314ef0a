package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the stored hashes were produced with;
// high enough to make offline brute force deliberately slow.
const bcryptCost = 10

// Result is the outcome of a credential check. Match is false both for
// unknown users and wrong passwords; the two cases are intentionally
// indistinguishable.
type Result struct {
	Match  bool
	UserID string
}

// Verifier checks submitted credentials against stored bcrypt hashes.
type Verifier struct {
	storage   UserStorage
	dummyHash []byte
}

// NewVerifier creates a credential verifier over the given storage.
func NewVerifier(storage UserStorage) *Verifier {
	// Compared against when the user lookup misses, so a miss costs
	// the same as a hit and timing does not leak account existence.
	dummy, err := bcrypt.GenerateFromPassword([]byte("gamedock.dummy.password"), bcryptCost)
	if err != nil {
		panic(fmt.Sprintf("auth: failed to generate dummy hash: %v", err))
	}
	return &Verifier{storage: storage, dummyHash: dummy}
}

// CheckCredentials compares the submitted password against the stored
// hash for username. A missing user, a wrong password and a malformed
// stored hash all yield a negative Result with a nil error; only a
// storage failure is reported as an error.
func (v *Verifier) CheckCredentials(ctx context.Context, username, password string) (Result, error) {
	user, err := v.storage.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Burn the same bcrypt work as the success path.
			_ = bcrypt.CompareHashAndPassword(v.dummyHash, []byte(password))
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("credential lookup: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		// Covers both mismatches and corrupt stored hashes; neither
		// should crash request handling.
		return Result{}, nil
	}

	return Result{Match: true, UserID: user.ID}, nil
}
