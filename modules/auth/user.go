package auth

import "context"

// User is the stored credential record. PasswordHash is a bcrypt hash;
// the plain password exists only transiently during login/registration.
type User struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"password" json:"-"`
}

// UserStorage is the external user-data collaborator.
type UserStorage interface {
	// FindUserByUsername returns the user or ErrUserNotFound. Any
	// other error means the store itself failed.
	FindUserByUsername(ctx context.Context, username string) (*User, error)

	// CreateUser persists a new credential record.
	CreateUser(ctx context.Context, user *User) error
}
