// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. A taken username yields domainerrors.ErrUsernameTaken.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the profile fields and capability flags of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
