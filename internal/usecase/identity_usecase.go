// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"eventhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	IsVendor  bool
	IsPlanner bool
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateProfileInput carries a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	IsVendor  *bool
	IsPlanner *bool
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful login or refresh.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// IdentityUsecase defines account, session and principal operations.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// RefreshToken rotates a refresh token: the presented token is revoked and a new pair issued.
	RefreshToken(ctx context.Context, refreshToken string) (*AuthOutput, error)
	Logout(ctx context.Context, refreshToken string) error

	// ResolvePrincipal validates an access token and loads the caller's current capabilities.
	ResolvePrincipal(ctx context.Context, accessToken string) (*entity.Principal, error)

	GetProfile(ctx context.Context, principal *entity.Principal) (*entity.User, error)

	// UpdateProfile applies input to the caller's account. Gaining the vendor
	// capability get-or-creates the vendor profile in the same transaction.
	UpdateProfile(ctx context.Context, principal *entity.Principal, input *UpdateProfileInput) (*entity.User, error)
}
