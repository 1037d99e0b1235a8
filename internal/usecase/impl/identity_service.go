// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"
	"eventhub/internal/util"

	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
	now              func() time.Time
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account, its vendor profile when requested, and a first session.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, domainerrors.Validation("Username, email, and password are required.")
	}
	if !validEmail(email) {
		return nil, domainerrors.Validation("Invalid email address.")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		IsVendor:     input.IsVendor,
		IsPlanner:    input.IsPlanner,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		if user.IsVendor {
			if _, err := repoFactory.NewVendorRepository().GetOrCreate(ctx, user.ID, user.Username); err != nil {
				return errors.Wrap(err, "failed to create vendor profile during registration")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Uint64("userID", uint64(user.ID)))

	return srv.issueSession(ctx, user)
}

// Login verifies credentials and issues a new token pair.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.Validation("Username and password are required.")
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return srv.issueSession(ctx, user)
}

// issueSession generates a token pair and stores the refresh token hash.
func (srv *identityService) issueSession(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Capabilities().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: util.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken rotates the presented refresh token in one transaction.
func (srv *identityService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()
		tokenHash := util.HashToken(refreshToken)

		stored, err := refreshRepo.FindByHash(ctx, tokenHash)
		if err != nil {
			if errors.IsAny(err, repository.ErrRefreshTokenNotFound, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token owner mismatch")
		}

		user, err := repoFactory.NewUserRepository().FindByID(ctx, stored.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token user no longer exists")
			}

			return errors.Wrap(err, "failed to load user for refresh")
		}

		if err := refreshRepo.DeleteByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(domainerrors.ErrTokenInvalid, "refresh token already used")
			}

			return errors.Wrap(err, "failed to revoke refresh token")
		}

		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Capabilities().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := refreshRepo.Create(ctx, &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: util.HashToken(newRefreshToken),
			ExpiresAt: srv.now().Add(srv.tokenService.RefreshTokenDuration()),
		}); err != nil {
			return errors.Wrap(err, "failed to store refresh token")
		}

		output = &usecase.AuthOutput{AccessToken: accessToken, RefreshToken: newRefreshToken, User: user}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Logout revokes the presented refresh token. Unknown tokens are ignored.
func (srv *identityService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return domainerrors.Validation("refresh_token is required.")
	}

	err := srv.refreshTokenRepo.DeleteByHash(ctx, util.HashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// ResolvePrincipal validates the token and reloads the user so capability
// changes apply to the next request.
func (srv *identityService) ResolvePrincipal(ctx context.Context, accessToken string) (*entity.Principal, error) {
	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load principal")
	}

	return entity.NewPrincipal(user), nil
}

// GetProfile returns the caller's account.
func (srv *identityService) GetProfile(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrUserNotFound, "User not found.")
	}

	return user, nil
}

// UpdateProfile applies a partial update to the caller's account.
func (srv *identityService) UpdateProfile(ctx context.Context, principal *entity.Principal, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	// The account email is required; it can be changed but not cleared.
	if input.Email != nil && !validEmail(strings.TrimSpace(*input.Email)) {
		return nil, domainerrors.Validation("Invalid email address.")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, principal.UserID)
		if err != nil {
			return notFoundOr(err, repository.ErrUserNotFound, "User not found.")
		}

		applyProfileUpdate(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}

		if user.IsVendor {
			if _, err := repoFactory.NewVendorRepository().GetOrCreate(ctx, user.ID, user.Username); err != nil {
				return errors.Wrap(err, "failed to ensure vendor profile")
			}
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Profile updated", slog.Uint64("userID", uint64(updated.ID)))

	return updated, nil
}

func applyProfileUpdate(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		user.Email = strings.TrimSpace(*input.Email)
	}
	if input.IsVendor != nil {
		user.IsVendor = *input.IsVendor
	}
	if input.IsPlanner != nil {
		user.IsPlanner = *input.IsPlanner
	}
}
