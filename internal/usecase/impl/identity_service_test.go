package impl

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"
	"eventhub/internal/util"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service          *identityService
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	vendorRepo       *mockRepo.MockVendorRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	now              time.Time
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	fx := identityServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		repoFactory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		vendorRepo:       mockRepo.NewMockVendorRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		now:              time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	svc := NewIdentityService(IdentityServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Logger:           newDiscardLogger(),
	}).(*identityService)
	svc.now = func() time.Time { return fx.now }
	fx.service = svc

	return fx
}

func (fx identityServiceFixtures) expectSession(userID uint, caps []string, access, refresh string) {
	fx.tokenService.EXPECT().GenerateTokens(userID, caps).Return(access, refresh, nil).Once()
	fx.tokenService.EXPECT().RefreshTokenDuration().Return(time.Hour).Once()
	fx.refreshTokenRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID &&
				token.TokenHash == util.HashToken(refresh) &&
				token.ExpiresAt.Equal(fx.now.Add(time.Hour))
		})).
		Return(nil).Once()
}

func TestIdentityService_Register_VendorGetsProfile(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewVendorRepository().Return(fx.vendorRepo)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = 7
		}).
		Return(nil)
	fx.vendorRepo.EXPECT().
		GetOrCreate(ctx, uint(7), "alice").
		Return(&entity.VendorProfile{ID: 3, UserID: 7, BusinessName: "alice"}, nil)
	fx.expectSession(7, []string{"vendor"}, "access", "refresh")

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: " alice ",
		Password: "secret",
		Email:    "alice@example.com",
		IsVendor: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.True(t, out.User.IsVendor)
}

func TestIdentityService_Register_Validation(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "x", Email: "not-an-email"})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid email address.", appErr.Message())
}

func TestIdentityService_Register_UsernameTaken(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(domainerrors.ErrUsernameTaken)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Password: "secret", Email: "bob@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestIdentityService_Login(t *testing.T) {
	user := &entity.User{ID: 2, Username: "carol", PasswordHash: "hashed", IsPlanner: true}

	t.Run("success", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "carol").Return(user, nil)
		fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
		fx.expectSession(2, []string{"planner"}, "a", "r")

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "carol", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "a", out.AccessToken)
		assert.Same(t, user, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "carol").Return(user, nil)
		fx.hasher.EXPECT().Check("bad", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "carol", Password: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestIdentityService(t)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "carol"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestIdentityService_RefreshToken_Rotates(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	user := &entity.User{ID: 4, Username: "dave", IsPlanner: true}

	fx.tokenService.EXPECT().ValidateRefreshToken("old").Return(&service.Claims{UserID: 4}, nil)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, util.HashToken("old")).
		Return(&entity.RefreshToken{ID: 1, UserID: 4, TokenHash: util.HashToken("old")}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, uint(4)).Return(user, nil)
	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, util.HashToken("old")).Return(nil)
	fx.expectSession(4, []string{"planner"}, "new-access", "new-refresh")

	out, err := fx.service.RefreshToken(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestIdentityService_RefreshToken_OwnerMismatch(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("tok").Return(&service.Claims{UserID: 4}, nil)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, util.HashToken("tok")).
		Return(&entity.RefreshToken{ID: 1, UserID: 5}, nil)

	_, err := fx.service.RefreshToken(ctx, "tok")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestIdentityService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("tok").Return(&service.Claims{UserID: 4}, nil)
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
	fx.refreshTokenRepo.EXPECT().
		FindByHash(ctx, util.HashToken("tok")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshToken(ctx, "tok")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestIdentityService_Logout(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().DeleteByHash(ctx, util.HashToken("gone")).Return(repository.ErrRefreshTokenNotFound)
	assert.NoError(t, fx.service.Logout(ctx, "gone"))

	assert.ErrorIs(t, fx.service.Logout(ctx, ""), domainerrors.ErrValidationFailed)
}

func TestIdentityService_ResolvePrincipal(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateAccessToken("token").Return(&service.Claims{UserID: 9, Capabilities: []string{"planner"}}, nil)
	// Capabilities come from the stored user, not the token.
	fx.userRepo.EXPECT().FindByID(ctx, uint(9)).Return(&entity.User{ID: 9, Username: "erin", IsVendor: true}, nil)

	principal, err := fx.service.ResolvePrincipal(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, uint(9), principal.UserID)
	assert.True(t, principal.Can(entity.CapabilityVendor))
	assert.False(t, principal.Can(entity.CapabilityPlanner))
}

func TestIdentityService_ResolvePrincipal_InvalidToken(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.tokenService.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("signature is invalid"))

	_, err := fx.service.ResolvePrincipal(context.Background(), "bad")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestIdentityService_UpdateProfile_BecomesVendor(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	user := &entity.User{ID: 3, Username: "frank", Email: "old@example.com"}

	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewVendorRepository().Return(fx.vendorRepo)
	fx.userRepo.EXPECT().FindByID(ctx, uint(3)).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.IsVendor && u.FirstName == "Frank" && u.Email == "old@example.com"
		})).
		Return(nil)
	fx.vendorRepo.EXPECT().GetOrCreate(ctx, uint(3), "frank").Return(&entity.VendorProfile{ID: 1}, nil)

	updated, err := fx.service.UpdateProfile(ctx, plainPrincipal(3), &usecase.UpdateProfileInput{
		FirstName: ptr("Frank"),
		IsVendor:  ptr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsVendor)
	assert.Equal(t, "Frank", updated.FirstName)
}

func TestIdentityService_UpdateProfile_EmailIsRequired(t *testing.T) {
	for _, email := range []string{"", "   ", "frank@"} {
		t.Run(email, func(t *testing.T) {
			fx := createTestIdentityService(t)

			_, err := fx.service.UpdateProfile(context.Background(), plainPrincipal(3), &usecase.UpdateProfileInput{Email: ptr(email)})
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "Invalid email address.", appErr.Message())
		})
	}
}

func TestIdentityService_GetProfile_RequiresPrincipal(t *testing.T) {
	fx := createTestIdentityService(t)

	_, err := fx.service.GetProfile(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
