package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type guestServiceFixtures struct {
	service   usecase.GuestUsecase
	eventRepo *mockRepo.MockEventRepository
	guestRepo *mockRepo.MockGuestRepository
	userRepo  *mockRepo.MockUserRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestGuestService(t *testing.T) guestServiceFixtures {
	fx := guestServiceFixtures{
		eventRepo: mockRepo.NewMockEventRepository(t),
		guestRepo: mockRepo.NewMockGuestRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		qrService: mockSvc.NewMockQRCodeService(t),
	}

	fx.service = NewGuestService(GuestServiceParams{
		EventRepo: fx.eventRepo,
		GuestRepo: fx.guestRepo,
		UserRepo:  fx.userRepo,
		QRService: fx.qrService,
		Logger:    newDiscardLogger(),
	})

	return fx
}

var guestTestEvent = &entity.Event{ID: 10, PlannerID: 1, Title: "Gala"}

func TestGuestService_Add_Manual(t *testing.T) {
	fx := createTestGuestService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)
	fx.guestRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(g *entity.Guest) bool {
			return *g.Name == "Ada" && g.Email == "ada@example.com" && g.RSVPStatus == entity.RSVPInvited && g.UserID == nil
		})).
		Return(nil)

	guest, err := fx.service.Add(ctx, plannerPrincipal(1), 10, &usecase.AddGuestInput{
		Name:  ptr("Ada"),
		Email: ptr("ada@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Gala", guest.EventTitle)
}

func TestGuestService_Add_LinkedUserOverridesNameAndEmail(t *testing.T) {
	fx := createTestGuestService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)
	fx.userRepo.EXPECT().FindByID(ctx, uint(4)).Return(&entity.User{ID: 4, Username: "grace", Email: "grace@example.com"}, nil)
	fx.guestRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Guest")).Return(nil)

	guest, err := fx.service.Add(ctx, plannerPrincipal(1), 10, &usecase.AddGuestInput{
		UserID:     ptr(uint(4)),
		Name:       ptr("ignored"),
		RSVPStatus: ptr("attending"),
	})
	require.NoError(t, err)
	assert.Equal(t, "grace", *guest.Name)
	assert.Equal(t, "grace@example.com", guest.Email)
	assert.Equal(t, entity.RSVPAttending, guest.RSVPStatus)
	assert.True(t, guest.IsLinked())
}

func TestGuestService_Add_Rejections(t *testing.T) {
	t.Run("not the planner", func(t *testing.T) {
		fx := createTestGuestService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)

		_, err := fx.service.Add(ctx, plannerPrincipal(2), 10, &usecase.AddGuestInput{Name: ptr("a"), Email: ptr("a@b.co")})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("missing email", func(t *testing.T) {
		fx := createTestGuestService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)

		_, err := fx.service.Add(ctx, plannerPrincipal(1), 10, &usecase.AddGuestInput{Name: ptr("a")})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("invalid rsvp", func(t *testing.T) {
		fx := createTestGuestService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)

		_, err := fx.service.Add(ctx, plannerPrincipal(1), 10, &usecase.AddGuestInput{
			Name: ptr("a"), Email: ptr("a@b.co"), RSVPStatus: ptr("perhaps"),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("linked user without email", func(t *testing.T) {
		fx := createTestGuestService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)
		fx.userRepo.EXPECT().FindByID(ctx, uint(4)).Return(&entity.User{ID: 4, Username: "grace"}, nil)

		_, err := fx.service.Add(ctx, plannerPrincipal(1), 10, &usecase.AddGuestInput{UserID: ptr(uint(4))})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown event", func(t *testing.T) {
		fx := createTestGuestService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(nil, repository.ErrEventNotFound)

		_, err := fx.service.Add(ctx, plannerPrincipal(1), 10, &usecase.AddGuestInput{})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestGuestService_Update_LinkedGuestKeepsIdentity(t *testing.T) {
	fx := createTestGuestService(t)
	ctx := context.Background()
	userID := uint(4)
	name := "grace"

	fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)
	fx.guestRepo.EXPECT().FindByID(ctx, uint(10), uint(7)).Return(&entity.Guest{
		ID: 7, EventID: 10, UserID: &userID, Name: &name, Email: "grace@example.com", RSVPStatus: entity.RSVPInvited,
	}, nil)
	fx.guestRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(g *entity.Guest) bool {
			return *g.Name == "grace" && g.Email == "grace@example.com" && g.RSVPStatus == entity.RSVPDeclined
		})).
		Return(nil)

	guest, err := fx.service.Update(ctx, plannerPrincipal(2), 10, 7, &usecase.UpdateGuestInput{
		Name:       ptr("Someone Else"),
		Email:      ptr("else@example.com"),
		RSVPStatus: ptr("declined"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RSVPDeclined, guest.RSVPStatus)
}

func TestGuestService_Update_UnlinkedGuestKeepsRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.UpdateGuestInput
		message string
	}{
		{name: "blank name", input: &usecase.UpdateGuestInput{Name: ptr("  ")}, message: "Name is required."},
		{name: "blank email", input: &usecase.UpdateGuestInput{Email: ptr("")}, message: "Invalid email address."},
		{name: "malformed email", input: &usecase.UpdateGuestInput{Email: ptr("ada@")}, message: "Invalid email address."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGuestService(t)
			ctx := context.Background()
			name := "Ada"

			fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)
			fx.guestRepo.EXPECT().FindByID(ctx, uint(10), uint(7)).Return(&entity.Guest{
				ID: 7, EventID: 10, Name: &name, Email: "ada@example.com", RSVPStatus: entity.RSVPInvited,
			}, nil)

			_, err := fx.service.Update(ctx, plannerPrincipal(1), 10, 7, tt.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestGuestService_Update_RequiresPlanner(t *testing.T) {
	fx := createTestGuestService(t)

	_, err := fx.service.Update(context.Background(), vendorPrincipal(2), 10, 7, &usecase.UpdateGuestInput{})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestGuestService_Delete(t *testing.T) {
	fx := createTestGuestService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)
	fx.guestRepo.EXPECT().Delete(ctx, uint(10), uint(7)).Return(repository.ErrGuestNotFound)

	err := fx.service.Delete(ctx, plannerPrincipal(2), 10, 7)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestGuestService_InvitationQR(t *testing.T) {
	t.Run("planner gets png", func(t *testing.T) {
		fx := createTestGuestService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)
		fx.guestRepo.EXPECT().FindByID(ctx, uint(10), uint(7)).Return(&entity.Guest{ID: 7, EventID: 10}, nil)
		fx.qrService.EXPECT().GenerateInvitationQR(uint(10), uint(7)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.InvitationQR(ctx, plannerPrincipal(1), 10, 7)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("other user", func(t *testing.T) {
		fx := createTestGuestService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(10)).Return(guestTestEvent, nil)

		_, err := fx.service.InvitationQR(ctx, plainPrincipal(3), 10, 7)
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})
}
