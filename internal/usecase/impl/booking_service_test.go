package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixtures struct {
	service     usecase.BookingUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	eventRepo   *mockRepo.MockEventRepository
	vendorRepo  *mockRepo.MockVendorRepository
	serviceRepo *mockRepo.MockServiceRepository
	bookingRepo *mockRepo.MockBookingRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	fx := bookingServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		eventRepo:   mockRepo.NewMockEventRepository(t),
		vendorRepo:  mockRepo.NewMockVendorRepository(t),
		serviceRepo: mockRepo.NewMockServiceRepository(t),
		bookingRepo: mockRepo.NewMockBookingRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewBookingService(BookingServiceParams{
		TxManager:   fx.txManager,
		EventRepo:   fx.eventRepo,
		VendorRepo:  fx.vendorRepo,
		ServiceRepo: fx.serviceRepo,
		BookingRepo: fx.bookingRepo,
		Publisher:   fx.publisher,
		Logger:      newDiscardLogger(),
	})

	return fx
}

// expectTxRepos routes the transaction's repositories to the fixture mocks.
func (fx bookingServiceFixtures) expectTxRepos() {
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewEventRepository().Return(fx.eventRepo).Maybe()
	fx.repoFactory.EXPECT().NewVendorRepository().Return(fx.vendorRepo).Maybe()
	fx.repoFactory.EXPECT().NewServiceRepository().Return(fx.serviceRepo).Maybe()
	fx.repoFactory.EXPECT().NewBookingRepository().Return(fx.bookingRepo).Maybe()
}

func (fx bookingServiceFixtures) expectVendorService(vendorID, serviceID uint) {
	fx.vendorRepo.EXPECT().FindByID(mock.Anything, vendorID).Return(&entity.VendorProfile{ID: vendorID, UserID: 50}, nil)
	fx.serviceRepo.EXPECT().FindByID(mock.Anything, vendorID, serviceID).Return(&entity.Service{ID: serviceID, VendorID: vendorID}, nil)
}

func TestBookingService_Create_WithNewEvent(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	fx.expectTxRepos()
	fx.eventRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *entity.Event) bool {
			return e.PlannerID == 1 && e.Title == "Wedding" && e.Location == entity.DefaultEventLocation
		})).
		Run(func(_ context.Context, e *entity.Event) { e.ID = 20 }).
		Return(nil)
	fx.expectVendorService(2, 3)
	fx.bookingRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Booking) bool {
			return b.EventID == 20 && b.Status == entity.BookingPending && b.Notes == nil
		})).
		Run(func(_ context.Context, b *entity.Booking) { b.ID = 30 }).
		Return(nil)
	fx.bookingRepo.EXPECT().
		FindByID(ctx, uint(30)).
		Return(&entity.Booking{ID: 30, EventID: 20, VendorID: 2, ServiceID: 3, Status: entity.BookingPending}, nil)
	fx.publisher.EXPECT().
		PublishBookingEvent(ctx, mock.MatchedBy(func(e *service.BookingEvent) bool {
			return e.Type == service.BookingEventCreated && e.BookingID == 30 && e.RequestID == "req-1" && e.ActorID == 1
		})).
		Return(nil)

	booking, err := fx.service.Create(ctx, plannerPrincipal(1), &usecase.CreateBookingInput{
		EventName: "Wedding",
		EventDate: &date,
		VendorID:  2,
		ServiceID: 3,
		Notes:     ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(30), booking.ID)
}

func TestBookingService_Create_NewEventNeedsPlanner(t *testing.T) {
	fx := createTestBookingService(t)
	date := time.Now()

	fx.expectTxRepos()

	_, err := fx.service.Create(context.Background(), vendorPrincipal(1), &usecase.CreateBookingInput{
		EventName: "Wedding", EventDate: &date, VendorID: 2, ServiceID: 3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestBookingService_Create_ExistingEventOtherPlanner(t *testing.T) {
	fx := createTestBookingService(t)

	fx.expectTxRepos()
	fx.eventRepo.EXPECT().FindByID(mock.Anything, uint(20)).Return(&entity.Event{ID: 20, PlannerID: 9}, nil)

	_, err := fx.service.Create(context.Background(), plannerPrincipal(1), &usecase.CreateBookingInput{
		EventID: ptr(uint(20)), VendorID: 2, ServiceID: 3,
	})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Only the event planner can create bookings for this event.", appErr.Message())
}

func TestBookingService_Create_Validation(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	_, err := fx.service.Create(ctx, plannerPrincipal(1), &usecase.CreateBookingInput{VendorID: 2})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.expectTxRepos()
	_, err = fx.service.Create(ctx, plannerPrincipal(1), &usecase.CreateBookingInput{VendorID: 2, ServiceID: 3, EventName: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookingService_Create_ServiceOfAnotherVendor(t *testing.T) {
	fx := createTestBookingService(t)

	fx.expectTxRepos()
	fx.eventRepo.EXPECT().FindByID(mock.Anything, uint(20)).Return(&entity.Event{ID: 20, PlannerID: 1}, nil)
	fx.vendorRepo.EXPECT().FindByID(mock.Anything, uint(2)).Return(&entity.VendorProfile{ID: 2}, nil)
	fx.serviceRepo.EXPECT().FindByID(mock.Anything, uint(2), uint(3)).Return(nil, repository.ErrServiceNotFound)

	_, err := fx.service.Create(context.Background(), plannerPrincipal(1), &usecase.CreateBookingInput{
		EventID: ptr(uint(20)), VendorID: 2, ServiceID: 3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBookingService_Create_Duplicate(t *testing.T) {
	fx := createTestBookingService(t)

	fx.expectTxRepos()
	fx.eventRepo.EXPECT().FindByID(mock.Anything, uint(20)).Return(&entity.Event{ID: 20, PlannerID: 1}, nil)
	fx.expectVendorService(2, 3)
	fx.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrDuplicateBooking)

	_, err := fx.service.Create(context.Background(), plannerPrincipal(1), &usecase.CreateBookingInput{
		EventID: ptr(uint(20)), VendorID: 2, ServiceID: 3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateBooking)
}

func TestBookingService_CreateForEvent(t *testing.T) {
	t.Run("custom status", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(20)).Return(&entity.Event{ID: 20, PlannerID: 1}, nil)
		fx.expectVendorService(2, 3)
		fx.bookingRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(b *entity.Booking) bool { return b.Status == entity.BookingConfirmed })).
			Run(func(_ context.Context, b *entity.Booking) { b.ID = 31 }).
			Return(nil)
		fx.bookingRepo.EXPECT().FindByID(ctx, uint(31)).Return(&entity.Booking{ID: 31, Status: entity.BookingConfirmed}, nil)
		fx.publisher.EXPECT().PublishBookingEvent(ctx, mock.Anything).Return(nil)

		booking, err := fx.service.CreateForEvent(ctx, plannerPrincipal(1), 20, &usecase.CreateEventBookingInput{
			VendorID: 2, ServiceID: 3, Status: ptr("confirmed"),
		})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingConfirmed, booking.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(20)).Return(&entity.Event{ID: 20, PlannerID: 1}, nil)

		_, err := fx.service.CreateForEvent(ctx, plannerPrincipal(1), 20, &usecase.CreateEventBookingInput{
			VendorID: 2, ServiceID: 3, Status: ptr("maybe"),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("not the planner", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(20)).Return(&entity.Event{ID: 20, PlannerID: 9}, nil)

		_, err := fx.service.CreateForEvent(ctx, plannerPrincipal(1), 20, &usecase.CreateEventBookingInput{VendorID: 2, ServiceID: 3})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})
}

func bookingFixture() *entity.Booking {
	return &entity.Booking{
		ID:        30,
		EventID:   20,
		VendorID:  2,
		ServiceID: 3,
		Event:     &entity.Event{ID: 20, PlannerID: 1},
		Vendor:    &entity.VendorProfile{ID: 2, UserID: 50},
		Status:    entity.BookingPending,
	}
}

func TestBookingService_UpdateStatus_ByVendor(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.bookingRepo.EXPECT().FindByID(ctx, uint(30)).Return(bookingFixture(), nil)
	fx.bookingRepo.EXPECT().UpdateStatus(ctx, uint(30), entity.BookingConfirmed).Return(nil)
	// A failed publish is logged, never returned.
	fx.publisher.EXPECT().
		PublishBookingEvent(ctx, mock.MatchedBy(func(e *service.BookingEvent) bool {
			return e.Type == service.BookingEventStatusChanged && e.Status == "confirmed"
		})).
		Return(errors.New("broker down"))

	booking, err := fx.service.UpdateStatus(ctx, vendorPrincipal(50), &usecase.UpdateBookingStatusInput{BookingID: 30, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, booking.Status)
}

func TestBookingService_UpdateStatus_Rejections(t *testing.T) {
	t.Run("stranger", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()

		fx.bookingRepo.EXPECT().FindByID(ctx, uint(30)).Return(bookingFixture(), nil)

		_, err := fx.service.UpdateStatus(ctx, plannerPrincipal(77), &usecase.UpdateBookingStatusInput{BookingID: 30, Status: "confirmed"})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("invalid status", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()

		fx.bookingRepo.EXPECT().FindByID(ctx, uint(30)).Return(bookingFixture(), nil)

		_, err := fx.service.UpdateStatus(ctx, plannerPrincipal(1), &usecase.UpdateBookingStatusInput{BookingID: 30, Status: "done"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("booking of another event", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().FindByID(ctx, uint(21)).Return(&entity.Event{ID: 21}, nil)
		fx.bookingRepo.EXPECT().FindByID(ctx, uint(30)).Return(bookingFixture(), nil)

		_, err := fx.service.UpdateStatus(ctx, plannerPrincipal(1), &usecase.UpdateBookingStatusInput{
			EventID: ptr(uint(21)), BookingID: 30, Status: "confirmed",
		})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestBookingService_Delete(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, uint(20)).Return(&entity.Event{ID: 20}, nil)
	fx.bookingRepo.EXPECT().FindByID(ctx, uint(30)).Return(bookingFixture(), nil)
	fx.bookingRepo.EXPECT().Delete(ctx, uint(30)).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, plannerPrincipal(8), 20, 30))
	assert.ErrorIs(t, fx.service.Delete(ctx, vendorPrincipal(50), 20, 30), domainerrors.ErrPermissionDenied)
}

func TestBookingService_ListForEvent_UnknownEvent(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, uint(5)).Return(nil, repository.ErrEventNotFound)

	_, err := fx.service.ListForEvent(ctx, 5)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBookingService_ListForVendor(t *testing.T) {
	t.Run("vendor dashboard", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByUserID(ctx, uint(50)).Return(&entity.VendorProfile{ID: 2, UserID: 50}, nil)
		fx.bookingRepo.EXPECT().ListByVendor(ctx, uint(2)).Return([]*entity.Booking{bookingFixture()}, nil)

		bookings, err := fx.service.ListForVendor(ctx, vendorPrincipal(50))
		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("not a vendor", func(t *testing.T) {
		fx := createTestBookingService(t)

		_, err := fx.service.ListForVendor(context.Background(), plannerPrincipal(1))
		require.Error(t, err)
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Access denied. Vendor account required.", appErr.Message())
	})

	t.Run("missing profile", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByUserID(ctx, uint(50)).Return(nil, repository.ErrVendorNotFound)

		_, err := fx.service.ListForVendor(ctx, vendorPrincipal(50))
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
