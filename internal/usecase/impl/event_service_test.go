package impl

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceFixtures struct {
	service   usecase.EventUsecase
	eventRepo *mockRepo.MockEventRepository
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	eventRepo := mockRepo.NewMockEventRepository(t)

	return eventServiceFixtures{
		service:   NewEventService(EventServiceParams{EventRepo: eventRepo, Logger: newDiscardLogger()}),
		eventRepo: eventRepo,
	}
}

func TestEventService_List_MineUsesCaller(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.EventFilter) bool {
			return f.PlannerID != nil && *f.PlannerID == 5 && f.Location == "Lagos"
		})).
		Return([]*entity.Event{{ID: 1, PlannerID: 5}}, nil)

	events, err := fx.service.List(ctx, plannerPrincipal(5), &usecase.ListEventsInput{Mine: true, Location: " Lagos "})
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventService_List_MineConflictsWithPlanner(t *testing.T) {
	fx := createTestEventService(t)

	events, err := fx.service.List(context.Background(), plannerPrincipal(5), &usecase.ListEventsInput{
		Mine:      true,
		PlannerID: ptr(uint(6)),
	})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventService_Create(t *testing.T) {
	date := time.Date(2025, 7, 4, 18, 0, 0, 0, time.FixedZone("WAT", 3600))

	t.Run("planner creates event", func(t *testing.T) {
		fx := createTestEventService(t)
		ctx := context.Background()

		fx.eventRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Event")).
			Run(func(_ context.Context, event *entity.Event) { event.ID = 11 }).
			Return(nil)

		event, err := fx.service.Create(ctx, plannerPrincipal(5), &usecase.CreateEventInput{
			Title:       "Launch",
			Description: ptr("  "),
			Date:        &date,
			Location:    "Abuja",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(11), event.ID)
		assert.Equal(t, uint(5), event.PlannerID)
		assert.Nil(t, event.Description)
		assert.Equal(t, time.UTC, event.Date.Location())
		assert.True(t, event.Date.Equal(date))
	})

	t.Run("non planner is rejected", func(t *testing.T) {
		fx := createTestEventService(t)

		_, err := fx.service.Create(context.Background(), vendorPrincipal(5), &usecase.CreateEventInput{
			Title: "x", Date: &date, Location: "y",
		})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestEventService(t)

		_, err := fx.service.Create(context.Background(), plannerPrincipal(5), &usecase.CreateEventInput{Title: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestEventService(t)

		_, err := fx.service.Create(context.Background(), nil, &usecase.CreateEventInput{})
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestEventService_Get_NotFound(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrEventNotFound)

	_, err := fx.service.Get(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEventService_Update_Partial(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	existing := &entity.Event{ID: 3, PlannerID: 1, Title: "Old", Location: "Kano"}

	fx.eventRepo.EXPECT().FindByID(ctx, uint(3)).Return(existing, nil)
	fx.eventRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(e *entity.Event) bool {
			return e.Title == "New" && e.Location == "Kano"
		})).
		Return(nil)

	// Any planner may edit, not only the owner.
	event, err := fx.service.Update(ctx, plannerPrincipal(2), 3, &usecase.UpdateEventInput{Title: ptr("New")})
	require.NoError(t, err)
	assert.Equal(t, "New", event.Title)
}

func TestEventService_Update_EmptyTitle(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.Event{ID: 3, Title: "Old"}, nil)

	_, err := fx.service.Update(ctx, plannerPrincipal(2), 3, &usecase.UpdateEventInput{Title: ptr(" ")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEventService_Delete(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().Delete(ctx, uint(3)).Return(nil)
	require.NoError(t, fx.service.Delete(ctx, plannerPrincipal(2), 3))

	err := fx.service.Delete(ctx, vendorPrincipal(2), 3)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}
