package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

const msgEventNotFound = "Event not found."

type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the events matching input.
func (srv *eventService) List(ctx context.Context, principal *entity.Principal, input *usecase.ListEventsInput) ([]*entity.Event, error) {
	filter := repository.EventFilter{
		Day:       input.Date,
		Location:  strings.TrimSpace(input.Location),
		PlannerID: input.PlannerID,
	}

	if input.Mine {
		if principal == nil {
			return nil, domainerrors.ErrUnauthorized
		}
		// When both are given they must agree, otherwise nothing matches.
		if filter.PlannerID != nil && *filter.PlannerID != principal.UserID {
			return []*entity.Event{}, nil
		}
		filter.PlannerID = &principal.UserID
	}

	events, err := srv.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}

// Create stores a new event planned by the caller.
func (srv *eventService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateEventInput) (*entity.Event, error) {
	if err := requireCapability(principal, entity.CapabilityPlanner, msgPermissionDenied); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	location := strings.TrimSpace(input.Location)
	if title == "" || input.Date == nil || location == "" {
		return nil, domainerrors.Validation("Title, date, and location are required.")
	}

	event := &entity.Event{
		PlannerID:       principal.UserID,
		PlannerUsername: principal.Username,
		Title:           title,
		Date:            input.Date.UTC(),
		Location:        location,
	}
	if input.Description != nil {
		event.Description = optionalText(*input.Description)
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.log(ctx).Info("Event created", slog.Uint64("eventID", uint64(event.ID)), slog.Uint64("plannerID", uint64(event.PlannerID)))

	return event, nil
}

// Get returns a single event.
func (srv *eventService) Get(ctx context.Context, eventID uint) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrEventNotFound, msgEventNotFound)
	}

	return event, nil
}

// Update applies a partial update. Any planner may edit any event.
func (srv *eventService) Update(ctx context.Context, principal *entity.Principal, eventID uint, input *usecase.UpdateEventInput) (*entity.Event, error) {
	if err := requireCapability(principal, entity.CapabilityPlanner, msgPermissionDenied); err != nil {
		return nil, err
	}

	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrEventNotFound, msgEventNotFound)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerrors.Validation("Title cannot be empty.")
		}
		event.Title = title
	}
	if input.Location != nil {
		location := strings.TrimSpace(*input.Location)
		if location == "" {
			return nil, domainerrors.Validation("Location cannot be empty.")
		}
		event.Location = location
	}
	if input.Description != nil {
		event.Description = optionalText(*input.Description)
	}
	if input.Date != nil {
		event.Date = input.Date.UTC()
	}

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		return nil, notFoundOr(err, repository.ErrEventNotFound, msgEventNotFound)
	}

	return event, nil
}

// Delete removes an event together with its guests and bookings.
func (srv *eventService) Delete(ctx context.Context, principal *entity.Principal, eventID uint) error {
	if err := requireCapability(principal, entity.CapabilityPlanner, msgPermissionDenied); err != nil {
		return err
	}

	if err := srv.eventRepo.Delete(ctx, eventID); err != nil {
		return notFoundOr(err, repository.ErrEventNotFound, msgEventNotFound)
	}

	srv.log(ctx).Info("Event deleted", slog.Uint64("eventID", uint64(eventID)))

	return nil
}
