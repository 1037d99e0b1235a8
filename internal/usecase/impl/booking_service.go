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

	"go.uber.org/fx"
)

const (
	msgBookingNotFound = "Booking not found."
	msgVendorNotFound  = "Vendor not found."
	msgServiceNotFound = "Service not found."
	msgInvalidStatus   = "Invalid status."
)

type bookingService struct {
	txManager   repository.TransactionManager
	eventRepo   repository.EventRepository
	vendorRepo  repository.VendorRepository
	serviceRepo repository.ServiceRepository
	bookingRepo repository.BookingRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	EventRepo   repository.EventRepository
	VendorRepo  repository.VendorRepository
	ServiceRepo repository.ServiceRepository
	BookingRepo repository.BookingRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		eventRepo:   params.EventRepo,
		vendorRepo:  params.VendorRepo,
		serviceRepo: params.ServiceRepo,
		bookingRepo: params.BookingRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create books a vendor service for an existing event or for a new event
// created in the same transaction.
func (srv *bookingService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if input.VendorID == 0 || input.ServiceID == 0 {
		return nil, domainerrors.Validation("vendor_id and service_id are required.")
	}

	eventName := strings.TrimSpace(input.EventName)

	var booking *entity.Booking
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()

		var eventID uint
		switch {
		case input.EventID != nil:
			event, err := eventRepo.FindByID(ctx, *input.EventID)
			if err != nil {
				return notFoundOr(err, repository.ErrEventNotFound, msgEventNotFound)
			}
			if !principal.Is(event.PlannerID) {
				return domainerrors.Forbidden("Only the event planner can create bookings for this event.")
			}
			eventID = event.ID
		case eventName != "" && input.EventDate != nil:
			if !principal.Can(entity.CapabilityPlanner) {
				return domainerrors.Forbidden("Only planners can create new events.")
			}
			event := &entity.Event{
				PlannerID: principal.UserID,
				Title:     eventName,
				Date:      input.EventDate.UTC(),
				Location:  entity.DefaultEventLocation,
			}
			if err := eventRepo.Create(ctx, event); err != nil {
				return errors.Wrap(err, "failed to create event for booking")
			}
			eventID = event.ID
		default:
			return domainerrors.Validation("Either event_id or both event_name and event_date are required.")
		}

		if err := srv.checkVendorService(ctx, repoFactory, input.VendorID, input.ServiceID); err != nil {
			return err
		}

		booking = &entity.Booking{
			EventID:   eventID,
			VendorID:  input.VendorID,
			ServiceID: input.ServiceID,
			Status:    entity.BookingPending,
			Notes:     normalizedNotes(input.Notes),
		}

		return repoFactory.NewBookingRepository().Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	return srv.afterCreate(ctx, principal, booking.ID)
}

// CreateForEvent books a vendor service under an event owned by the caller.
func (srv *bookingService) CreateForEvent(ctx context.Context, principal *entity.Principal, eventID uint, input *usecase.CreateEventBookingInput) (*entity.Booking, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrEventNotFound, msgEventNotFound)
	}
	if !principal.Is(event.PlannerID) {
		return nil, domainerrors.Forbidden(msgPermissionDenied)
	}

	if input.VendorID == 0 || input.ServiceID == 0 {
		return nil, domainerrors.Validation("Vendor ID and Service ID are required.")
	}

	status := entity.BookingPending
	if input.Status != nil {
		status = entity.BookingStatus(*input.Status)
		if !status.IsValid() {
			return nil, domainerrors.Validation(msgInvalidStatus)
		}
	}

	if err := srv.checkVendorService(ctx, nil, input.VendorID, input.ServiceID); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		EventID:   event.ID,
		VendorID:  input.VendorID,
		ServiceID: input.ServiceID,
		Status:    status,
		Notes:     normalizedNotes(input.Notes),
	}
	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return srv.afterCreate(ctx, principal, booking.ID)
}

// checkVendorService verifies the vendor exists and offers the service. A nil
// factory uses the service's own repositories.
func (srv *bookingService) checkVendorService(ctx context.Context, repoFactory repository.RepositoryFactory, vendorID, serviceID uint) error {
	vendorRepo, serviceRepo := srv.vendorRepo, srv.serviceRepo
	if repoFactory != nil {
		vendorRepo, serviceRepo = repoFactory.NewVendorRepository(), repoFactory.NewServiceRepository()
	}

	if _, err := vendorRepo.FindByID(ctx, vendorID); err != nil {
		return notFoundOr(err, repository.ErrVendorNotFound, msgVendorNotFound)
	}
	if _, err := serviceRepo.FindByID(ctx, vendorID, serviceID); err != nil {
		return notFoundOr(err, repository.ErrServiceNotFound, msgServiceNotFound)
	}

	return nil
}

// afterCreate reloads the committed booking and announces it.
func (srv *bookingService) afterCreate(ctx context.Context, principal *entity.Principal, bookingID uint) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload booking")
	}

	srv.log(ctx).Info("Booking created",
		slog.Uint64("bookingID", uint64(booking.ID)),
		slog.Uint64("eventID", uint64(booking.EventID)),
		slog.Uint64("vendorID", uint64(booking.VendorID)),
	)
	srv.publish(ctx, service.BookingEventCreated, booking, principal)

	return booking, nil
}

// ListForEvent returns the bookings of an event.
func (srv *bookingService) ListForEvent(ctx context.Context, eventID uint) ([]*entity.Booking, error) {
	if _, err := srv.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, notFoundOr(err, repository.ErrEventNotFound, msgEventNotFound)
	}

	bookings, err := srv.bookingRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// Get returns a booking of the given event.
func (srv *bookingService) Get(ctx context.Context, eventID, bookingID uint) (*entity.Booking, error) {
	return srv.findForEvent(ctx, &eventID, bookingID)
}

func (srv *bookingService) findForEvent(ctx context.Context, eventID *uint, bookingID uint) (*entity.Booking, error) {
	if eventID != nil {
		if _, err := srv.eventRepo.FindByID(ctx, *eventID); err != nil {
			return nil, notFoundOr(err, repository.ErrEventNotFound, msgEventNotFound)
		}
	}

	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrBookingNotFound, msgBookingNotFound)
	}
	if eventID != nil && booking.EventID != *eventID {
		return nil, domainerrors.NotFound(msgBookingNotFound)
	}

	return booking, nil
}

// UpdateStatus writes a new status. The event's planner and the booked vendor may do so.
func (srv *bookingService) UpdateStatus(ctx context.Context, principal *entity.Principal, input *usecase.UpdateBookingStatusInput) (*entity.Booking, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	booking, err := srv.findForEvent(ctx, input.EventID, input.BookingID)
	if err != nil {
		return nil, err
	}

	if !canManageBooking(principal, booking) {
		return nil, domainerrors.Forbidden(msgPermissionDenied)
	}

	status := entity.BookingStatus(input.Status)
	if !status.IsValid() {
		return nil, domainerrors.Validation(msgInvalidStatus)
	}

	if err := srv.bookingRepo.UpdateStatus(ctx, booking.ID, status); err != nil {
		return nil, notFoundOr(err, repository.ErrBookingNotFound, msgBookingNotFound)
	}
	booking.Status = status
	booking.UpdatedAt = srv.now()

	srv.publish(ctx, service.BookingEventStatusChanged, booking, principal)

	return booking, nil
}

func canManageBooking(principal *entity.Principal, booking *entity.Booking) bool {
	if booking.Event != nil && principal.Is(booking.Event.PlannerID) {
		return true
	}

	return booking.Vendor != nil && principal.Is(booking.Vendor.UserID)
}

// Delete removes a booking of the given event.
func (srv *bookingService) Delete(ctx context.Context, principal *entity.Principal, eventID, bookingID uint) error {
	if err := requireCapability(principal, entity.CapabilityPlanner, msgPermissionDenied); err != nil {
		return err
	}

	booking, err := srv.findForEvent(ctx, &eventID, bookingID)
	if err != nil {
		return err
	}

	if err := srv.bookingRepo.Delete(ctx, booking.ID); err != nil {
		return notFoundOr(err, repository.ErrBookingNotFound, msgBookingNotFound)
	}

	return nil
}

// ListForVendor returns the caller's vendor bookings, newest first.
func (srv *bookingService) ListForVendor(ctx context.Context, principal *entity.Principal) ([]*entity.Booking, error) {
	if err := requireCapability(principal, entity.CapabilityVendor, msgVendorRequired); err != nil {
		return nil, err
	}

	vendor, err := srv.vendorRepo.FindByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrVendorNotFound, msgVendorProfileNotFound)
	}

	bookings, err := srv.bookingRepo.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor bookings")
	}

	return bookings, nil
}

// publish sends a booking event after commit. Delivery failures never fail the request.
func (srv *bookingService) publish(ctx context.Context, eventType string, booking *entity.Booking, principal *entity.Principal) {
	if srv.publisher == nil {
		return
	}

	event := &service.BookingEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		BookingID:  booking.ID,
		EventID:    booking.EventID,
		VendorID:   booking.VendorID,
		ServiceID:  booking.ServiceID,
		Status:     string(booking.Status),
		ActorID:    principal.UserID,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishBookingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish booking event",
			slog.String("type", eventType),
			slog.Uint64("bookingID", uint64(booking.ID)),
			slog.Any("error", err),
		)
	}
}

func normalizedNotes(notes *string) *string {
	if notes == nil {
		return nil
	}

	return optionalText(*notes)
}
