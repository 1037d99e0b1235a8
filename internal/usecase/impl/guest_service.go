package impl

import (
	"context"
	"log/slog"
	"strings"

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
	msgGuestNotFound    = "Guest not found."
	msgInvalidRSVP      = "Invalid RSVP status."
	msgPermissionDenied = "Permission denied."
)

type guestService struct {
	eventRepo repository.EventRepository
	guestRepo repository.GuestRepository
	userRepo  repository.UserRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// GuestServiceParams holds dependencies for GuestService, injected by Fx.
type GuestServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	GuestRepo repository.GuestRepository
	UserRepo  repository.UserRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewGuestService is the constructor for guestService.
func NewGuestService(params GuestServiceParams) usecase.GuestUsecase {
	return &guestService{
		eventRepo: params.EventRepo,
		guestRepo: params.GuestRepo,
		userRepo:  params.UserRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *guestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *guestService) findEvent(ctx context.Context, eventID uint) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrEventNotFound, msgEventNotFound)
	}

	return event, nil
}

// List returns the guests of an event.
func (srv *guestService) List(ctx context.Context, eventID uint) ([]*entity.Guest, error) {
	if _, err := srv.findEvent(ctx, eventID); err != nil {
		return nil, err
	}

	guests, err := srv.guestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guests")
	}

	return guests, nil
}

// Get returns a guest of the given event.
func (srv *guestService) Get(ctx context.Context, eventID, guestID uint) (*entity.Guest, error) {
	if _, err := srv.findEvent(ctx, eventID); err != nil {
		return nil, err
	}

	guest, err := srv.guestRepo.FindByID(ctx, eventID, guestID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrGuestNotFound, msgGuestNotFound)
	}

	return guest, nil
}

// Add invites a guest. Only the event's planner may add guests.
func (srv *guestService) Add(ctx context.Context, principal *entity.Principal, eventID uint, input *usecase.AddGuestInput) (*entity.Guest, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	event, err := srv.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !principal.Is(event.PlannerID) {
		return nil, domainerrors.Forbidden(msgPermissionDenied)
	}

	rsvp := entity.RSVPInvited
	if input.RSVPStatus != nil && *input.RSVPStatus != "" {
		rsvp = entity.RSVPStatus(*input.RSVPStatus)
		if !rsvp.IsValid() {
			return nil, domainerrors.Validation(msgInvalidRSVP)
		}
	}

	guest := &entity.Guest{
		EventID:    event.ID,
		EventTitle: event.Title,
		RSVPStatus: rsvp,
	}

	if input.UserID != nil {
		// A linked guest always mirrors the user's name and email.
		user, err := srv.userRepo.FindByID(ctx, *input.UserID)
		if err != nil {
			return nil, notFoundOr(err, repository.ErrUserNotFound, "User not found.")
		}
		if strings.TrimSpace(user.Email) == "" {
			return nil, domainerrors.Validation("The linked user has no email address.")
		}
		name := user.DisplayName()
		guest.UserID = &user.ID
		guest.User = user
		guest.Name = &name
		guest.Email = user.Email
	} else {
		name := strings.TrimSpace(stringValue(input.Name))
		email := strings.TrimSpace(stringValue(input.Email))
		if name == "" || email == "" {
			return nil, domainerrors.Validation("Name and email are required.")
		}
		if !validEmail(email) {
			return nil, domainerrors.Validation("Invalid email address.")
		}
		guest.Name = &name
		guest.Email = email
	}

	if err := srv.guestRepo.Create(ctx, guest); err != nil {
		return nil, errors.Wrap(err, "failed to add guest")
	}

	srv.log(ctx).Info("Guest added", slog.Uint64("eventID", uint64(event.ID)), slog.Uint64("guestID", uint64(guest.ID)))

	return guest, nil
}

// Update applies a partial update. Name and email of a linked guest follow the
// user account and are left untouched.
func (srv *guestService) Update(ctx context.Context, principal *entity.Principal, eventID, guestID uint, input *usecase.UpdateGuestInput) (*entity.Guest, error) {
	if err := requireCapability(principal, entity.CapabilityPlanner, msgPermissionDenied); err != nil {
		return nil, err
	}

	guest, err := srv.Get(ctx, eventID, guestID)
	if err != nil {
		return nil, err
	}

	if !guest.IsLinked() {
		if input.Name != nil {
			name := optionalText(*input.Name)
			if name == nil {
				return nil, domainerrors.Validation("Name is required.")
			}
			guest.Name = name
		}
		if input.Email != nil {
			email := strings.TrimSpace(*input.Email)
			if email == "" || !validEmail(email) {
				return nil, domainerrors.Validation("Invalid email address.")
			}
			guest.Email = email
		}
	}
	if input.RSVPStatus != nil {
		rsvp := entity.RSVPStatus(*input.RSVPStatus)
		if !rsvp.IsValid() {
			return nil, domainerrors.Validation(msgInvalidRSVP)
		}
		guest.RSVPStatus = rsvp
	}

	if err := srv.guestRepo.Update(ctx, guest); err != nil {
		return nil, notFoundOr(err, repository.ErrGuestNotFound, msgGuestNotFound)
	}

	return guest, nil
}

// Delete removes a guest from an event.
func (srv *guestService) Delete(ctx context.Context, principal *entity.Principal, eventID, guestID uint) error {
	if err := requireCapability(principal, entity.CapabilityPlanner, msgPermissionDenied); err != nil {
		return err
	}

	if _, err := srv.findEvent(ctx, eventID); err != nil {
		return err
	}

	if err := srv.guestRepo.Delete(ctx, eventID, guestID); err != nil {
		return notFoundOr(err, repository.ErrGuestNotFound, msgGuestNotFound)
	}

	return nil
}

// InvitationQR renders the invitation of a guest for the event's planner.
func (srv *guestService) InvitationQR(ctx context.Context, principal *entity.Principal, eventID, guestID uint) ([]byte, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	event, err := srv.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !principal.Is(event.PlannerID) {
		return nil, domainerrors.Forbidden(msgPermissionDenied)
	}

	guest, err := srv.guestRepo.FindByID(ctx, eventID, guestID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrGuestNotFound, msgGuestNotFound)
	}

	png, err := srv.qrService.GenerateInvitationQR(event.ID, guest.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invitation QR code")
	}

	return png, nil
}
