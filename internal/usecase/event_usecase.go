package usecase

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
)

// ListEventsInput narrows the event list.
type ListEventsInput struct {
	Date      *time.Time
	Location  string
	PlannerID *uint
	Mine      bool // Restrict to events planned by the caller.
}

// CreateEventInput defines the data for a new event.
type CreateEventInput struct {
	Title       string
	Description *string
	Date        *time.Time
	Location    string
}

// UpdateEventInput carries a partial event update. Nil fields are left unchanged.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
}

// EventUsecase defines event management.
type EventUsecase interface {
	List(ctx context.Context, principal *entity.Principal, input *ListEventsInput) ([]*entity.Event, error)
	Create(ctx context.Context, principal *entity.Principal, input *CreateEventInput) (*entity.Event, error)
	Get(ctx context.Context, eventID uint) (*entity.Event, error)
	Update(ctx context.Context, principal *entity.Principal, eventID uint, input *UpdateEventInput) (*entity.Event, error)
	Delete(ctx context.Context, principal *entity.Principal, eventID uint) error
}

// CreateBookingInput defines a booking made through the general endpoint.
// Either EventID, or both EventName and EventDate, must be set.
type CreateBookingInput struct {
	EventID   *uint
	EventName string
	EventDate *time.Time
	VendorID  uint
	ServiceID uint
	Notes     *string
}

// CreateEventBookingInput defines a booking made under a specific event.
type CreateEventBookingInput struct {
	VendorID  uint
	ServiceID uint
	Status    *string
	Notes     *string
}

// UpdateBookingStatusInput identifies a booking and its new status. EventID,
// when set, must match the booking's event.
type UpdateBookingStatusInput struct {
	EventID   *uint
	BookingID uint
	Status    string
}

// BookingUsecase defines vendor booking management.
type BookingUsecase interface {
	Create(ctx context.Context, principal *entity.Principal, input *CreateBookingInput) (*entity.Booking, error)
	CreateForEvent(ctx context.Context, principal *entity.Principal, eventID uint, input *CreateEventBookingInput) (*entity.Booking, error)
	ListForEvent(ctx context.Context, eventID uint) ([]*entity.Booking, error)
	Get(ctx context.Context, eventID, bookingID uint) (*entity.Booking, error)
	UpdateStatus(ctx context.Context, principal *entity.Principal, input *UpdateBookingStatusInput) (*entity.Booking, error)
	Delete(ctx context.Context, principal *entity.Principal, eventID, bookingID uint) error

	// ListForVendor returns the caller's vendor bookings, newest first.
	ListForVendor(ctx context.Context, principal *entity.Principal) ([]*entity.Booking, error)
}

// AddGuestInput defines a new guest. When UserID is set, name and email are
// taken from that user.
type AddGuestInput struct {
	UserID     *uint
	Name       *string
	Email      *string
	RSVPStatus *string
}

// UpdateGuestInput carries a partial guest update. Nil fields are left unchanged.
type UpdateGuestInput struct {
	Name       *string
	Email      *string
	RSVPStatus *string
}

// GuestUsecase defines guest list management.
type GuestUsecase interface {
	List(ctx context.Context, eventID uint) ([]*entity.Guest, error)
	Get(ctx context.Context, eventID, guestID uint) (*entity.Guest, error)
	Add(ctx context.Context, principal *entity.Principal, eventID uint, input *AddGuestInput) (*entity.Guest, error)
	Update(ctx context.Context, principal *entity.Principal, eventID, guestID uint, input *UpdateGuestInput) (*entity.Guest, error)
	Delete(ctx context.Context, principal *entity.Principal, eventID, guestID uint) error

	// InvitationQR renders the guest's invitation as a PNG QR code.
	InvitationQR(ctx context.Context, principal *entity.Principal, eventID, guestID uint) ([]byte, error)
}
