package repository

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// Domain-specific errors for event planning.
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrGuestNotFound   = errors.New("guest not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// EventFilter narrows the event list. Zero values mean no constraint.
type EventFilter struct {
	Day       *time.Time // Matches events on the same UTC calendar day.
	Location  string     // Case-insensitive substring.
	PlannerID *uint
}

// EventRepository persists events. Read methods populate the planner username
// and the guest and booking counts.
type EventRepository interface {
	List(ctx context.Context, filter EventFilter) ([]*entity.Event, error)
	FindByID(ctx context.Context, id uint) (*entity.Event, error)
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uint) error
}

// GuestRepository persists event guests. Results carry the linked user and event title.
type GuestRepository interface {
	ListByEvent(ctx context.Context, eventID uint) ([]*entity.Guest, error)
	FindByID(ctx context.Context, eventID, guestID uint) (*entity.Guest, error)
	Create(ctx context.Context, guest *entity.Guest) error
	Update(ctx context.Context, guest *entity.Guest) error
	Delete(ctx context.Context, eventID, guestID uint) error
}

// BookingRepository persists vendor bookings. Results carry the event, vendor and service.
type BookingRepository interface {
	ListByEvent(ctx context.Context, eventID uint) ([]*entity.Booking, error)

	// ListByVendor returns the vendor's bookings, newest first.
	ListByVendor(ctx context.Context, vendorID uint) ([]*entity.Booking, error)

	FindByID(ctx context.Context, id uint) (*entity.Booking, error)

	// Create inserts the booking in a single statement. An existing booking for
	// the same (event, vendor, service) yields domainerrors.ErrDuplicateBooking.
	Create(ctx context.Context, booking *entity.Booking) error

	UpdateStatus(ctx context.Context, id uint, status entity.BookingStatus) error
	Delete(ctx context.Context, id uint) error
}
