package service

import (
	"context"
	"time"
)

// Booking event types.
const (
	BookingEventCreated       = "booking.created"
	BookingEventStatusChanged = "booking.status_changed"
)

// BookingEvent notifies downstream consumers about a change to a booking.
type BookingEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	BookingID  uint      `json:"booking_id"`
	EventID    uint      `json:"event_id"`
	VendorID   uint      `json:"vendor_id"`
	ServiceID  uint      `json:"service_id"`
	Status     string    `json:"status"`
	ActorID    uint      `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookingEvent publishes a booking event.
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
