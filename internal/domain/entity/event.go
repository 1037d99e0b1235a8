package entity

import "time"

// DefaultEventLocation is used for events created implicitly by a booking.
const DefaultEventLocation = "To be determined"

// Event is an occasion owned by a planner.
type Event struct {
	ID              uint
	PlannerID       uint
	PlannerUsername string
	Title           string
	Description     *string
	Date            time.Time
	Location        string
	GuestCount      int64
	VendorCount     int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RSVPStatus is a guest's answer to an invitation.
type RSVPStatus string

const (
	RSVPInvited   RSVPStatus = "invited"
	RSVPAttending RSVPStatus = "attending"
	RSVPDeclined  RSVPStatus = "declined"
	RSVPWaitlist  RSVPStatus = "waitlist"
)

// IsValid checks if the RSVPStatus is a known value.
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPInvited, RSVPAttending, RSVPDeclined, RSVPWaitlist:
		return true
	default:
		return false
	}
}

// Guest is an invitee of an event, optionally linked to a registered user.
type Guest struct {
	ID         uint
	EventID    uint
	EventTitle string
	UserID     *uint
	User       *User
	Name       *string
	Email      string
	RSVPStatus RSVPStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLinked reports whether the guest is tied to a user account.
func (g *Guest) IsLinked() bool {
	return g.UserID != nil
}

// BookingStatus is the lifecycle state of a vendor booking.
//
// The intended flow is pending -> confirmed|cancelled and
// confirmed -> completed|cancelled, but any valid status may be written at any time.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// IsValid checks if the BookingStatus is a known value.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	default:
		return false
	}
}

// Booking links an event to a vendor's service.
type Booking struct {
	ID        uint
	EventID   uint
	VendorID  uint
	ServiceID uint
	Event     *Event
	Vendor    *VendorProfile
	Service   *Service
	Status    BookingStatus
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
