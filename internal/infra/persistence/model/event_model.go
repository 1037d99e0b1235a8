package model

import "time"

// EventModel mirrors the 'events' table.
type EventModel struct {
	ID          uint       `gorm:"primaryKey"`
	PlannerID   uint       `gorm:"not null;index"`
	Planner     *UserModel `gorm:"foreignKey:PlannerID;constraint:OnDelete:CASCADE"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description *string    `gorm:"type:text"`
	Date        time.Time  `gorm:"type:timestamptz;not null;index"`
	Location    string     `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// GuestModel mirrors the 'guests' table. The user link is cleared when the user is deleted.
type GuestModel struct {
	ID         uint        `gorm:"primaryKey"`
	EventID    uint        `gorm:"not null;index"`
	Event      *EventModel `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	UserID     *uint       `gorm:"index"`
	User       *UserModel  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Name       *string     `gorm:"type:varchar(255)"`
	Email      string      `gorm:"type:varchar(254);not null"`
	RSVPStatus string      `gorm:"column:rsvp_status;type:varchar(10);not null;default:invited;check:chk_guests_rsvp_status,rsvp_status IN ('invited','attending','declined','waitlist')"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuestModel) TableName() string {
	return "guests"
}

// BookingModel mirrors the 'vendor_bookings' table. (event_id, vendor_id, service_id) is unique.
type BookingModel struct {
	ID        uint                `gorm:"primaryKey"`
	EventID   uint                `gorm:"not null;uniqueIndex:idx_bookings_event_vendor_service"`
	Event     *EventModel         `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	VendorID  uint                `gorm:"not null;uniqueIndex:idx_bookings_event_vendor_service;index"`
	Vendor    *VendorProfileModel `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	ServiceID uint                `gorm:"not null;uniqueIndex:idx_bookings_event_vendor_service"`
	Service   *ServiceModel       `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Status    string              `gorm:"type:varchar(10);not null;default:pending;check:chk_bookings_status,status IN ('pending','confirmed','cancelled','completed')"`
	Notes     *string             `gorm:"type:text"`
	CreatedAt time.Time           `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "vendor_bookings"
}
