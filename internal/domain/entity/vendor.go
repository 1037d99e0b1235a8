package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// VendorProfile is the storefront of a vendor user. There is at most one per user.
type VendorProfile struct {
	ID           uint
	UserID       uint
	BusinessName string
	Description  *string
	Location     *string
	ContactInfo  *string
	ProfilePic   *string
	IsVerified   bool
	Stats        VendorStats // Aggregates computed at read time.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VendorStats holds the aggregates shown alongside a vendor.
type VendorStats struct {
	AverageRating  float64
	ServicesCount  int64
	PortfolioCount int64
	ReviewsCount   int64
}

// RoundRating rounds a mean rating to two decimal places.
func RoundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}

// ServiceCategory is the shared taxonomy for services.
type ServiceCategory struct {
	ID          uint
	Name        string
	Description *string
}

const (
	// PriceScale is the number of decimal places a price may carry.
	PriceScale = 2
	// PriceMaxIntegerDigits bounds the integer part of a price.
	PriceMaxIntegerDigits = 8
)

// Service is a catalog item offered by a vendor.
type Service struct {
	ID                uint
	VendorID          uint
	VendorName        string
	CategoryID        *uint
	Category          *ServiceCategory
	Title             string
	Description       string
	Price             decimal.Decimal
	AvailabilityNotes *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ValidPrice reports whether price is non-negative with at most two decimal
// places and fits numeric(10,2).
func ValidPrice(price decimal.Decimal) bool {
	if price.IsNegative() {
		return false
	}
	if !price.Equal(price.Round(PriceScale)) {
		return false
	}

	limit := decimal.New(1, PriceMaxIntegerDigits)

	return price.LessThan(limit)
}

// PortfolioItem is a media sample published by a vendor.
type PortfolioItem struct {
	ID          uint
	VendorID    uint
	VendorName  string
	Image       *string // Storage key of the uploaded file.
	ImageURL    string  // Public URL of Image, resolved at read time.
	Description *string
	CreatedAt   time.Time
}

const (
	// MinRating is the lowest accepted review rating.
	MinRating = 1
	// MaxRating is the highest accepted review rating.
	MaxRating = 5
)

// Review is a rating left by a user against a vendor. One per (vendor, user).
type Review struct {
	ID         uint
	VendorID   uint
	VendorName string
	UserID     uint
	Username   string
	Rating     int
	Comment    *string
	CreatedAt  time.Time
}

// ValidRating reports whether r is within [MinRating, MaxRating].
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
