package repository

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"

	"github.com/shopspring/decimal"
)

// Domain-specific errors for the vendor catalog.
var (
	ErrVendorNotFound        = errors.New("vendor profile not found")
	ErrServiceNotFound       = errors.New("service not found")
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
	ErrReviewNotFound        = errors.New("review not found")
)

// VendorFilter narrows the vendor directory. Category and price bounds apply
// to a single service: a vendor matches when one of its services satisfies
// all of them.
type VendorFilter struct {
	CategoryID   *uint
	CategoryName string // Case-insensitive substring, used when CategoryID is nil.
	Location     string // Case-insensitive substring of the vendor location.
	PriceMin     *decimal.Decimal
	PriceMax     *decimal.Decimal
}

// HasServiceConstraint reports whether any service-level filter is set.
func (f VendorFilter) HasServiceConstraint() bool {
	return f.CategoryID != nil || f.CategoryName != "" || f.PriceMin != nil || f.PriceMax != nil
}

// VendorRepository persists vendor profiles. Read methods populate Stats.
type VendorRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.VendorProfile, error)
	FindByUserID(ctx context.Context, userID uint) (*entity.VendorProfile, error)

	// List returns the deduplicated set of vendors matching filter, ordered by id.
	List(ctx context.Context, filter VendorFilter) ([]*entity.VendorProfile, error)

	// GetOrCreate returns the user's profile, creating it with businessName when absent.
	GetOrCreate(ctx context.Context, userID uint, businessName string) (*entity.VendorProfile, error)

	Update(ctx context.Context, vendor *entity.VendorProfile) error
}

// CategoryRepository persists the shared service taxonomy.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.ServiceCategory, error)

	// GetOrCreate returns the category with the exact name, creating it when absent.
	GetOrCreate(ctx context.Context, name string) (*entity.ServiceCategory, error)
}

// ServiceRepository persists vendor services. Results carry the category and vendor name.
type ServiceRepository interface {
	ListByVendor(ctx context.Context, vendorID uint) ([]*entity.Service, error)

	// FindByID returns the service only when it belongs to vendorID.
	FindByID(ctx context.Context, vendorID, serviceID uint) (*entity.Service, error)

	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, vendorID, serviceID uint) error
}

// PortfolioRepository persists vendor portfolio items.
type PortfolioRepository interface {
	ListByVendor(ctx context.Context, vendorID uint) ([]*entity.PortfolioItem, error)
	FindByID(ctx context.Context, vendorID, itemID uint) (*entity.PortfolioItem, error)
	Create(ctx context.Context, item *entity.PortfolioItem) error
	Delete(ctx context.Context, vendorID, itemID uint) error
}

// ReviewRepository persists vendor reviews.
type ReviewRepository interface {
	ListByVendor(ctx context.Context, vendorID uint) ([]*entity.Review, error)
	FindByID(ctx context.Context, vendorID, reviewID uint) (*entity.Review, error)

	// Create inserts the review in a single statement. A second review by the
	// same user for the same vendor yields domainerrors.ErrDuplicateReview.
	Create(ctx context.Context, review *entity.Review) error

	Delete(ctx context.Context, vendorID, reviewID uint) error
}
