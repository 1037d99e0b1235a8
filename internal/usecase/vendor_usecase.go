package usecase

import (
	"context"
	"io"

	"eventhub/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ListVendorsInput narrows the vendor directory. Category is either a numeric
// category id or a name substring.
type ListVendorsInput struct {
	Category string
	Location string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
}

// UpdateVendorProfileInput carries a partial profile update. Nil fields are
// left unchanged; an empty string clears an optional field.
type UpdateVendorProfileInput struct {
	BusinessName *string
	Description  *string
	Location     *string
	ContactInfo  *string
	ProfilePic   *string
}

// VendorDetail is a vendor together with its services.
type VendorDetail struct {
	Vendor   *entity.VendorProfile
	Services []*entity.Service
}

// VendorUsecase defines the vendor directory and self-profile operations.
type VendorUsecase interface {
	List(ctx context.Context, input *ListVendorsInput) ([]*entity.VendorProfile, error)
	Get(ctx context.Context, vendorID uint) (*VendorDetail, error)
	GetOwn(ctx context.Context, principal *entity.Principal) (*entity.VendorProfile, error)
	UpdateOwn(ctx context.Context, principal *entity.Principal, input *UpdateVendorProfileInput) (*entity.VendorProfile, error)
	ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error)
}

// CreateServiceInput defines a new vendor service. Category is a category
// name, created when it does not exist yet.
type CreateServiceInput struct {
	Title             string
	Description       string
	Price             *decimal.Decimal
	Category          *string
	AvailabilityNotes *string
}

// UpdateServiceInput carries a partial service update. Nil fields are left
// unchanged; an empty Category clears the category.
type UpdateServiceInput struct {
	Title             *string
	Description       *string
	Price             *decimal.Decimal
	Category          *string
	AvailabilityNotes *string
}

// ServiceUsecase defines vendor service management.
type ServiceUsecase interface {
	List(ctx context.Context, vendorID uint) ([]*entity.Service, error)
	Get(ctx context.Context, vendorID, serviceID uint) (*entity.Service, error)
	Create(ctx context.Context, principal *entity.Principal, vendorID uint, input *CreateServiceInput) (*entity.Service, error)
	Update(ctx context.Context, principal *entity.Principal, vendorID, serviceID uint, input *UpdateServiceInput) (*entity.Service, error)
	Delete(ctx context.Context, principal *entity.Principal, vendorID, serviceID uint) error
}

// UploadedFile is a file received from a multipart form.
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreatePortfolioItemInput defines a new portfolio item.
type CreatePortfolioItemInput struct {
	Image       *UploadedFile
	Description string
}

// PortfolioUsecase defines vendor portfolio management.
type PortfolioUsecase interface {
	List(ctx context.Context, vendorID uint) ([]*entity.PortfolioItem, error)
	Get(ctx context.Context, vendorID, itemID uint) (*entity.PortfolioItem, error)
	Create(ctx context.Context, principal *entity.Principal, vendorID uint, input *CreatePortfolioItemInput) (*entity.PortfolioItem, error)
	Delete(ctx context.Context, principal *entity.Principal, vendorID, itemID uint) error
}

// CreateReviewInput defines a new review.
type CreateReviewInput struct {
	Rating  *int
	Comment *string
}

// ReviewUsecase defines vendor review management.
type ReviewUsecase interface {
	List(ctx context.Context, vendorID uint) ([]*entity.Review, error)
	Get(ctx context.Context, vendorID, reviewID uint) (*entity.Review, error)
	Create(ctx context.Context, principal *entity.Principal, vendorID uint, input *CreateReviewInput) (*entity.Review, error)

	// Delete removes a review. Only its author or staff may delete it.
	Delete(ctx context.Context, principal *entity.Principal, vendorID, reviewID uint) error
}
