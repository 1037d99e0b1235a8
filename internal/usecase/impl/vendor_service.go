package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

const (
	msgVendorRequired        = "Access denied. Vendor account required."
	msgVendorProfileNotFound = "Vendor profile not found."
)

type vendorService struct {
	vendorRepo   repository.VendorRepository
	categoryRepo repository.CategoryRepository
	serviceRepo  repository.ServiceRepository
	logger       *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo   repository.VendorRepository
	CategoryRepo repository.CategoryRepository
	ServiceRepo  repository.ServiceRepository
	Logger       *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo:   params.VendorRepo,
		categoryRepo: params.CategoryRepo,
		serviceRepo:  params.ServiceRepo,
		logger:       params.Logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the vendor directory. A numeric category is matched by id,
// anything else by name substring.
func (srv *vendorService) List(ctx context.Context, input *usecase.ListVendorsInput) ([]*entity.VendorProfile, error) {
	filter := repository.VendorFilter{
		Location: strings.TrimSpace(input.Location),
		PriceMin: input.PriceMin,
		PriceMax: input.PriceMax,
	}

	if category := strings.TrimSpace(input.Category); category != "" {
		if id, err := strconv.ParseUint(category, 10, 0); err == nil {
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		} else {
			filter.CategoryName = category
		}
	}

	vendors, err := srv.vendorRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

// Get returns a vendor together with its services.
func (srv *vendorService) Get(ctx context.Context, vendorID uint) (*usecase.VendorDetail, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrVendorNotFound, msgVendorNotFound)
	}

	services, err := srv.serviceRepo.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor services")
	}

	return &usecase.VendorDetail{Vendor: vendor, Services: services}, nil
}

// GetOwn returns the caller's vendor profile.
func (srv *vendorService) GetOwn(ctx context.Context, principal *entity.Principal) (*entity.VendorProfile, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	vendor, err := srv.vendorRepo.FindByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrVendorNotFound, msgVendorProfileNotFound)
	}

	return vendor, nil
}

// UpdateOwn applies a partial update to the caller's vendor profile.
func (srv *vendorService) UpdateOwn(ctx context.Context, principal *entity.Principal, input *usecase.UpdateVendorProfileInput) (*entity.VendorProfile, error) {
	vendor, err := srv.GetOwn(ctx, principal)
	if err != nil {
		return nil, err
	}

	if input.BusinessName != nil {
		name := strings.TrimSpace(*input.BusinessName)
		if name == "" {
			return nil, domainerrors.Validation("Business name cannot be empty.")
		}
		vendor.BusinessName = name
	}
	if input.Description != nil {
		vendor.Description = optionalText(*input.Description)
	}
	if input.Location != nil {
		vendor.Location = optionalText(*input.Location)
	}
	if input.ContactInfo != nil {
		vendor.ContactInfo = optionalText(*input.ContactInfo)
	}
	if input.ProfilePic != nil {
		vendor.ProfilePic = optionalText(*input.ProfilePic)
	}

	if err := srv.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, notFoundOr(err, repository.ErrVendorNotFound, msgVendorProfileNotFound)
	}

	srv.log(ctx).Info("Vendor profile updated", slog.Uint64("vendorID", uint64(vendor.ID)))

	return vendor, nil
}

// ListCategories returns every service category by name.
func (srv *vendorService) ListCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ownedVendor loads vendorID and checks the principal owns it.
func ownedVendor(ctx context.Context, vendorRepo repository.VendorRepository, principal *entity.Principal, vendorID uint) (*entity.VendorProfile, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	vendor, err := vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrVendorNotFound, msgVendorNotFound)
	}
	if !principal.Is(vendor.UserID) {
		return nil, domainerrors.Forbidden(msgPermissionDenied)
	}

	return vendor, nil
}

// existingVendor fails with 404 for an unknown vendor.
func existingVendor(ctx context.Context, vendorRepo repository.VendorRepository, vendorID uint) (*entity.VendorProfile, error) {
	vendor, err := vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrVendorNotFound, msgVendorNotFound)
	}

	return vendor, nil
}
