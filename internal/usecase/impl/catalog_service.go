package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

const msgInvalidPrice = "Price must be a non-negative amount with at most two decimal places."

type catalogService struct {
	txManager   repository.TransactionManager
	vendorRepo  repository.VendorRepository
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VendorRepo  repository.VendorRepository
	ServiceRepo repository.ServiceRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.ServiceUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		vendorRepo:  params.VendorRepo,
		serviceRepo: params.ServiceRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the services of a vendor.
func (srv *catalogService) List(ctx context.Context, vendorID uint) ([]*entity.Service, error) {
	if _, err := existingVendor(ctx, srv.vendorRepo, vendorID); err != nil {
		return nil, err
	}

	services, err := srv.serviceRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// Get returns a service of the given vendor.
func (srv *catalogService) Get(ctx context.Context, vendorID, serviceID uint) (*entity.Service, error) {
	if _, err := existingVendor(ctx, srv.vendorRepo, vendorID); err != nil {
		return nil, err
	}

	svc, err := srv.serviceRepo.FindByID(ctx, vendorID, serviceID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrServiceNotFound, msgServiceNotFound)
	}

	return svc, nil
}

// Create adds a service to the caller's vendor catalog.
func (srv *catalogService) Create(ctx context.Context, principal *entity.Principal, vendorID uint, input *usecase.CreateServiceInput) (*entity.Service, error) {
	vendor, err := ownedVendor(ctx, srv.vendorRepo, principal, vendorID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" || input.Price == nil {
		return nil, domainerrors.Validation("Title, description, and price are required.")
	}
	if !entity.ValidPrice(*input.Price) {
		return nil, domainerrors.Validation(msgInvalidPrice)
	}

	svc := &entity.Service{
		VendorID:    vendor.ID,
		Title:       title,
		Description: description,
		Price:       *input.Price,
	}
	if input.AvailabilityNotes != nil {
		svc.AvailabilityNotes = optionalText(*input.AvailabilityNotes)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := assignCategory(ctx, repoFactory.NewCategoryRepository(), svc, input.Category); err != nil {
			return err
		}

		return repoFactory.NewServiceRepository().Create(ctx, svc)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Service created", slog.Uint64("vendorID", uint64(vendor.ID)), slog.Uint64("serviceID", uint64(svc.ID)))

	return srv.reload(ctx, vendor.ID, svc.ID)
}

// Update applies a partial update to a service of the caller's catalog.
func (srv *catalogService) Update(ctx context.Context, principal *entity.Principal, vendorID, serviceID uint, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	vendor, err := ownedVendor(ctx, srv.vendorRepo, principal, vendorID)
	if err != nil {
		return nil, err
	}

	svc, err := srv.serviceRepo.FindByID(ctx, vendor.ID, serviceID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrServiceNotFound, msgServiceNotFound)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerrors.Validation("Title cannot be empty.")
		}
		svc.Title = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerrors.Validation("Description cannot be empty.")
		}
		svc.Description = description
	}
	if input.Price != nil {
		if !entity.ValidPrice(*input.Price) {
			return nil, domainerrors.Validation(msgInvalidPrice)
		}
		svc.Price = *input.Price
	}
	if input.AvailabilityNotes != nil {
		svc.AvailabilityNotes = optionalText(*input.AvailabilityNotes)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if input.Category != nil {
			if err := assignCategory(ctx, repoFactory.NewCategoryRepository(), svc, input.Category); err != nil {
				return err
			}
		}

		if err := repoFactory.NewServiceRepository().Update(ctx, svc); err != nil {
			return notFoundOr(err, repository.ErrServiceNotFound, msgServiceNotFound)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.reload(ctx, vendor.ID, svc.ID)
}

// Delete removes a service and, through the store, its bookings.
func (srv *catalogService) Delete(ctx context.Context, principal *entity.Principal, vendorID, serviceID uint) error {
	vendor, err := ownedVendor(ctx, srv.vendorRepo, principal, vendorID)
	if err != nil {
		return err
	}

	if err := srv.serviceRepo.Delete(ctx, vendor.ID, serviceID); err != nil {
		return notFoundOr(err, repository.ErrServiceNotFound, msgServiceNotFound)
	}

	srv.log(ctx).Info("Service deleted", slog.Uint64("vendorID", uint64(vendor.ID)), slog.Uint64("serviceID", uint64(serviceID)))

	return nil
}

func (srv *catalogService) reload(ctx context.Context, vendorID, serviceID uint) (*entity.Service, error) {
	svc, err := srv.serviceRepo.FindByID(ctx, vendorID, serviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload service")
	}

	return svc, nil
}

// assignCategory sets the service category by name, creating the category
// when absent. A blank name clears the category.
func assignCategory(ctx context.Context, categoryRepo repository.CategoryRepository, svc *entity.Service, name *string) error {
	if name == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		svc.CategoryID = nil
		svc.Category = nil

		return nil
	}

	category, err := categoryRepo.GetOrCreate(ctx, trimmed)
	if err != nil {
		return errors.Wrap(err, "failed to resolve service category")
	}
	svc.CategoryID = &category.ID
	svc.Category = category

	return nil
}
