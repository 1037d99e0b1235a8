package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"
	"eventhub/internal/util"

	"go.uber.org/fx"
)

const msgPortfolioItemNotFound = "Portfolio item not found."

type portfolioService struct {
	vendorRepo    repository.VendorRepository
	portfolioRepo repository.PortfolioRepository
	storage       service.MediaStorage
	maxUploadSize int64
	logger        *slog.Logger
}

// PortfolioServiceParams holds dependencies for PortfolioService, injected by Fx.
type PortfolioServiceParams struct {
	fx.In

	Config        *config.Config
	VendorRepo    repository.VendorRepository
	PortfolioRepo repository.PortfolioRepository
	Storage       service.MediaStorage
	Logger        *slog.Logger
}

// NewPortfolioService is the constructor for portfolioService.
func NewPortfolioService(params PortfolioServiceParams) usecase.PortfolioUsecase {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &portfolioService{
		vendorRepo:    params.VendorRepo,
		portfolioRepo: params.PortfolioRepo,
		storage:       params.Storage,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}
}

func (srv *portfolioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *portfolioService) withURL(item *entity.PortfolioItem) *entity.PortfolioItem {
	if item.Image != nil && *item.Image != "" {
		item.ImageURL = srv.storage.URL(*item.Image)
	}

	return item
}

// List returns the vendor's portfolio, newest first.
func (srv *portfolioService) List(ctx context.Context, vendorID uint) ([]*entity.PortfolioItem, error) {
	if _, err := existingVendor(ctx, srv.vendorRepo, vendorID); err != nil {
		return nil, err
	}

	items, err := srv.portfolioRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list portfolio items")
	}
	for _, item := range items {
		srv.withURL(item)
	}

	return items, nil
}

// Get returns a portfolio item of the given vendor.
func (srv *portfolioService) Get(ctx context.Context, vendorID, itemID uint) (*entity.PortfolioItem, error) {
	if _, err := existingVendor(ctx, srv.vendorRepo, vendorID); err != nil {
		return nil, err
	}

	item, err := srv.portfolioRepo.FindByID(ctx, vendorID, itemID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrPortfolioItemNotFound, msgPortfolioItemNotFound)
	}

	return srv.withURL(item), nil
}

// Create uploads the image and records the portfolio item. The stored file is
// removed again when the record cannot be written.
func (srv *portfolioService) Create(ctx context.Context, principal *entity.Principal, vendorID uint, input *usecase.CreatePortfolioItemInput) (*entity.PortfolioItem, error) {
	vendor, err := ownedVendor(ctx, srv.vendorRepo, principal, vendorID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(input.Description)
	if input.Image == nil || input.Image.Content == nil || description == "" {
		return nil, domainerrors.Validation("Image/file and description are required.")
	}
	if srv.maxUploadSize > 0 && input.Image.Size > srv.maxUploadSize {
		return nil, domainerrors.ErrPayloadTooLarge.WithMessage(
			fmt.Sprintf("Uploaded file exceeds the %s limit.", util.FormatBytes(srv.maxUploadSize)))
	}

	key, err := srv.storage.Save(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store portfolio image")
	}

	item := &entity.PortfolioItem{
		VendorID:    vendor.ID,
		VendorName:  vendor.BusinessName,
		Image:       &key,
		Description: &description,
	}
	if err := srv.portfolioRepo.Create(ctx, item); err != nil {
		srv.removeBlob(ctx, key)

		return nil, errors.Wrap(err, "failed to create portfolio item")
	}

	srv.log(ctx).Info("Portfolio item created",
		slog.Uint64("vendorID", uint64(vendor.ID)),
		slog.Uint64("itemID", uint64(item.ID)),
		slog.String("size", util.FormatBytes(input.Image.Size)),
	)

	return srv.withURL(item), nil
}

// Delete removes a portfolio item and, best effort, its stored image.
func (srv *portfolioService) Delete(ctx context.Context, principal *entity.Principal, vendorID, itemID uint) error {
	vendor, err := ownedVendor(ctx, srv.vendorRepo, principal, vendorID)
	if err != nil {
		return err
	}

	item, err := srv.portfolioRepo.FindByID(ctx, vendor.ID, itemID)
	if err != nil {
		return notFoundOr(err, repository.ErrPortfolioItemNotFound, msgPortfolioItemNotFound)
	}

	if err := srv.portfolioRepo.Delete(ctx, vendor.ID, item.ID); err != nil {
		return notFoundOr(err, repository.ErrPortfolioItemNotFound, msgPortfolioItemNotFound)
	}

	if item.Image != nil && *item.Image != "" {
		srv.removeBlob(ctx, *item.Image)
	}

	return nil
}

func (srv *portfolioService) removeBlob(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to remove portfolio image", slog.String("key", key), slog.Any("error", err))
	}
}
