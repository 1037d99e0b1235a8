package impl

import (
	"context"
	"log/slog"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

const (
	msgReviewNotFound = "Review not found."
	msgInvalidRating  = "Rating must be between 1 and 5."
)

type reviewService struct {
	vendorRepo repository.VendorRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		vendorRepo: params.VendorRepo,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the vendor's reviews, newest first.
func (srv *reviewService) List(ctx context.Context, vendorID uint) ([]*entity.Review, error) {
	if _, err := existingVendor(ctx, srv.vendorRepo, vendorID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// Get returns a review of the given vendor.
func (srv *reviewService) Get(ctx context.Context, vendorID, reviewID uint) (*entity.Review, error) {
	if _, err := existingVendor(ctx, srv.vendorRepo, vendorID); err != nil {
		return nil, err
	}

	review, err := srv.reviewRepo.FindByID(ctx, vendorID, reviewID)
	if err != nil {
		return nil, notFoundOr(err, repository.ErrReviewNotFound, msgReviewNotFound)
	}

	return review, nil
}

// Create records the caller's review of a vendor. A second review by the same
// user is rejected by the store.
func (srv *reviewService) Create(ctx context.Context, principal *entity.Principal, vendorID uint, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	vendor, err := existingVendor(ctx, srv.vendorRepo, vendorID)
	if err != nil {
		return nil, err
	}

	if input.Rating == nil || !entity.ValidRating(*input.Rating) {
		return nil, domainerrors.Validation(msgInvalidRating)
	}

	review := &entity.Review{
		VendorID:   vendor.ID,
		VendorName: vendor.BusinessName,
		UserID:     principal.UserID,
		Username:   principal.Username,
		Rating:     *input.Rating,
	}
	if input.Comment != nil {
		review.Comment = optionalText(*input.Comment)
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created",
		slog.Uint64("vendorID", uint64(vendor.ID)),
		slog.Uint64("reviewID", uint64(review.ID)),
		slog.Int("rating", review.Rating),
	)

	return review, nil
}

// Delete removes a review. Only its author or staff may delete it.
func (srv *reviewService) Delete(ctx context.Context, principal *entity.Principal, vendorID, reviewID uint) error {
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	review, err := srv.Get(ctx, vendorID, reviewID)
	if err != nil {
		return err
	}

	if !principal.Is(review.UserID) && !principal.Can(entity.CapabilityStaff) {
		return domainerrors.Forbidden(msgPermissionDenied)
	}

	if err := srv.reviewRepo.Delete(ctx, vendorID, review.ID); err != nil {
		return notFoundOr(err, repository.ErrReviewNotFound, msgReviewNotFound)
	}

	return nil
}
