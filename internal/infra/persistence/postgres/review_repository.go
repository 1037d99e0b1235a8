package postgres

import (
	"context"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// reviewRepository implements the domain.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Vendor").Preload("User")
}

// ListByVendor returns the vendor's reviews, newest first.
func (repo *reviewRepository) ListByVendor(ctx context.Context, vendorID uint) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	err := repo.withRelations(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC, id DESC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// FindByID returns a review only when it was left for vendorID.
func (repo *reviewRepository) FindByID(ctx context.Context, vendorID, reviewID uint) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.withRelations(ctx).
		Where("id = ? AND vendor_id = ?", reviewID, vendorID).
		First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return toReviewDomain(&reviewM), nil
}

// Create inserts the review. The (vendor_id, user_id) unique index rejects a second review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		VendorID: review.VendorID,
		UserID:   review.UserID,
		Rating:   review.Rating,
		Comment:  review.Comment,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrDuplicateReview
		case isCheckConstraintViolation(err):
			return domainerrors.Validation("Rating must be between 1 and 5.")
		case isForeignKeyConstraintViolation(err):
			return repository.ErrVendorNotFound
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
		}
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// Delete removes a review left for vendorID.
func (repo *reviewRepository) Delete(ctx context.Context, vendorID, reviewID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", reviewID, vendorID).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:        data.ID,
		VendorID:  data.VendorID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
	if data.Vendor != nil {
		review.VendorName = data.Vendor.BusinessName
	}
	if data.User != nil {
		review.Username = data.User.Username
	}

	return review
}
