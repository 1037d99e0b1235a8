package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	vendorRepo *mockRepo.MockVendorRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		vendorRepo: mockRepo.NewMockVendorRepository(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
	}
	fx.service = NewReviewService(ReviewServiceParams{
		VendorRepo: fx.vendorRepo,
		ReviewRepo: fx.reviewRepo,
		Logger:     newDiscardLogger(),
	})

	return fx
}

func TestReviewService_Create(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, BusinessName: "Cakes"}, nil)
	fx.reviewRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
			return r.UserID == 3 && r.Rating == 5 && *r.Comment == "Great"
		})).
		Return(nil)

	review, err := fx.service.Create(ctx, plainPrincipal(3), 1, &usecase.CreateReviewInput{Rating: ptr(5), Comment: ptr("Great")})
	require.NoError(t, err)
	assert.Equal(t, "Cakes", review.VendorName)
}

func TestReviewService_Create_Rejections(t *testing.T) {
	for _, rating := range []*int{nil, ptr(0), ptr(6)} {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1}, nil)

		_, err := fx.service.Create(ctx, plainPrincipal(3), 1, &usecase.CreateReviewInput{Rating: rating})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1}, nil)
		fx.reviewRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrDuplicateReview)

		_, err := fx.service.Create(ctx, plainPrincipal(3), 1, &usecase.CreateReviewInput{Rating: ptr(4)})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
	})
}

func TestReviewService_Delete(t *testing.T) {
	review := &entity.Review{ID: 8, VendorID: 1, UserID: 3}

	t.Run("staff may delete", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()
		staff := &entity.Principal{UserID: 99, Capabilities: entity.Capabilities{entity.CapabilityStaff}}

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1}, nil)
		fx.reviewRepo.EXPECT().FindByID(ctx, uint(1), uint(8)).Return(review, nil)
		fx.reviewRepo.EXPECT().Delete(ctx, uint(1), uint(8)).Return(nil)

		assert.NoError(t, fx.service.Delete(ctx, staff, 1, 8))
	})

	t.Run("other user may not", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1}, nil)
		fx.reviewRepo.EXPECT().FindByID(ctx, uint(1), uint(8)).Return(review, nil)

		err := fx.service.Delete(ctx, plainPrincipal(4), 1, 8)
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})
}
