package impl

import (
	"context"
	"strings"
	"testing"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type portfolioServiceFixtures struct {
	service       usecase.PortfolioUsecase
	vendorRepo    *mockRepo.MockVendorRepository
	portfolioRepo *mockRepo.MockPortfolioRepository
	storage       *mockSvc.MockMediaStorage
}

func createTestPortfolioService(t *testing.T) portfolioServiceFixtures {
	fx := portfolioServiceFixtures{
		vendorRepo:    mockRepo.NewMockVendorRepository(t),
		portfolioRepo: mockRepo.NewMockPortfolioRepository(t),
		storage:       mockSvc.NewMockMediaStorage(t),
	}

	fx.service = NewPortfolioService(PortfolioServiceParams{
		Config:        &config.Config{Storage: &config.StorageConfig{MaxUploadSize: 1024}},
		VendorRepo:    fx.vendorRepo,
		PortfolioRepo: fx.portfolioRepo,
		Storage:       fx.storage,
		Logger:        newDiscardLogger(),
	})

	return fx
}

func upload(size int64) *usecase.UploadedFile {
	return &usecase.UploadedFile{
		Filename:    "cake.JPG",
		ContentType: "image/jpeg",
		Size:        size,
		Content:     strings.NewReader("jpeg-bytes"),
	}
}

func TestPortfolioService_Create(t *testing.T) {
	fx := createTestPortfolioService(t)
	ctx := context.Background()
	key := "vendor_portfolio/2025/01/abc.jpg"

	fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50, BusinessName: "Cakes"}, nil)
	fx.storage.EXPECT().Save(ctx, "cake.JPG", "image/jpeg", mock.Anything).Return(key, nil)
	fx.portfolioRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(item *entity.PortfolioItem) bool {
			return *item.Image == key && *item.Description == "Wedding cake"
		})).
		Return(nil)
	fx.storage.EXPECT().URL(key).Return("https://cdn.example.com/" + key)

	item, err := fx.service.Create(ctx, vendorPrincipal(50), 1, &usecase.CreatePortfolioItemInput{
		Image:       upload(10),
		Description: " Wedding cake ",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+key, item.ImageURL)
}

func TestPortfolioService_Create_RemovesBlobWhenInsertFails(t *testing.T) {
	fx := createTestPortfolioService(t)
	ctx := context.Background()

	fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)
	fx.storage.EXPECT().Save(ctx, mock.Anything, mock.Anything, mock.Anything).Return("k", nil)
	fx.portfolioRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.storage.EXPECT().Delete(ctx, "k").Return(nil)

	_, err := fx.service.Create(ctx, vendorPrincipal(50), 1, &usecase.CreatePortfolioItemInput{Image: upload(10), Description: "d"})
	assert.Error(t, err)
}

func TestPortfolioService_Create_Rejections(t *testing.T) {
	t.Run("too large", func(t *testing.T) {
		fx := createTestPortfolioService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)

		_, err := fx.service.Create(ctx, vendorPrincipal(50), 1, &usecase.CreatePortfolioItemInput{Image: upload(4096), Description: "d"})
		require.ErrorIs(t, err, domainerrors.ErrPayloadTooLarge)
		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Uploaded file exceeds the 1.0 KB limit.", appErr.Message())
	})

	t.Run("missing description", func(t *testing.T) {
		fx := createTestPortfolioService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)

		_, err := fx.service.Create(ctx, vendorPrincipal(50), 1, &usecase.CreatePortfolioItemInput{Image: upload(1)})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("not the owner", func(t *testing.T) {
		fx := createTestPortfolioService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)

		_, err := fx.service.Create(ctx, vendorPrincipal(51), 1, &usecase.CreatePortfolioItemInput{Image: upload(1), Description: "d"})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})
}

func TestPortfolioService_Delete_BlobFailureIsIgnored(t *testing.T) {
	fx := createTestPortfolioService(t)
	ctx := context.Background()
	key := "k"

	fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)
	fx.portfolioRepo.EXPECT().FindByID(ctx, uint(1), uint(3)).Return(&entity.PortfolioItem{ID: 3, VendorID: 1, Image: &key}, nil)
	fx.portfolioRepo.EXPECT().Delete(ctx, uint(1), uint(3)).Return(nil)
	fx.storage.EXPECT().Delete(ctx, key).Return(errors.New("bucket unavailable"))

	assert.NoError(t, fx.service.Delete(ctx, vendorPrincipal(50), 1, 3))
}
