package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	"eventhub/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorServiceFixtures struct {
	vendors      usecase.VendorUsecase
	catalog      usecase.ServiceUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	vendorRepo   *mockRepo.MockVendorRepository
	categoryRepo *mockRepo.MockCategoryRepository
	serviceRepo  *mockRepo.MockServiceRepository
}

func createTestVendorService(t *testing.T) vendorServiceFixtures {
	fx := vendorServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		repoFactory:  mockRepo.NewMockRepositoryFactory(t),
		vendorRepo:   mockRepo.NewMockVendorRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		serviceRepo:  mockRepo.NewMockServiceRepository(t),
	}

	fx.vendors = NewVendorService(VendorServiceParams{
		VendorRepo:   fx.vendorRepo,
		CategoryRepo: fx.categoryRepo,
		ServiceRepo:  fx.serviceRepo,
		Logger:       newDiscardLogger(),
	})
	fx.catalog = NewCatalogService(CatalogServiceParams{
		TxManager:   fx.txManager,
		VendorRepo:  fx.vendorRepo,
		ServiceRepo: fx.serviceRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func (fx vendorServiceFixtures) expectTxRepos() {
	expectTransaction(fx.txManager, fx.repoFactory)
	fx.repoFactory.EXPECT().NewCategoryRepository().Return(fx.categoryRepo).Maybe()
	fx.repoFactory.EXPECT().NewServiceRepository().Return(fx.serviceRepo).Maybe()
}

func TestVendorService_List_CategoryParsing(t *testing.T) {
	t.Run("numeric category is an id", func(t *testing.T) {
		fx := createTestVendorService(t)
		ctx := context.Background()
		maxPrice := decimal.RequireFromString("100")

		fx.vendorRepo.EXPECT().
			List(ctx, mock.MatchedBy(func(f repository.VendorFilter) bool {
				return f.CategoryID != nil && *f.CategoryID == 3 && f.CategoryName == "" && f.PriceMax.Equal(maxPrice)
			})).
			Return([]*entity.VendorProfile{{ID: 1}}, nil)

		vendors, err := fx.vendors.List(ctx, &usecase.ListVendorsInput{Category: "3", PriceMax: &maxPrice})
		require.NoError(t, err)
		assert.Len(t, vendors, 1)
	})

	t.Run("text category is a name", func(t *testing.T) {
		fx := createTestVendorService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().
			List(ctx, repository.VendorFilter{CategoryName: "photo", Location: "Accra"}).
			Return([]*entity.VendorProfile{}, nil)

		_, err := fx.vendors.List(ctx, &usecase.ListVendorsInput{Category: "photo", Location: " Accra"})
		require.NoError(t, err)
	})
}

func TestVendorService_Get_IncludesServices(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1}, nil)
	fx.serviceRepo.EXPECT().ListByVendor(ctx, uint(1)).Return([]*entity.Service{{ID: 5}, {ID: 6}}, nil)

	detail, err := fx.vendors.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, detail.Services, 2)
}

func TestVendorService_UpdateOwn_ExplicitPresence(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()
	location := "Lagos"

	fx.vendorRepo.EXPECT().FindByUserID(ctx, uint(50)).Return(&entity.VendorProfile{
		ID: 1, UserID: 50, BusinessName: "Old", Location: &location,
	}, nil)
	fx.vendorRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(v *entity.VendorProfile) bool {
			return v.BusinessName == "New" && v.Location == nil && v.Description != nil && *v.Description == "Cakes"
		})).
		Return(nil)

	vendor, err := fx.vendors.UpdateOwn(ctx, vendorPrincipal(50), &usecase.UpdateVendorProfileInput{
		BusinessName: ptr("New"),
		Description:  ptr("Cakes"),
		Location:     ptr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, vendor.Location)
}

func TestVendorService_UpdateOwn_BusinessNameRequired(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	fx.vendorRepo.EXPECT().FindByUserID(ctx, uint(50)).Return(&entity.VendorProfile{ID: 1, BusinessName: "Old"}, nil)

	_, err := fx.vendors.UpdateOwn(ctx, vendorPrincipal(50), &usecase.UpdateVendorProfileInput{BusinessName: ptr(" ")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVendorService_GetOwn_NoProfile(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	fx.vendorRepo.EXPECT().FindByUserID(ctx, uint(50)).Return(nil, repository.ErrVendorNotFound)

	_, err := fx.vendors.GetOwn(ctx, vendorPrincipal(50))
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_Create(t *testing.T) {
	price := decimal.RequireFromString("150.50")

	t.Run("owner creates with new category", func(t *testing.T) {
		fx := createTestVendorService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)
		fx.expectTxRepos()
		fx.categoryRepo.EXPECT().GetOrCreate(ctx, "Catering").Return(&entity.ServiceCategory{ID: 4, Name: "Catering"}, nil)
		fx.serviceRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(s *entity.Service) bool {
				return *s.CategoryID == 4 && s.Price.Equal(price) && s.AvailabilityNotes == nil
			})).
			Run(func(_ context.Context, s *entity.Service) { s.ID = 9 }).
			Return(nil)
		fx.serviceRepo.EXPECT().FindByID(ctx, uint(1), uint(9)).Return(&entity.Service{ID: 9, VendorID: 1}, nil)

		svc, err := fx.catalog.Create(ctx, vendorPrincipal(50), 1, &usecase.CreateServiceInput{
			Title:             "Buffet",
			Description:       "Hot food",
			Price:             &price,
			Category:          ptr("Catering"),
			AvailabilityNotes: ptr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, uint(9), svc.ID)
	})

	t.Run("non owner", func(t *testing.T) {
		fx := createTestVendorService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)

		_, err := fx.catalog.Create(ctx, vendorPrincipal(51), 1, &usecase.CreateServiceInput{Title: "a", Description: "b", Price: &price})
		assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	})

	t.Run("missing price", func(t *testing.T) {
		fx := createTestVendorService(t)
		ctx := context.Background()

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)

		_, err := fx.catalog.Create(ctx, vendorPrincipal(50), 1, &usecase.CreateServiceInput{Title: "a", Description: "b"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("too many decimals", func(t *testing.T) {
		fx := createTestVendorService(t)
		ctx := context.Background()
		bad := decimal.RequireFromString("1.005")

		fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)

		_, err := fx.catalog.Create(ctx, vendorPrincipal(50), 1, &usecase.CreateServiceInput{Title: "a", Description: "b", Price: &bad})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_Update_ClearsCategory(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()
	categoryID := uint(4)

	fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)
	fx.serviceRepo.EXPECT().FindByID(ctx, uint(1), uint(9)).Return(&entity.Service{
		ID: 9, VendorID: 1, CategoryID: &categoryID, Title: "Buffet",
	}, nil).Once()
	fx.expectTxRepos()
	fx.serviceRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(s *entity.Service) bool { return s.CategoryID == nil && s.Title == "Buffet" })).
		Return(nil)
	fx.serviceRepo.EXPECT().FindByID(ctx, uint(1), uint(9)).Return(&entity.Service{ID: 9, VendorID: 1}, nil).Once()

	svc, err := fx.catalog.Update(ctx, vendorPrincipal(50), 1, 9, &usecase.UpdateServiceInput{Category: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, svc.CategoryID)
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)
	fx.serviceRepo.EXPECT().Delete(ctx, uint(1), uint(9)).Return(repository.ErrServiceNotFound)

	err := fx.catalog.Delete(ctx, vendorPrincipal(50), 1, 9)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
