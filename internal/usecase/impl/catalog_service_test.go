package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Create_ValidationMessages(t *testing.T) {
	price := decimal.NewFromInt(10)

	tests := []struct {
		name    string
		input   *usecase.CreateServiceInput
		message string
	}{
		{
			name:    "blank title",
			input:   &usecase.CreateServiceInput{Title: "  ", Description: "Hot", Price: &price},
			message: "Title, description, and price are required.",
		},
		{
			name:    "blank description",
			input:   &usecase.CreateServiceInput{Title: "Buffet", Description: "", Price: &price},
			message: "Title, description, and price are required.",
		},
		{
			name:    "negative",
			input:   &usecase.CreateServiceInput{Title: "Buffet", Description: "Hot", Price: ptr(decimal.NewFromInt(-1))},
			message: msgInvalidPrice,
		},
		{
			name:    "too many integer digits",
			input:   &usecase.CreateServiceInput{Title: "Buffet", Description: "Hot", Price: ptr(decimal.RequireFromString("100000000"))},
			message: msgInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVendorService(t)
			ctx := context.Background()

			fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1, UserID: 50}, nil)

			_, err := fx.catalog.Create(ctx, vendorPrincipal(50), 1, tt.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message())
		})
	}
}

func TestCatalogService_Get_UnknownService(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	fx.vendorRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.VendorProfile{ID: 1}, nil)
	fx.serviceRepo.EXPECT().FindByID(ctx, uint(1), uint(9)).Return(nil, repository.ErrServiceNotFound)

	_, err := fx.catalog.Get(ctx, 1, 9)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_List_UnknownVendor(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	fx.vendorRepo.EXPECT().FindByID(ctx, uint(2)).Return(nil, repository.ErrVendorNotFound)

	_, err := fx.catalog.List(ctx, 2)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
