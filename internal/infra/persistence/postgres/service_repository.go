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

// serviceRepository implements the domain.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (repo *serviceRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Category").Preload("Vendor")
}

// ListByVendor returns the vendor's services ordered by id.
func (repo *serviceRepository) ListByVendor(ctx context.Context, vendorID uint) ([]*entity.Service, error) {
	var serviceMs []*model.ServiceModel
	err := repo.withRelations(ctx).
		Where("vendor_id = ?", vendorID).
		Order("id").
		Find(&serviceMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceMs))
	for _, serviceM := range serviceMs {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// FindByID returns the service only when it belongs to vendorID.
func (repo *serviceRepository) FindByID(ctx context.Context, vendorID, serviceID uint) (*entity.Service, error) {
	var serviceM model.ServiceModel
	err := repo.withRelations(ctx).
		Where("id = ? AND vendor_id = ?", serviceID, vendorID).
		First(&serviceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return toServiceDomain(&serviceM), nil
}

// Create persists a new service.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Omit("Vendor", "Category").Create(serviceM).Error; err != nil {
		return translateServiceWriteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// Update writes the editable service fields.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ? AND vendor_id = ?", service.ID, service.VendorID).
		Select("category_id", "title", "description", "price", "availability_notes", "updated_at").
		Updates(serviceM)
	if result.Error != nil {
		return translateServiceWriteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a service owned by vendorID.
func (repo *serviceRepository) Delete(ctx context.Context, vendorID, serviceID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", serviceID, vendorID).
		Delete(&model.ServiceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func translateServiceWriteError(err error, details string) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.Validation("Price must be a non-negative amount.")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.Validation("Invalid category.")
	case isNotNullConstraintViolation(err):
		return domainerrors.Validation("Title, description, and price are required.")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	service := &entity.Service{
		ID:                data.ID,
		VendorID:          data.VendorID,
		CategoryID:        data.CategoryID,
		Category:          toCategoryDomain(data.Category),
		Title:             data.Title,
		Description:       data.Description,
		Price:             data.Price,
		AvailabilityNotes: data.AvailabilityNotes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.Vendor != nil {
		service.VendorName = data.Vendor.BusinessName
	}

	return service
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:                data.ID,
		VendorID:          data.VendorID,
		CategoryID:        data.CategoryID,
		Title:             data.Title,
		Description:       data.Description,
		Price:             data.Price,
		AvailabilityNotes: data.AvailabilityNotes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// portfolioRepository implements the domain.PortfolioRepository interface.
type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository is the constructor for portfolioRepository.
func NewPortfolioRepository(db *gorm.DB) repository.PortfolioRepository {
	return &portfolioRepository{db: db}
}

// ListByVendor returns the vendor's portfolio, newest first.
func (repo *portfolioRepository) ListByVendor(ctx context.Context, vendorID uint) ([]*entity.PortfolioItem, error) {
	var itemMs []*model.PortfolioItemModel
	err := repo.db.WithContext(ctx).
		Preload("Vendor").
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC, id DESC").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list portfolio items")
	}

	items := make([]*entity.PortfolioItem, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toPortfolioItemDomain(itemM))
	}

	return items, nil
}

// FindByID returns a portfolio item only when it belongs to vendorID.
func (repo *portfolioRepository) FindByID(ctx context.Context, vendorID, itemID uint) (*entity.PortfolioItem, error) {
	var itemM model.PortfolioItemModel
	err := repo.db.WithContext(ctx).
		Preload("Vendor").
		Where("id = ? AND vendor_id = ?", itemID, vendorID).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPortfolioItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find portfolio item")
	}

	return toPortfolioItemDomain(&itemM), nil
}

// Create persists a new portfolio item.
func (repo *portfolioRepository) Create(ctx context.Context, item *entity.PortfolioItem) error {
	itemM := &model.PortfolioItemModel{
		VendorID:    item.VendorID,
		Image:       item.Image,
		Description: item.Description,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create portfolio item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// Delete removes a portfolio item owned by vendorID.
func (repo *portfolioRepository) Delete(ctx context.Context, vendorID, itemID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", itemID, vendorID).
		Delete(&model.PortfolioItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete portfolio item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPortfolioItemNotFound
	}

	return nil
}

func toPortfolioItemDomain(data *model.PortfolioItemModel) *entity.PortfolioItem {
	if data == nil {
		return nil
	}

	item := &entity.PortfolioItem{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Image:       data.Image,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
	if data.Vendor != nil {
		item.VendorName = data.Vendor.BusinessName
	}

	return item
}
