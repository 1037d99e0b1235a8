package postgres

import (
	"context"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/infra/persistence/model"
	"eventhub/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// vendorRepository implements the domain.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

// FindByID retrieves a vendor profile with its stats.
func (repo *vendorRepository) FindByID(ctx context.Context, id uint) (*entity.VendorProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUserID retrieves the vendor profile owned by a user.
func (repo *vendorRepository) FindByUserID(ctx context.Context, userID uint) (*entity.VendorProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *vendorRepository) findOne(ctx context.Context, query string, arg any) (*entity.VendorProfile, error) {
	var vendorM model.VendorProfileModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile")
	}

	vendor := toVendorDomain(&vendorM)
	if err := loadVendorStats(ctx, repo.db, vendor); err != nil {
		return nil, err
	}

	return vendor, nil
}

// List returns the vendors matching filter. Service-level constraints go
// through a single EXISTS so each vendor appears once and all bounds apply
// to the same service.
func (repo *vendorRepository) List(ctx context.Context, filter repository.VendorFilter) ([]*entity.VendorProfile, error) {
	db := repo.db.WithContext(ctx)
	query := db.Model(&model.VendorProfileModel{})

	if filter.Location != "" {
		query = query.Where("vendor_profiles.location ILIKE ?", util.ContainsPattern(filter.Location))
	}

	if filter.HasServiceConstraint() {
		sub := db.Table("services AS s").
			Select("1").
			Where("s.vendor_id = vendor_profiles.id")

		switch {
		case filter.CategoryID != nil:
			sub = sub.Where("s.category_id = ?", *filter.CategoryID)
		case filter.CategoryName != "":
			sub = sub.Joins("JOIN service_categories c ON c.id = s.category_id").
				Where("c.name ILIKE ?", util.ContainsPattern(filter.CategoryName))
		}
		if filter.PriceMin != nil {
			sub = sub.Where("s.price >= ?", *filter.PriceMin)
		}
		if filter.PriceMax != nil {
			sub = sub.Where("s.price <= ?", *filter.PriceMax)
		}

		query = query.Where("EXISTS (?)", sub)
	}

	var vendorMs []*model.VendorProfileModel
	if err := query.Order("vendor_profiles.id").Find(&vendorMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	vendors := make([]*entity.VendorProfile, 0, len(vendorMs))
	for _, vendorM := range vendorMs {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	if err := loadVendorStats(ctx, repo.db, vendors...); err != nil {
		return nil, err
	}

	return vendors, nil
}

// GetOrCreate returns the user's profile, inserting one when absent. The
// insert ignores a concurrent duplicate so the unique user_id index decides.
func (repo *vendorRepository) GetOrCreate(ctx context.Context, userID uint, businessName string) (*entity.VendorProfile, error) {
	vendorM := &model.VendorProfileModel{UserID: userID, BusinessName: businessName}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(vendorM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create vendor profile")
	}

	return repo.FindByUserID(ctx, userID)
}

// Update writes the editable profile fields.
func (repo *vendorRepository) Update(ctx context.Context, vendor *entity.VendorProfile) error {
	vendorM := fromVendorDomain(vendor)

	result := repo.db.WithContext(ctx).
		Model(&model.VendorProfileModel{ID: vendor.ID}).
		Select("business_name", "description", "location", "contact_info", "profile_pic", "updated_at").
		Updates(vendorM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.Validation("Business name is required.")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vendor profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// categoryRepository implements the domain.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// List returns all categories ordered by name.
func (repo *categoryRepository) List(ctx context.Context) ([]*entity.ServiceCategory, error) {
	var categoryMs []*model.ServiceCategoryModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.ServiceCategory, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// GetOrCreate returns the category with the exact name, inserting it when absent.
func (repo *categoryRepository) GetOrCreate(ctx context.Context, name string) (*entity.ServiceCategory, error) {
	db := repo.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&model.ServiceCategoryModel{Name: name}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	var categoryM model.ServiceCategoryModel
	if err := db.Where("name = ?", name).First(&categoryM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load category")
	}

	return toCategoryDomain(&categoryM), nil
}

func toVendorDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	return &entity.VendorProfile{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessName: data.BusinessName,
		Description:  data.Description,
		Location:     data.Location,
		ContactInfo:  data.ContactInfo,
		ProfilePic:   data.ProfilePic,
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromVendorDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	return &model.VendorProfileModel{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessName: data.BusinessName,
		Description:  data.Description,
		Location:     data.Location,
		ContactInfo:  data.ContactInfo,
		ProfilePic:   data.ProfilePic,
		IsVerified:   data.IsVerified,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toCategoryDomain(data *model.ServiceCategoryModel) *entity.ServiceCategory {
	if data == nil {
		return nil
	}

	return &entity.ServiceCategory{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}
