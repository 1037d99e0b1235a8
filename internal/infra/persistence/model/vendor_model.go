package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorProfileModel mirrors the 'vendor_profiles' table. One row per vendor user.
type VendorProfileModel struct {
	ID           uint       `gorm:"primaryKey"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_vendor_profiles_user"`
	User         *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BusinessName string     `gorm:"type:varchar(255);not null"`
	Description  *string    `gorm:"type:text"`
	Location     *string    `gorm:"type:varchar(255)"`
	ContactInfo  *string    `gorm:"type:varchar(255)"`
	ProfilePic   *string    `gorm:"type:varchar(255)"`
	IsVerified   bool       `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}

// ServiceCategoryModel mirrors the 'service_categories' table.
type ServiceCategoryModel struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_service_categories_name"`
	Description *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceCategoryModel) TableName() string {
	return "service_categories"
}

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID                uint                  `gorm:"primaryKey"`
	VendorID          uint                  `gorm:"not null;index"`
	Vendor            *VendorProfileModel   `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	CategoryID        *uint                 `gorm:"index"`
	Category          *ServiceCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Title             string                `gorm:"type:varchar(255);not null"`
	Description       string                `gorm:"type:text;not null"`
	Price             decimal.Decimal       `gorm:"type:numeric(10,2);not null;check:chk_services_price_non_negative,price >= 0"`
	AvailabilityNotes *string               `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// PortfolioItemModel mirrors the 'portfolio_items' table.
type PortfolioItemModel struct {
	ID          uint                `gorm:"primaryKey"`
	VendorID    uint                `gorm:"not null;index"`
	Vendor      *VendorProfileModel `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	Image       *string             `gorm:"type:varchar(255)"`
	Description *string             `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PortfolioItemModel) TableName() string {
	return "portfolio_items"
}

// ReviewModel mirrors the 'reviews' table. (vendor_id, user_id) is unique.
type ReviewModel struct {
	ID        uint                `gorm:"primaryKey"`
	VendorID  uint                `gorm:"not null;uniqueIndex:idx_reviews_vendor_user"`
	Vendor    *VendorProfileModel `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
	UserID    uint                `gorm:"not null;uniqueIndex:idx_reviews_vendor_user;index"`
	User      *UserModel          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Rating    int                 `gorm:"type:smallint;not null;check:chk_reviews_rating_range,rating BETWEEN 1 AND 5"`
	Comment   *string             `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
