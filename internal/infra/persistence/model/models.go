package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&VendorProfileModel{},
		&ServiceCategoryModel{},
		&ServiceModel{},
		&PortfolioItemModel{},
		&ReviewModel{},
		&EventModel{},
		&GuestModel{},
		&BookingModel{},
	}
}
