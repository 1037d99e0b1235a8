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

// bookingRepository implements the domain.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (repo *bookingRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Event.Planner").
		Preload("Vendor").
		Preload("Service.Category").
		Preload("Service.Vendor")
}

// ListByEvent returns an event's bookings ordered by id.
func (repo *bookingRepository) ListByEvent(ctx context.Context, eventID uint) ([]*entity.Booking, error) {
	return repo.list(ctx, "vendor_bookings.event_id = ?", eventID, "id")
}

// ListByVendor returns the vendor's bookings, newest first.
func (repo *bookingRepository) ListByVendor(ctx context.Context, vendorID uint) ([]*entity.Booking, error) {
	return repo.list(ctx, "vendor_bookings.vendor_id = ?", vendorID, "created_at DESC, id DESC")
}

func (repo *bookingRepository) list(ctx context.Context, query string, arg any, order string) ([]*entity.Booking, error) {
	var bookingMs []*model.BookingModel
	err := repo.withRelations(ctx).
		Where(query, arg).
		Order(order).
		Find(&bookingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingMs))
	for _, bookingM := range bookingMs {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// FindByID retrieves a booking with its event, vendor and service.
func (repo *bookingRepository) FindByID(ctx context.Context, id uint) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := repo.withRelations(ctx).First(&bookingM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	return toBookingDomain(&bookingM), nil
}

// Create inserts the booking. The unique (event, vendor, service) index
// rejects duplicates, so concurrent requests cannot both succeed.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := &model.BookingModel{
		EventID:   booking.EventID,
		VendorID:  booking.VendorID,
		ServiceID: booking.ServiceID,
		Status:    string(booking.Status),
		Notes:     booking.Notes,
	}

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrDuplicateBooking
		case isCheckConstraintViolation(err):
			return domainerrors.Validation("Invalid status.")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.Validation("Invalid event, vendor or service reference.")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
		}
	}

	booking.ID = bookingM.ID
	booking.Status = entity.BookingStatus(bookingM.Status)
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// UpdateStatus writes a new status.
func (repo *bookingRepository) UpdateStatus(ctx context.Context, id uint, status entity.BookingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{ID: id}).
		Update("status", string(status))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.Validation("Invalid status.")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// Delete removes a booking.
func (repo *bookingRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookingModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:        data.ID,
		EventID:   data.EventID,
		VendorID:  data.VendorID,
		ServiceID: data.ServiceID,
		Event:     toEventDomain(data.Event),
		Vendor:    toVendorDomain(data.Vendor),
		Service:   toServiceDomain(data.Service),
		Status:    entity.BookingStatus(data.Status),
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
