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
)

// eventRepository implements the domain.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// List returns events matching filter ordered by date, soonest first.
func (repo *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
	query := repo.db.WithContext(ctx).Preload("Planner")

	if filter.Day != nil {
		start, end := util.DayRange(*filter.Day)
		query = query.Where("date >= ? AND date < ?", start, end)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", util.ContainsPattern(filter.Location))
	}
	if filter.PlannerID != nil {
		query = query.Where("planner_id = ?", *filter.PlannerID)
	}

	var eventMs []*model.EventModel
	if err := query.Order("date, id").Find(&eventMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, toEventDomain(eventM))
	}

	if err := loadEventCounts(ctx, repo.db, events...); err != nil {
		return nil, err
	}

	return events, nil
}

// FindByID retrieves an event with its planner and counts.
func (repo *eventRepository) FindByID(ctx context.Context, id uint) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).Preload("Planner").First(&eventM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	event := toEventDomain(&eventM)
	if err := loadEventCounts(ctx, repo.db, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Omit("Planner").Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.Validation("Title, date, and location are required.")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// Update writes the editable event fields.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{ID: event.ID}).
		Select("title", "description", "date", "location", "updated_at").
		Updates(eventM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes an event. Guests and bookings cascade.
func (repo *eventRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.EventModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	event := &entity.Event{
		ID:          data.ID,
		PlannerID:   data.PlannerID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date.UTC(),
		Location:    data.Location,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Planner != nil {
		event.PlannerUsername = data.Planner.Username
	}

	return event
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		PlannerID:   data.PlannerID,
		Title:       data.Title,
		Description: data.Description,
		Date:        data.Date,
		Location:    data.Location,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// guestRepository implements the domain.GuestRepository interface.
type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository is the constructor for guestRepository.
func NewGuestRepository(db *gorm.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

func (repo *guestRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Event").Preload("User")
}

// ListByEvent returns an event's guests ordered by id.
func (repo *guestRepository) ListByEvent(ctx context.Context, eventID uint) ([]*entity.Guest, error) {
	var guestMs []*model.GuestModel
	err := repo.withRelations(ctx).
		Where("event_id = ?", eventID).
		Order("id").
		Find(&guestMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guests")
	}

	guests := make([]*entity.Guest, 0, len(guestMs))
	for _, guestM := range guestMs {
		guests = append(guests, toGuestDomain(guestM))
	}

	return guests, nil
}

// FindByID returns a guest only when it belongs to eventID.
func (repo *guestRepository) FindByID(ctx context.Context, eventID, guestID uint) (*entity.Guest, error) {
	var guestM model.GuestModel
	err := repo.withRelations(ctx).
		Where("id = ? AND event_id = ?", guestID, eventID).
		First(&guestM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuestNotFound
		}

		return nil, errors.Wrap(err, "failed to find guest")
	}

	return toGuestDomain(&guestM), nil
}

// Create persists a new guest.
func (repo *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	guestM := fromGuestDomain(guest)

	if err := repo.db.WithContext(ctx).Omit("Event", "User").Create(guestM).Error; err != nil {
		return translateGuestWriteError(err, "failed to create guest")
	}

	guest.ID = guestM.ID
	guest.CreatedAt = guestM.CreatedAt
	guest.UpdatedAt = guestM.UpdatedAt

	return nil
}

// Update writes the editable guest fields.
func (repo *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	guestM := fromGuestDomain(guest)

	result := repo.db.WithContext(ctx).
		Model(&model.GuestModel{}).
		Where("id = ? AND event_id = ?", guest.ID, guest.EventID).
		Select("user_id", "name", "email", "rsvp_status", "updated_at").
		Updates(guestM)
	if result.Error != nil {
		return translateGuestWriteError(result.Error, "failed to update guest")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

// Delete removes a guest from eventID.
func (repo *guestRepository) Delete(ctx context.Context, eventID, guestID uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND event_id = ?", guestID, eventID).
		Delete(&model.GuestModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete guest")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGuestNotFound
	}

	return nil
}

func translateGuestWriteError(err error, details string) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.Validation("Invalid RSVP status.")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.Validation("Invalid user or event reference.")
	case isNotNullConstraintViolation(err):
		return domainerrors.Validation("Name and email are required.")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toGuestDomain(data *model.GuestModel) *entity.Guest {
	if data == nil {
		return nil
	}

	guest := &entity.Guest{
		ID:         data.ID,
		EventID:    data.EventID,
		UserID:     data.UserID,
		User:       toUserDomain(data.User),
		Name:       data.Name,
		Email:      data.Email,
		RSVPStatus: entity.RSVPStatus(data.RSVPStatus),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.Event != nil {
		guest.EventTitle = data.Event.Title
	}

	return guest
}

func fromGuestDomain(data *entity.Guest) *model.GuestModel {
	if data == nil {
		return nil
	}

	return &model.GuestModel{
		ID:         data.ID,
		EventID:    data.EventID,
		UserID:     data.UserID,
		Name:       data.Name,
		Email:      data.Email,
		RSVPStatus: string(data.RSVPStatus),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
