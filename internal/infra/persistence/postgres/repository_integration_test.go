//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts a PostgreSQL container and migrates the schema into it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("eventhub"),
		tcpostgres.WithUsername("eventhub"),
		tcpostgres.WithPassword("eventhub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	return db
}

type fixture struct {
	factory repository.RepositoryFactory
	planner *entity.User
	vendorU *entity.User
	vendor  *entity.VendorProfile
	event   *entity.Event
	service *entity.Service
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{factory: NewRepositoryFactory(db)}

	f.planner = &entity.User{Username: "planner", PasswordHash: "x", IsPlanner: true}
	require.NoError(t, f.factory.NewUserRepository().Create(ctx, f.planner))

	f.vendorU = &entity.User{Username: "vendor", PasswordHash: "x", IsVendor: true}
	require.NoError(t, f.factory.NewUserRepository().Create(ctx, f.vendorU))

	vendor, err := f.factory.NewVendorRepository().GetOrCreate(ctx, f.vendorU.ID, "Acme Catering")
	require.NoError(t, err)
	f.vendor = vendor

	f.event = &entity.Event{
		PlannerID: f.planner.ID,
		Title:     "Gala",
		Date:      time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Location:  "Lagos",
	}
	require.NoError(t, f.factory.NewEventRepository().Create(ctx, f.event))

	f.service = &entity.Service{
		VendorID:    f.vendor.ID,
		Title:       "Buffet",
		Description: "Full buffet",
		Price:       decimal.RequireFromString("500.00"),
	}
	require.NoError(t, f.factory.NewServiceRepository().Create(ctx, f.service))

	return f
}

func TestRepositoriesIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	t.Run("username is unique", func(t *testing.T) {
		users := NewUserRepository(db)
		require.NoError(t, users.Create(ctx, &entity.User{Username: "dup", PasswordHash: "x"}))

		err := users.Create(ctx, &entity.User{Username: "dup", PasswordHash: "y"})
		assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	})

	f := newFixture(t, db)

	t.Run("vendor get or create is idempotent", func(t *testing.T) {
		again, err := f.factory.NewVendorRepository().GetOrCreate(ctx, f.vendorU.ID, "Other Name")
		require.NoError(t, err)
		assert.Equal(t, f.vendor.ID, again.ID)
		assert.Equal(t, "Acme Catering", again.BusinessName)
	})

	t.Run("concurrent duplicate booking yields one row", func(t *testing.T) {
		bookings := f.factory.NewBookingRepository()

		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = bookings.Create(ctx, &entity.Booking{
					EventID:   f.event.ID,
					VendorID:  f.vendor.ID,
					ServiceID: f.service.ID,
					Status:    entity.BookingPending,
				})
			}(i)
		}
		wg.Wait()

		created := 0
		for _, err := range errs {
			if err == nil {
				created++

				continue
			}
			assert.ErrorIs(t, err, domainerrors.ErrDuplicateBooking)
		}
		assert.Equal(t, 1, created)

		list, err := bookings.ListByEvent(ctx, f.event.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Gala", list[0].Event.Title)
		assert.Equal(t, "planner", list[0].Event.PlannerUsername)
		assert.Equal(t, "Acme Catering", list[0].Vendor.BusinessName)
		assert.Equal(t, "Buffet", list[0].Service.Title)
	})

	t.Run("event counts and day filter", func(t *testing.T) {
		guests := f.factory.NewGuestRepository()
		require.NoError(t, guests.Create(ctx, &entity.Guest{
			EventID: f.event.ID, Email: "a@example.com", RSVPStatus: entity.RSVPInvited,
		}))

		events := f.factory.NewEventRepository()
		got, err := events.FindByID(ctx, f.event.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, got.GuestCount)
		assert.EqualValues(t, 1, got.VendorCount)

		day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		list, err := events.List(ctx, repository.EventFilter{Day: &day})
		require.NoError(t, err)
		assert.Len(t, list, 1)

		other := day.AddDate(0, 0, 1)
		list, err = events.List(ctx, repository.EventFilter{Day: &other})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("duplicate review is rejected and stats update", func(t *testing.T) {
		reviews := f.factory.NewReviewRepository()
		require.NoError(t, reviews.Create(ctx, &entity.Review{VendorID: f.vendor.ID, UserID: f.planner.ID, Rating: 4}))

		err := reviews.Create(ctx, &entity.Review{VendorID: f.vendor.ID, UserID: f.planner.ID, Rating: 5})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)

		vendor, err := f.factory.NewVendorRepository().FindByID(ctx, f.vendor.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, vendor.Stats.AverageRating, 0.001)
		assert.EqualValues(t, 1, vendor.Stats.ReviewsCount)
		assert.EqualValues(t, 1, vendor.Stats.ServicesCount)
	})

	t.Run("vendor service filters apply to a single service", func(t *testing.T) {
		category, err := f.factory.NewCategoryRepository().GetOrCreate(ctx, "Catering")
		require.NoError(t, err)
		again, err := f.factory.NewCategoryRepository().GetOrCreate(ctx, "Catering")
		require.NoError(t, err)
		assert.Equal(t, category.ID, again.ID)

		// Cheap uncategorised service plus an expensive categorised one.
		require.NoError(t, f.factory.NewServiceRepository().Create(ctx, &entity.Service{
			VendorID: f.vendor.ID, CategoryID: &category.ID, Title: "Banquet", Description: "Large",
			Price: decimal.RequireFromString("2000.00"),
		}))

		maxPrice := decimal.RequireFromString("1000")
		list, err := f.factory.NewVendorRepository().List(ctx, repository.VendorFilter{
			CategoryID: &category.ID,
			PriceMax:   &maxPrice,
		})
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = f.factory.NewVendorRepository().List(ctx, repository.VendorFilter{CategoryName: "cater"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, f.vendor.ID, list[0].ID)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		tm := NewTransactionManager(db)
		err := tm.Execute(ctx, func(rf repository.RepositoryFactory) error {
			if err := rf.NewUserRepository().Create(ctx, &entity.User{Username: "rolled", PasswordHash: "x"}); err != nil {
				return err
			}

			return domainerrors.ErrConflict
		})
		require.ErrorIs(t, err, domainerrors.ErrConflict)

		_, err = NewUserRepository(db).FindByUsername(ctx, "rolled")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}
