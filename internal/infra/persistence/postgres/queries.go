package postgres

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"

	"gorm.io/gorm"
)

// vendorStatsRow is the aggregate row scanned by loadVendorStats.
type vendorStatsRow struct {
	VendorID       uint
	ServicesCount  int64
	PortfolioCount int64
	ReviewsCount   int64
	AverageRating  float64
}

const vendorStatsSQL = `
SELECT v.id AS vendor_id,
	(SELECT COUNT(*) FROM services s WHERE s.vendor_id = v.id) AS services_count,
	(SELECT COUNT(*) FROM portfolio_items p WHERE p.vendor_id = v.id) AS portfolio_count,
	(SELECT COUNT(*) FROM reviews r WHERE r.vendor_id = v.id) AS reviews_count,
	(SELECT COALESCE(AVG(r.rating)::float8, 0) FROM reviews r WHERE r.vendor_id = v.id) AS average_rating
FROM vendor_profiles v
WHERE v.id IN ?`

// loadVendorStats fills Stats on every vendor with one query.
func loadVendorStats(ctx context.Context, db *gorm.DB, vendors ...*entity.VendorProfile) error {
	if len(vendors) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(vendors))
	for _, v := range vendors {
		ids = append(ids, v.ID)
	}

	var rows []vendorStatsRow
	if err := db.WithContext(ctx).Raw(vendorStatsSQL, ids).Scan(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to load vendor stats")
	}

	byID := make(map[uint]vendorStatsRow, len(rows))
	for _, row := range rows {
		byID[row.VendorID] = row
	}

	for _, v := range vendors {
		row := byID[v.ID]
		v.Stats = entity.VendorStats{
			AverageRating:  entity.RoundRating(row.AverageRating),
			ServicesCount:  row.ServicesCount,
			PortfolioCount: row.PortfolioCount,
			ReviewsCount:   row.ReviewsCount,
		}
	}

	return nil
}

// eventCountsRow is the aggregate row scanned by loadEventCounts.
type eventCountsRow struct {
	EventID     uint
	GuestCount  int64
	VendorCount int64
}

const eventCountsSQL = `
SELECT e.id AS event_id,
	(SELECT COUNT(*) FROM guests g WHERE g.event_id = e.id) AS guest_count,
	(SELECT COUNT(*) FROM vendor_bookings b WHERE b.event_id = e.id) AS vendor_count
FROM events e
WHERE e.id IN ?`

// loadEventCounts fills GuestCount and VendorCount on every event with one query.
func loadEventCounts(ctx context.Context, db *gorm.DB, events ...*entity.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}

	var rows []eventCountsRow
	if err := db.WithContext(ctx).Raw(eventCountsSQL, ids).Scan(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to load event counts")
	}

	byID := make(map[uint]eventCountsRow, len(rows))
	for _, row := range rows {
		byID[row.EventID] = row
	}

	for _, e := range events {
		row := byID[e.ID]
		e.GuestCount = row.GuestCount
		e.VendorCount = row.VendorCount
	}

	return nil
}
