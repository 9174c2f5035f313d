package store

import (
	"context"
	"database/sql"
	"time"

	"hotel-concierge/internal/common/logger"
)

const bookingStore = "bookings"

type Bookings struct {
	db     *sql.DB
	logger logger.Logger
}

func NewBookings(db *sql.DB, log logger.Logger) *Bookings {
	return &Bookings{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"store": bookingStore}),
	}
}

// CountCovering counts bookings whose stay includes day, both ends inclusive.
func (b *Bookings) CountCovering(ctx context.Context, day time.Time) (int, error) {
	var n int
	err := b.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE check_in <= $1::date AND check_out >= $1::date`,
		day.Format("2006-01-02"),
	).Scan(&n)
	if err != nil {
		return 0, unavailable(bookingStore, "count_covering", err)
	}
	return n, nil
}
