// Package availability answers "how many rooms are free on date D" from a cached
// total room count and a live booking count.
package availability

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/common/metrics"
)

// DateLayout is the DD-MM-YYYY format guests type.
const DateLayout = "02-01-2006"

var ErrInvalidDate = errors.New("INVALID_DATE")

type RoomCounter interface {
	CountRooms(ctx context.Context) (int, error)
}

type BookingCounter interface {
	CountCovering(ctx context.Context, day time.Time) (int, error)
}

// Calculator holds the total room count. The count is read lock free and
// replaced whole by Refresh; a failed refresh keeps the previous value.
type Calculator struct {
	rooms    RoomCounter
	bookings BookingCounter
	logger   logger.Logger
	total    atomic.Int64
}

func NewCalculator(rooms RoomCounter, bookings BookingCounter, log logger.Logger) *Calculator {
	return &Calculator{
		rooms:    rooms,
		bookings: bookings,
		logger:   log.WithFields(map[string]interface{}{"component": "availability"}),
	}
}

// Total returns the cached room count, 0 until the first successful refresh.
func (c *Calculator) Total() int {
	return int(c.total.Load())
}

func (c *Calculator) Refresh(ctx context.Context) error {
	n, err := c.rooms.CountRooms(ctx)
	if err != nil {
		metrics.RoomCountRefreshes.WithLabelValues("error").Inc()
		c.logger.Error("room count refresh failed, keeping previous total", map[string]interface{}{
			"error":         err.Error(),
			"previousTotal": c.Total(),
		})
		return err
	}

	c.total.Store(int64(n))
	metrics.TotalRooms.Set(float64(n))
	metrics.RoomCountRefreshes.WithLabelValues("success").Inc()
	c.logger.Info("room count refreshed", map[string]interface{}{"totalRooms": n})
	return nil
}

// Run refreshes immediately and then every interval until ctx is done.
func (c *Calculator) Run(ctx context.Context, interval time.Duration) {
	_ = c.Refresh(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = c.Refresh(ctx)
		}
	}
}

// ParseDate validates a DD-MM-YYYY string as a real calendar date.
func ParseDate(date string) (time.Time, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return day, nil
}

// Available returns total rooms minus bookings covering date. The result is not
// clamped and can be negative when the hotel is overbooked.
func (c *Calculator) Available(ctx context.Context, date string) (int, error) {
	day, err := ParseDate(date)
	if err != nil {
		return 0, err
	}

	booked, err := c.bookings.CountCovering(ctx, day)
	if err != nil {
		return 0, err
	}
	return c.Total() - booked, nil
}

// Message is the plain sentence returned by the availability endpoint.
func Message(available int, date string) string {
	if available > 0 {
		return "We have " + strconv.Itoa(available) + " rooms available for " + date + ". You can proceed with your booking."
	}
	return FullyBooked
}

const FullyBooked = "I apologize, but it seems that we are fully booked for the requested dates. " +
	"Would you like me to check availability for alternative dates or assist you with any other inquiries?"
