// Package store holds the postgres-backed Catalog, Booking and Guest Profile stores.
package store

import (
	"errors"
	"fmt"

	"hotel-concierge/internal/common/metrics"
)

var (
	ErrStoreUnavailable = errors.New("STORE_UNAVAILABLE")
	ErrRoomNotFound     = errors.New("ROOM_NOT_FOUND")
)

// unavailable wraps a driver error so callers can match it with errors.Is.
func unavailable(storeName, op string, err error) error {
	metrics.StoreErrorsTotal.WithLabelValues(storeName, op).Inc()
	return fmt.Errorf("%w: %s.%s: %v", ErrStoreUnavailable, storeName, op, err)
}
