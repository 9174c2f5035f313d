package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/common/metrics"
	"hotel-concierge/internal/models"
)

const (
	catalogStore = "catalog"

	roomColumns = `room_id, room_name, room_type, room_price, description, created_at, image1, image2, image3, image4`
)

// Catalog reads the rooms_hotel table. Room records are cached in Redis when a
// client and a positive TTL are configured; the name listing is always live.
type Catalog struct {
	db     *sql.DB
	cache  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCatalog(db *sql.DB, cache *redis.Client, ttl time.Duration, log logger.Logger) *Catalog {
	return &Catalog{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"store": catalogStore}),
	}
}

// ListRoomNames returns every room name in insertion order.
func (c *Catalog) ListRoomNames(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT room_name FROM rooms_hotel ORDER BY room_id`)
	if err != nil {
		return nil, unavailable(catalogStore, "list_room_names", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, unavailable(catalogStore, "list_room_names", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(catalogStore, "list_room_names", err)
	}
	return names, nil
}

// RoomByName matches the stored name exactly.
func (c *Catalog) RoomByName(ctx context.Context, name string) (*models.Room, error) {
	return c.cachedRoom(ctx, "room:name:"+name, "room_by_name",
		`SELECT `+roomColumns+` FROM rooms_hotel WHERE room_name = $1`, name)
}

func (c *Catalog) RoomByID(ctx context.Context, id int64) (*models.Room, error) {
	return c.cachedRoom(ctx, "room:id:"+strconv.FormatInt(id, 10), "room_by_id",
		`SELECT `+roomColumns+` FROM rooms_hotel WHERE room_id = $1`, id)
}

func (c *Catalog) CountRooms(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms_hotel`).Scan(&n); err != nil {
		return 0, unavailable(catalogStore, "count_rooms", err)
	}
	return n, nil
}

func (c *Catalog) cachedRoom(ctx context.Context, key, op, query string, arg interface{}) (*models.Room, error) {
	if room, ok := c.cacheGet(ctx, key); ok {
		return room, nil
	}

	room, err := scanRoom(c.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, unavailable(catalogStore, op, err)
	}

	c.cacheSet(ctx, key, room)
	return room, nil
}

func (c *Catalog) cacheGet(ctx context.Context, key string) (*models.Room, bool) {
	if c.cache == nil || c.ttl <= 0 {
		return nil, false
	}

	val, err := c.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			metrics.RoomCacheTotal.WithLabelValues("error").Inc()
			c.logger.Warn("room cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
			return nil, false
		}
		metrics.RoomCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var room models.Room
	if err := json.Unmarshal([]byte(val), &room); err != nil {
		metrics.RoomCacheTotal.WithLabelValues("error").Inc()
		return nil, false
	}
	metrics.RoomCacheTotal.WithLabelValues("hit").Inc()
	return &room, true
}

func (c *Catalog) cacheSet(ctx context.Context, key string, room *models.Room) {
	if c.cache == nil || c.ttl <= 0 {
		return
	}

	data, err := json.Marshal(room)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("room cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*models.Room, error) {
	var (
		room   models.Room
		images [4][]byte
	)
	err := row.Scan(
		&room.ID, &room.Name, &room.Type, &room.Price, &room.Description, &room.CreatedAt,
		&images[0], &images[1], &images[2], &images[3],
	)
	if err != nil {
		return nil, err
	}

	room.Image1 = encodeImage(images[0])
	room.Image2 = encodeImage(images[1])
	room.Image3 = encodeImage(images[2])
	room.Image4 = encodeImage(images[3])
	return &room, nil
}

// encodeImage maps NULL and empty blobs to "".
func encodeImage(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}
