package roomdetails

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	apperrors "hotel-concierge/internal/common/errors"
	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/models"
	"hotel-concierge/internal/store"

	"github.com/labstack/echo/v4"
)

const Endpoint = "room-details"

type RoomFinder interface {
	RoomByID(ctx context.Context, id int64) (*models.Room, error)
}

type Handler struct {
	config  *Config
	catalog RoomFinder
	errors  *apperrors.ErrorHandler
	logger  logger.Logger
}

func NewHandler(config *Config, catalog RoomFinder, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"endpoint": Endpoint})
	return &Handler{
		config:  config,
		catalog: catalog,
		errors:  apperrors.NewErrorHandler(l),
		logger:  l,
	}
}

// Handle serves GET /roomDetails?room_id=.
func (h *Handler) Handle(c echo.Context) error {
	var input Input
	if err := c.Bind(&input); err != nil {
		return h.errors.Respond(c, apperrors.NewInvalidInputError("room_id must be an integer", err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.config.Timeout)
	defer cancel()

	room, err := h.execute(ctx, &input)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*models.Room, error) {
	if input.RoomID == "" {
		return nil, apperrors.NewInvalidInputError("room_id is required", "")
	}
	id, err := strconv.ParseInt(input.RoomID, 10, 64)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("room_id must be an integer", err.Error())
	}

	room, err := h.catalog.RoomByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			return nil, apperrors.NewRoomNotFoundError("Room not found", "room_id: "+input.RoomID)
		}
		return nil, apperrors.NewStoreUnavailableError("Error fetching room details", err)
	}

	h.logger.Debug("room details fetched", map[string]interface{}{"roomId": id})
	return room, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*models.Room, error) {
	return h.execute(ctx, input)
}
