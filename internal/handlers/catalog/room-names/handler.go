package roomnames

import (
	"context"
	"net/http"

	apperrors "hotel-concierge/internal/common/errors"
	"hotel-concierge/internal/common/logger"

	"github.com/labstack/echo/v4"
)

const Endpoint = "room-names"

type NameLister interface {
	ListRoomNames(ctx context.Context) ([]string, error)
}

type Handler struct {
	config  *Config
	catalog NameLister
	errors  *apperrors.ErrorHandler
	logger  logger.Logger
}

func NewHandler(config *Config, catalog NameLister, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"endpoint": Endpoint})
	return &Handler{
		config:  config,
		catalog: catalog,
		errors:  apperrors.NewErrorHandler(l),
		logger:  l,
	}
}

// Handle serves GET /getRoomNames.
func (h *Handler) Handle(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *Handler) execute(ctx context.Context) (*Output, error) {
	names, err := h.catalog.ListRoomNames(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("Failed to fetch room names.", err)
	}
	return &Output{RoomNames: names}, nil
}

func (h *Handler) Execute(ctx context.Context) (*Output, error) {
	return h.execute(ctx)
}
