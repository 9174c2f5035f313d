package guestlist

import (
	"context"
	"net/http"

	apperrors "hotel-concierge/internal/common/errors"
	"hotel-concierge/internal/common/logger"
	"hotel-concierge/internal/models"

	"github.com/labstack/echo/v4"
)

const Endpoint = "guest-list"

type Lister interface {
	List(ctx context.Context) ([]models.GuestProfile, error)
}

type Handler struct {
	config *Config
	guests Lister
	errors *apperrors.ErrorHandler
	logger logger.Logger
}

func NewHandler(config *Config, guests Lister, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"endpoint": Endpoint})
	return &Handler{
		config: config,
		guests: guests,
		errors: apperrors.NewErrorHandler(l),
		logger: l,
	}
}

// Handle serves GET /users. The listing is unpaginated.
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
	profiles, err := h.guests.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("Error fetching users", err)
	}
	return &Output{Users: profiles}, nil
}

func (h *Handler) Execute(ctx context.Context) (*Output, error) {
	return h.execute(ctx)
}
