package roomavailability

import (
	"context"
	"errors"
	"net/http"

	"hotel-concierge/internal/availability"
	apperrors "hotel-concierge/internal/common/errors"
	"hotel-concierge/internal/common/logger"

	"github.com/labstack/echo/v4"
)

const Endpoint = "room-availability"

type Checker interface {
	Available(ctx context.Context, date string) (int, error)
}

type Handler struct {
	config  *Config
	checker Checker
	errors  *apperrors.ErrorHandler
	logger  logger.Logger
}

func NewHandler(config *Config, checker Checker, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"endpoint": Endpoint})
	return &Handler{
		config:  config,
		checker: checker,
		errors:  apperrors.NewErrorHandler(l),
		logger:  l,
	}
}

// Handle serves GET /roomAvailability?date=DD-MM-YYYY.
func (h *Handler) Handle(c echo.Context) error {
	var input Input
	if err := c.Bind(&input); err != nil {
		return h.errors.Respond(c, apperrors.NewInvalidInputError("invalid query", err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		return h.errors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Date == "" {
		return nil, apperrors.NewInvalidInputError("date is required", "")
	}

	n, err := h.checker.Available(ctx, input.Date)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidDate) {
			return nil, apperrors.NewInvalidInputError("date must be in DD-MM-YYYY format", err.Error())
		}
		return nil, apperrors.NewStoreUnavailableError("Error checking room availability", err)
	}

	h.logger.Debug("availability computed", map[string]interface{}{
		"date":      input.Date,
		"available": n,
	})
	return &Output{Message: availability.Message(n, input.Date)}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
